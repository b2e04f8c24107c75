// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import "github.com/frontierzdd/frontier/graph"

// Power represents every subset of a graph's edges: both branches are
// always available and there is no state to track. Its cardinality is
// always 2^NumE.
type Power struct{ n int }

func NewPower(g *graph.Graph) *Power { return &Power{n: g.NumE()} }

func (p *Power) StateSize() int { return 0 }

func (p *Power) Root(_ []byte) int {
	if p.n == 0 {
		return -1
	}
	return p.n
}

func (p *Power) Child(_ []byte, level, _ int) int {
	if level == 1 {
		return -1
	}
	return level - 1
}

// PowerHV represents every subset of a HybridGraph's combined
// vertex+edge item sequence, with one constraint: a vertex item can be
// taken only if some edge incident to it has already been taken (its
// mate flag was set), and must be left if not -- so the represented
// family is "any edge subset, plus its automatically induced touched
// vertex set" rather than an unconstrained choice over both kinds of
// item.
type PowerHV struct {
	graph *graph.HybridGraph
	n     int
}

func NewPowerHV(g *graph.HybridGraph) *PowerHV {
	return &PowerHV{graph: g, n: g.NumI()}
}

func (p *PowerHV) StateSize() int { return p.graph.MaxFrontier() }

func (p *PowerHV) Root(s []byte) int {
	for i := range s {
		s[i] = 0
	}
	if p.n == 0 {
		return -1
	}
	return p.n
}

func (p *PowerHV) Child(s []byte, level, branch int) int {
	take := branch == 1
	i := p.n - level
	item := p.graph.ItemAf(i)

	if item.IsVertex {
		m := s[item.I] != 0
		if take && !m {
			return 0
		}
		if !take && m {
			return 0
		}
		s[item.I] = 0
	} else {
		if take {
			s[item.I1] = 1
			s[item.I2] = 1
		}
	}

	i++
	if i == p.n {
		return -1
	}

	for {
		next := p.graph.ItemAf(i)
		if !next.IsVertex || s[next.I] != 0 {
			break
		}
		i++
		if i == p.n {
			return -1
		}
	}

	return p.n - i
}
