// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import (
	"github.com/frontierzdd/frontier/graph"
	"github.com/frontierzdd/frontier/intsubset"
)

// VIG represents vertex subsets S: the edges it stands for are exactly
// those edges of the underlying graph with both endpoints in S (the
// vertex-induced subgraph), decided edge-by-edge as the frontier walks
// the edge order -- there is no separate vertex item, a vertex joins S
// the first time one of its incident edges is taken, and any edge
// whose two endpoints are already both in S must be taken too (an
// uninduced edge is rejected). Mode "connected"/"tree" requires the
// induced subgraph to be one component; "forest"/"tree" forbids
// cycles.
type VIG struct {
	graph *graph.Graph
	n     int

	connected bool
	forest    bool

	constraint intsubset.Set
}

func NewVIG(g *graph.Graph, mode string, constraint intsubset.Set) *VIG {
	return &VIG{
		graph:      g,
		n:          g.NumE(),
		connected:  mode == "connected" || mode == "tree",
		forest:     mode == "forest" || mode == "tree",
		constraint: constraint,
	}
}

func (v *VIG) StateSize() int { return counterSize + mateSize*v.graph.MaxFrontier() }

func (v *VIG) Root(s []byte) int {
	putCounter(s, 0, 0)
	mate := decodeMates(s, counterSize, v.graph.MaxFrontier())
	for i := range mate {
		mate[i] = mateDNC
	}
	encodeMates(s, counterSize, mate)
	return v.n
}

func (v *VIG) removeVertex(mate []int16, counter *int32, slot int) int {
	cc := mate[slot]
	mate[slot] = mateDNC

	if cc >= mateIN && !linkCheck(mate, cc) {
		if v.connected {
			if otherCCs(mate, cc) {
				return 0
			}
			return -1
		}
		if !v.constraint.Empty() {
			*counter++
			if v.constraint.Upper() == int(*counter) {
				if otherCCs(mate, cc) {
					return 0
				}
				return -1
			}
		}
	}
	return -2
}

func (v *VIG) Child(s []byte, level, branch int) int {
	take := branch == 1
	i := v.n - level
	edge := v.graph.Edge(i)
	slot := func(u int) int { return v.graph.MateIndex(u) }

	mate := decodeMates(s, counterSize, v.graph.MaxFrontier())
	counter := getCounter(s, 0)

	m1, m2 := mate[edge.I1], mate[edge.I2]

	if take {
		if m1 == mateOUT || m2 == mateOUT {
			return 0
		}
		if v.forest && m1 >= mateIN && m2 >= mateIN && m1 == m2 {
			return 0
		}

		info := v.graph.AddInfo(i)

		if m1 == mateDNC {
			if v.forest && !loopCheck(mate, info.Adj1, slot) {
				return 0
			}
			if v.connected || v.forest {
				m1 = getCCid(mate)
			} else {
				m1 = mateIN
			}
			mate[edge.I1] = m1
			reject(mate, info.Adj1, slot)
		}
		if m2 == mateDNC {
			if v.forest && !loopCheck(mate, info.Adj2, slot) {
				return 0
			}
			if v.connected || v.forest {
				m2 = getCCid(mate)
			} else {
				m2 = mateIN
			}
			mate[edge.I2] = m2
			reject(mate, info.Adj2, slot)
		}

		mate[edge.I1], mate[edge.I2] = m1, m2
		if m1 != m2 {
			merged := ccLink(mate, m1, m2)
			m1, m2 = merged, merged
		}
	} else {
		if m1 >= mateIN && m2 >= mateIN {
			return 0
		}
		if m1 >= mateIN {
			m2 = mateOUT
		}
		if m2 >= mateIN {
			m1 = mateOUT
		}
	}
	mate[edge.I1], mate[edge.I2] = m1, m2

	if edge.Out1 {
		if res := v.removeVertex(mate, &counter, edge.I1); res != -2 {
			return res
		}
	}
	if edge.Out2 {
		if res := v.removeVertex(mate, &counter, edge.I2); res != -2 {
			return res
		}
	}

	i++
	if i == v.n {
		if !v.connected && !v.constraint.Empty() && !v.constraint.Contain(int(counter)) {
			return 0
		}
		return -1
	}

	putCounter(s, 0, counter)
	encodeMates(s, counterSize, mate)
	return v.n - i
}

// VIGHV is the HybridGraph counterpart of VIG: a vertex item decides
// whether that vertex joins the induced subgraph on its own, so an
// isolated vertex with no taken incident edge can still be selected
// unless NoIsolate forbids it.
type VIGHV struct {
	graph *graph.HybridGraph
	n     int

	connected bool
	forest    bool
	noIsolate bool

	constraint intsubset.Set
}

// NewVIGHV returns a VIGHV spec over g. NoIsolate, when set, rejects a
// taken vertex item whose vertex has no taken incident edge --
// VIG_HV.hpp's no_isolate flag.
func NewVIGHV(g *graph.HybridGraph, mode string, noIsolate bool, constraint intsubset.Set) *VIGHV {
	return &VIGHV{
		graph:      g,
		n:          g.NumI(),
		connected:  mode == "connected" || mode == "tree",
		forest:     mode == "forest" || mode == "tree",
		noIsolate:  noIsolate,
		constraint: constraint,
	}
}

func (v *VIGHV) StateSize() int { return counterSize + mateSize*v.graph.MaxFrontier() }

func (v *VIGHV) Root(s []byte) int {
	putCounter(s, 0, 0)
	mate := decodeMates(s, counterSize, v.graph.MaxFrontier())
	for i := range mate {
		mate[i] = mateDNC
	}
	encodeMates(s, counterSize, mate)
	return v.n
}

func (v *VIGHV) Child(s []byte, level, branch int) int {
	take := branch == 1
	i := v.n - level
	item := v.graph.ItemAf(i)
	slot := func(u int) int { return v.graph.MateIndex(u) }

	mate := decodeMates(s, counterSize, v.graph.MaxFrontier())
	counter := getCounter(s, 0)

	if item.IsVertex {
		m := mate[item.I]

		if take && m == mateOUT {
			return 0
		}
		if !take && m >= mateIN {
			return 0
		}

		if take && m == mateDNC {
			if v.noIsolate {
				return 0
			}
			info := v.graph.AddInfoAf(i)
			if v.connected || v.forest {
				m = getCCid(mate)
			} else {
				m = mateIN
			}
			setIsolate(mate, info.Adj, slot)
		}

		cc := m
		mate[item.I] = mateDNC

		if cc >= mateIN && !linkCheck(mate, cc) {
			if v.connected {
				if otherCCs(mate, cc) {
					return 0
				}
				return -1
			}
			if !v.constraint.Empty() {
				counter++
				if v.constraint.Upper() == int(counter) {
					if otherCCs(mate, cc) {
						return 0
					}
					return -1
				}
			}
		}

		i++
		if i == v.n {
			if !v.connected && !v.constraint.Empty() && !v.constraint.Contain(int(counter)) {
				return 0
			}
			return -1
		}

		putCounter(s, 0, counter)
		encodeMates(s, counterSize, mate)
		return v.n - i
	}

	m1, m2 := mate[item.I1], mate[item.I2]

	if take {
		if m1 == mateOUT || m2 == mateOUT {
			return 0
		}
		if v.forest && m1 >= mateIN && m2 >= mateIN && m1 == m2 {
			return 0
		}

		info := v.graph.AddInfoAf(i)

		if m1 == mateDNC {
			if v.forest && !loopCheck(mate, info.Adj1, slot) {
				return 0
			}
			if v.connected || v.forest {
				m1 = getCCid(mate)
			} else {
				m1 = mateIN
			}
			mate[item.I1] = m1
			reject(mate, info.Adj1, slot)
		}
		if m2 == mateDNC {
			if v.forest && !loopCheck(mate, info.Adj2, slot) {
				return 0
			}
			if v.connected || v.forest {
				m2 = getCCid(mate)
			} else {
				m2 = mateIN
			}
			mate[item.I2] = m2
			reject(mate, info.Adj2, slot)
		}

		mate[item.I1], mate[item.I2] = m1, m2
		if m1 != m2 {
			merged := ccLink(mate, m1, m2)
			m1, m2 = merged, merged
		}
	} else {
		if m1 >= mateIN && m2 >= mateIN {
			return 0
		}
		if m1 >= mateIN {
			m2 = mateOUT
		}
		if m2 >= mateIN {
			m1 = mateOUT
		}
	}
	mate[item.I1], mate[item.I2] = m1, m2

	i++
	encodeMates(s, counterSize, mate)
	return v.n - i
}
