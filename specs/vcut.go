// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import (
	"github.com/frontierzdd/frontier/graph"
	"github.com/frontierzdd/frontier/intsubset"
)

// VCUT is the dual of VIG: a "taken" edge is one that is cut (removed),
// and the remaining, untaken edges determine the connected components
// on either side. Acceptance requires the final component count to lie
// in Constraint, which defaults to [2, NumV] -- a genuine multi-way
// vertex/edge cut -- whenever the caller leaves it empty or gives an
// upper bound below 2.
type VCUT struct {
	graph      *graph.Graph
	n          int
	constraint intsubset.Set
}

func NewVCUT(g *graph.Graph, constraint intsubset.Set) *VCUT {
	if constraint.Empty() || constraint.Upper() < 2 {
		constraint = intsubset.Range(2, g.NumV())
	}
	return &VCUT{graph: g, n: g.NumE(), constraint: constraint}
}

func (c *VCUT) StateSize() int { return counterSize + mateSize*c.graph.MaxFrontier() }

func (c *VCUT) Root(s []byte) int {
	putCounter(s, 0, 0)
	mate := decodeMates(s, counterSize, c.graph.MaxFrontier())
	for i := range mate {
		mate[i] = mateDNC
	}
	encodeMates(s, counterSize, mate)
	return c.n
}

func (c *VCUT) removeVertex(mate []int16, counter *int32, slot int) int {
	cc := mate[slot]
	mate[slot] = mateDNC

	if cc >= mateIN && !linkCheck(mate, cc) {
		*counter++
		if c.constraint.Upper() == int(*counter) {
			if otherCCs(mate, cc) {
				return 0
			}
			return -1
		}
	}
	return -2
}

func (c *VCUT) Child(s []byte, level, branch int) int {
	take := branch == 1 // take == cut this edge
	i := c.n - level
	edge := c.graph.Edge(i)
	slot := func(u int) int { return c.graph.MateIndex(u) }

	mate := decodeMates(s, counterSize, c.graph.MaxFrontier())
	counter := getCounter(s, 0)

	m1, m2 := mate[edge.I1], mate[edge.I2]

	if !take {
		if m1 == mateOUT || m2 == mateOUT {
			return 0
		}
		info := c.graph.AddInfo(i)
		if m1 == mateDNC {
			m1 = getCCid(mate)
			mate[edge.I1] = m1
			reject(mate, info.Adj1, slot)
		}
		if m2 == mateDNC {
			m2 = getCCid(mate)
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
		if res := c.removeVertex(mate, &counter, edge.I1); res != -2 {
			return res
		}
	}
	if edge.Out2 {
		if res := c.removeVertex(mate, &counter, edge.I2); res != -2 {
			return res
		}
	}

	i++
	if i == c.n {
		if !c.constraint.Contain(int(counter)) {
			return 0
		}
		return -1
	}

	putCounter(s, 0, counter)
	encodeMates(s, counterSize, mate)
	return c.n - i
}

// VCUTHV is the HybridGraph counterpart of VCUT: a vertex item decides
// whether that vertex is cut away on its own (no surviving incident
// edge ties it to anything), the same isolate-by-item freedom VIGHV
// gives the induced-subgraph family.
type VCUTHV struct {
	graph      *graph.HybridGraph
	n          int
	constraint intsubset.Set
}

func NewVCUTHV(g *graph.HybridGraph, constraint intsubset.Set) *VCUTHV {
	if constraint.Empty() || constraint.Upper() < 2 {
		constraint = intsubset.Range(2, g.NumV())
	}
	return &VCUTHV{graph: g, n: g.NumI(), constraint: constraint}
}

func (c *VCUTHV) StateSize() int { return counterSize + mateSize*c.graph.MaxFrontier() }

func (c *VCUTHV) Root(s []byte) int {
	putCounter(s, 0, 0)
	mate := decodeMates(s, counterSize, c.graph.MaxFrontier())
	for i := range mate {
		mate[i] = mateDNC
	}
	encodeMates(s, counterSize, mate)
	return c.n
}

func (c *VCUTHV) Child(s []byte, level, branch int) int {
	take := branch == 1 // take == cut this vertex/edge away
	i := c.n - level
	item := c.graph.ItemAf(i)
	slot := func(u int) int { return c.graph.MateIndex(u) }

	mate := decodeMates(s, counterSize, c.graph.MaxFrontier())
	counter := getCounter(s, 0)

	if item.IsVertex {
		m := mate[item.I]

		if !take && m == mateOUT {
			return 0
		}
		if take && m >= mateIN {
			return 0
		}

		if !take && m == mateDNC {
			info := c.graph.AddInfoAf(i)
			m = getCCid(mate)
			setIsolate(mate, info.Adj, slot)
		}

		cc := m
		mate[item.I] = mateDNC

		if cc >= mateIN && !linkCheck(mate, cc) {
			counter++
			if c.constraint.Upper() == int(counter) {
				if otherCCs(mate, cc) {
					return 0
				}
				return -1
			}
		}

		i++
		if i == c.n {
			if !c.constraint.Contain(int(counter)) {
				return 0
			}
			return -1
		}

		putCounter(s, 0, counter)
		encodeMates(s, counterSize, mate)
		return c.n - i
	}

	m1, m2 := mate[item.I1], mate[item.I2]

	if !take {
		if m1 == mateOUT || m2 == mateOUT {
			return 0
		}
		info := c.graph.AddInfoAf(i)
		if m1 == mateDNC {
			m1 = getCCid(mate)
			mate[item.I1] = m1
			reject(mate, info.Adj1, slot)
		}
		if m2 == mateDNC {
			m2 = getCCid(mate)
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
	return c.n - i
}
