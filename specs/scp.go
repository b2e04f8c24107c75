// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import (
	"github.com/frontierzdd/frontier/graph"
	"github.com/frontierzdd/frontier/intsubset"
)

// VertexSetCover represents vertex subsets S together with the edge
// set S vertex-induces (an edge with both endpoints already in S must
// be taken, exactly like VIG), while tracking two counters per state:
// the number of selected vertices and the number of completed
// components. Constraint, if non-empty, bounds the selected-vertex
// count at acceptance -- empty accepts every induced selection
// regardless of size, leaving a caller to count the selected vertex
// items on the enumerated paths instead. Neither edge coverage (an edge
// may end with both endpoints unselected) nor the component count is
// checked at acceptance.
type VertexSetCover struct {
	graph      *graph.HybridGraph
	n          int
	constraint intsubset.Set
}

func NewVertexSetCover(g *graph.HybridGraph, constraint intsubset.Set) *VertexSetCover {
	return &VertexSetCover{graph: g, n: g.NumI(), constraint: constraint}
}

// The counterSize-wide prefix packs two 16-bit counters into one
// big-endian int32: vnum in the high half (bytes 0-1), ccnum in the low
// half (bytes 2-3).
func (c *VertexSetCover) StateSize() int { return counterSize + mateSize*c.graph.MaxFrontier() }

func (c *VertexSetCover) Root(s []byte) int {
	putCounter(s, 0, 0)
	mate := decodeMates(s, counterSize, c.graph.MaxFrontier())
	for i := range mate {
		mate[i] = mateDNC
	}
	encodeMates(s, counterSize, mate)
	return c.n
}

func (c *VertexSetCover) Child(s []byte, level, branch int) int {
	take := branch == 1
	i := c.n - level
	item := c.graph.ItemAf(i)
	slot := func(v int) int { return c.graph.MateIndex(v) }

	mate := decodeMates(s, counterSize, c.graph.MaxFrontier())
	packed := getCounter(s, 0)
	vnum, ccnum := int16(packed>>16), int16(packed)

	if item.IsVertex {
		m := mate[item.I]

		if take {
			vnum++
		}
		if take && m == mateOUT {
			return 0
		}
		if !take && m >= mateIN {
			return 0
		}

		if take && m == mateDNC {
			info := c.graph.AddInfoAf(i)
			m = getCCid(mate)
			setIsolate(mate, info.Adj, slot)
		}

		cc := m
		mate[item.I] = mateDNC
		if cc >= mateIN && !linkCheck(mate, cc) {
			ccnum++
		}

		i++
		if i == c.n {
			if !c.constraint.Empty() && !c.constraint.Contain(int(vnum)) {
				return 0
			}
			return -1
		}

		putCounter(s, 0, int32(ccnum)&0xffff|int32(vnum)<<16)
		encodeMates(s, counterSize, mate)
		return c.n - i
	}

	m1, m2 := mate[item.I1], mate[item.I2]

	if take {
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
