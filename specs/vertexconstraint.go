// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import (
	"github.com/frontierzdd/frontier/graph"
	"github.com/frontierzdd/frontier/intsubset"
)

// VertexConstraint accepts every HybridGraph item selection whose
// vertex items respect two independent sets: Select names vertices
// that must be taken, NonSelect names vertices that must be left.
// Edge items are unconstrained, the same pass-through behavior Power
// gives every item. It carries no per-level state.
type VertexConstraint struct {
	graph     *graph.HybridGraph
	n         int
	selectSet intsubset.Set
	nonSelect intsubset.Set
}

func NewVertexConstraint(g *graph.HybridGraph, selectSet, nonSelect intsubset.Set) *VertexConstraint {
	return &VertexConstraint{graph: g, n: g.NumI(), selectSet: selectSet, nonSelect: nonSelect}
}

func (c *VertexConstraint) StateSize() int { return 0 }

func (c *VertexConstraint) Root(_ []byte) int {
	if c.n == 0 {
		return -1
	}
	return c.n
}

func (c *VertexConstraint) Child(_ []byte, level, branch int) int {
	take := branch == 1
	i := c.n - level
	item := c.graph.ItemAf(i)

	if item.IsVertex {
		if !take && c.selectSet.Contain(item.V) {
			return 0
		}
		if take && c.nonSelect.Contain(item.V) {
			return 0
		}
	}

	i++
	if i == c.n {
		return -1
	}
	return c.n - i
}
