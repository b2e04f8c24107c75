// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import (
	"github.com/frontierzdd/frontier/graph"
	"github.com/frontierzdd/frontier/intsubset"
)

// EdgeCount accepts every item selection whose number of taken edges
// lies in Constraint. An empty Constraint means "no restriction": the
// spec then accepts every selection unconditionally, a pass-through
// mode meant for use as one leaf of a Product rather than standalone.
type EdgeCount struct {
	graph      *graph.HybridGraph
	n          int
	constraint intsubset.Set
}

func NewEdgeCount(g *graph.HybridGraph, constraint intsubset.Set) *EdgeCount {
	return &EdgeCount{graph: g, n: g.NumI(), constraint: constraint}
}

func (c *EdgeCount) StateSize() int { return counterSize }

func (c *EdgeCount) Root(s []byte) int {
	putCounter(s, 0, 0)
	if !c.constraint.Empty() && c.constraint.Lower() > c.n {
		return 0
	}
	return c.n
}

func (c *EdgeCount) Child(s []byte, level, branch int) int {
	take := branch == 1

	if c.constraint.Empty() {
		if level == 1 {
			return -1
		}
		return level - 1
	}

	i := c.n - level
	item := c.graph.ItemAf(i)
	counter := getCounter(s, 0)

	if !item.IsVertex && take {
		counter++
		if int(counter) > c.constraint.Upper() {
			return 0
		}
	}

	i++
	if i == c.n {
		if c.constraint.Contain(int(counter)) {
			return -1
		}
		return 0
	}

	putCounter(s, 0, counter)
	return c.n - i
}

// VertexCount accepts every item selection whose number of taken
// vertex items lies in Constraint, with the same pass-through
// semantics as EdgeCount when Constraint is empty.
type VertexCount struct {
	graph      *graph.HybridGraph
	n          int
	constraint intsubset.Set
}

func NewVertexCount(g *graph.HybridGraph, constraint intsubset.Set) *VertexCount {
	return &VertexCount{graph: g, n: g.NumI(), constraint: constraint}
}

func (c *VertexCount) StateSize() int { return counterSize }

func (c *VertexCount) Root(s []byte) int {
	putCounter(s, 0, 0)
	if !c.constraint.Empty() && c.constraint.Lower() > c.n {
		return 0
	}
	return c.n
}

func (c *VertexCount) Child(s []byte, level, branch int) int {
	take := branch == 1

	if c.constraint.Empty() {
		if level == 1 {
			return -1
		}
		return level - 1
	}

	i := c.n - level
	item := c.graph.ItemAf(i)
	counter := getCounter(s, 0)

	if item.IsVertex && take {
		counter++
		if int(counter) > c.constraint.Upper() {
			return 0
		}
	}

	i++
	if i == c.n {
		if c.constraint.Contain(int(counter)) {
			return -1
		}
		return 0
	}

	putCounter(s, 0, counter)
	return c.n - i
}

// ItemCount accepts every subset of n arbitrary boolean candidate items
// whose selected-candidate count lies in Constraint. IsCandidate marks
// which of the n items count towards the total; items with
// IsCandidate[i] == false may be freely taken or left without affecting
// the count.
type ItemCount struct {
	n           int
	isCandidate []bool
	constraint  intsubset.Set
}

func NewItemCount(n int, isCandidate []bool, constraint intsubset.Set) *ItemCount {
	return &ItemCount{n: n, isCandidate: isCandidate, constraint: constraint}
}

func (c *ItemCount) StateSize() int { return counterSize }

func (c *ItemCount) Root(s []byte) int {
	putCounter(s, 0, 0)
	if !c.constraint.Empty() && c.constraint.Lower() > c.n {
		return 0
	}
	return c.n
}

func (c *ItemCount) Child(s []byte, level, branch int) int {
	take := branch == 1

	if c.constraint.Empty() {
		if level == 1 {
			return -1
		}
		return level - 1
	}

	i := c.n - level
	counter := getCounter(s, 0)

	if take {
		if c.isCandidate[i] {
			counter++
		}
		if int(counter) > c.constraint.Upper() {
			return 0
		}
	}

	i++
	if i == c.n {
		if c.constraint.Contain(int(counter)) {
			return -1
		}
		return 0
	}

	putCounter(s, 0, counter)
	return c.n - i
}
