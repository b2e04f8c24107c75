// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import (
	"github.com/frontierzdd/frontier/graph"
	"github.com/frontierzdd/frontier/intsubset"
)

// degreeDontCare marks a frontier slot whose vertex has no degree
// constraint left to track -- either because Constraints[v] is empty
// (unconstrained vertex) or because UseCutAndDC has already proven the
// constraint can no longer be violated regardless of future choices.
const degreeDontCare int16 = -1

// DegreeConstraint accepts edge subsets in which every vertex's final
// degree lies within its own entry of Constraints. With
// UseCutAndDC set, it prunes a branch as soon as the remaining incident
// edges could not possibly bring a vertex's degree back into range --
// the range-count pruning CCS.hpp's family calls "cut and dc".
type DegreeConstraint struct {
	graph       *graph.Graph
	constraints []intsubset.Set
	useCutAndDC bool
	n           int
}

func NewDegreeConstraint(g *graph.Graph, constraints []intsubset.Set, useCutAndDC bool) *DegreeConstraint {
	return &DegreeConstraint{graph: g, constraints: constraints, useCutAndDC: useCutAndDC, n: g.NumE()}
}

func (d *DegreeConstraint) StateSize() int { return mateSize * d.graph.MaxFrontier() }

func (d *DegreeConstraint) Root(s []byte) int {
	mate := decodeMates(s, 0, d.graph.MaxFrontier())
	for i := range mate {
		mate[i] = 0
	}
	encodeMates(s, 0, mate)
	return d.n
}

func (d *DegreeConstraint) takable(v int, deg int16, out bool, rem int) bool {
	if deg == degreeDontCare {
		return true
	}
	c := d.constraints[v]
	if c.Empty() {
		return true
	}
	if d.useCutAndDC && c.RangeCount(int(deg)+1, int(deg)+1+rem) == 0 {
		return false
	}
	if c.Upper() <= int(deg) {
		return false
	}
	return !out || c.Contain(int(deg)+1)
}

func (d *DegreeConstraint) leavable(v int, deg int16, out bool, rem int) bool {
	if deg == degreeDontCare {
		return true
	}
	c := d.constraints[v]
	if c.Empty() {
		return true
	}
	if d.useCutAndDC && c.RangeCount(int(deg), int(deg)+rem) == 0 {
		return false
	}
	return !out || c.Contain(int(deg))
}

func (d *DegreeConstraint) update(v int, deg int16, rem int, out, take bool) int16 {
	if out {
		return 0
	}
	if deg == degreeDontCare {
		return deg
	}
	if take {
		deg++
	}
	c := d.constraints[v]
	if d.useCutAndDC && !c.Empty() && c.RangeCount(int(deg), int(deg)+rem) == rem+1 {
		return degreeDontCare
	}
	return deg
}

func (d *DegreeConstraint) Child(s []byte, level, branch int) int {
	take := branch == 1
	i := d.n - level
	edge := d.graph.Edge(i)
	info := d.graph.AddInfo(i)

	mate := decodeMates(s, 0, d.graph.MaxFrontier())

	if edge.In1 {
		if d.constraints[edge.V1].Empty() && d.useCutAndDC {
			mate[edge.I1] = degreeDontCare
		} else {
			mate[edge.I1] = 0
		}
	}
	if edge.In2 {
		if d.constraints[edge.V2].Empty() && d.useCutAndDC {
			mate[edge.I2] = degreeDontCare
		} else {
			mate[edge.I2] = 0
		}
	}

	if take {
		if !d.takable(edge.V1, mate[edge.I1], edge.Out1, info.Rm1) {
			return 0
		}
		if !d.takable(edge.V2, mate[edge.I2], edge.Out2, info.Rm2) {
			return 0
		}
	} else {
		if !d.leavable(edge.V1, mate[edge.I1], edge.Out1, info.Rm1) {
			return 0
		}
		if !d.leavable(edge.V2, mate[edge.I2], edge.Out2, info.Rm2) {
			return 0
		}
	}

	i++
	if i == d.n {
		return -1
	}

	mate[edge.I1] = d.update(edge.V1, mate[edge.I1], info.Rm1, edge.Out1, take)
	mate[edge.I2] = d.update(edge.V2, mate[edge.I2], info.Rm2, edge.Out2, take)

	encodeMates(s, 0, mate)
	return d.n - i
}
