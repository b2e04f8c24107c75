// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import "github.com/frontierzdd/frontier/graph"

// pathInter marks a frontier slot that is either untouched or sits in
// the interior of an already-traced path segment: it can never again
// be a dangling endpoint.
const pathInter int16 = -123

// Each frontier slot tracks a Path-in-progress as a pair of int16
// fields (own label, far endpoint label), packed two mate slots wide
// via the shared []int16 decoding in state.go: field s of slot i lives
// at index 2*i, field t at index 2*i+1.

func pathInit(mate []int16, i int, v int16) {
	mate[2*i] = v
	mate[2*i+1] = v
}

func pathS(mate []int16, i int) int16 { return mate[2*i] }
func pathT(mate []int16, i int) int16 { return mate[2*i+1] }

func pathSetInter(mate []int16, i int) { mate[2*i+1] = pathInter }
func pathSetTerminal(mate []int16, i int, u int16) { mate[2*i+1] = u }

func pathIsInter(mate []int16, i int) bool    { return pathT(mate, i) == pathInter }
func pathTerminalIs(mate []int16, i int, u int16) bool { return pathT(mate, i) == u }
func pathIsTerminal(mate []int16, i int) bool {
	return !pathIsInter(mate, i) && pathT(mate, i) != pathS(mate, i)
}

// PAC represents edge subsets that form a single simple path between S
// and T, or (when S or T is -1) a single simple cycle anywhere in the
// graph.
type PAC struct {
	graph *graph.Graph
	n     int
	count int // number of frontier slots (mate pairs)

	s, t  int16
	cycle bool
}

func NewPAC(g *graph.Graph, s, t int) *PAC {
	return &PAC{
		graph: g,
		n:     g.NumE(),
		count: g.MaxFrontier(),
		s:     int16(s),
		t:     int16(t),
		cycle: s == -1 || t == -1,
	}
}

func (p *PAC) StateSize() int { return mateSize * 2 * p.count }

func (p *PAC) Root(s []byte) int {
	mate := decodeMates(s, 0, 2*p.count)
	for i := 0; i < p.count; i++ {
		pathInit(mate, i, pathInter)
	}
	encodeMates(s, 0, mate)
	return p.n
}

// pathComplete reports whether no frontier slot other than the current
// edge's own two slots (skip1, skip2) still holds a dangling path end.
func (p *PAC) pathComplete(mate []int16, skip1, skip2 int) bool {
	for i := 0; i < p.count; i++ {
		if i == skip1 || i == skip2 {
			continue
		}
		if pathIsTerminal(mate, i) {
			return false
		}
	}
	return true
}

func (p *PAC) Child(s []byte, level, branch int) int {
	take := branch == 1
	i := p.n - level
	edge := p.graph.Edge(i)

	mate := decodeMates(s, 0, 2*p.count)

	if edge.In1 {
		pathInit(mate, edge.I1, int16(edge.V1))
	}
	if edge.In2 {
		pathInit(mate, edge.I2, int16(edge.V2))
	}

	if take {
		m1s, m1t := pathS(mate, edge.I1), pathT(mate, edge.I1)
		m2s, m2t := pathS(mate, edge.I2), pathT(mate, edge.I2)

		if m1t == pathInter || m2t == pathInter {
			return 0
		}
		if !p.cycle && m1t == int16(edge.V2) {
			return 0
		}
		if !p.cycle && ((m1t == p.s && m2t == p.t) || (m1t == p.t && m2t == p.s)) {
			if p.pathComplete(mate, edge.I1, edge.I2) {
				return -1
			}
			return 0
		}

		if m1t != p.s && m1t != p.t {
			pathSetTerminal(mate, p.graph.MateIndex(int(m1t)), m2t)
		}
		if m2t != p.s && m2t != p.t {
			pathSetTerminal(mate, p.graph.MateIndex(int(m2t)), m1t)
		}

		if int16(edge.V1) == p.s || int16(edge.V1) == p.t {
			pathSetInter(mate, edge.I1)
		}
		if int16(edge.V2) == p.s || int16(edge.V2) == p.t {
			pathSetInter(mate, edge.I2)
		}
		if m1t != int16(edge.V1) {
			pathSetInter(mate, edge.I1)
		}
		if m2t != int16(edge.V2) {
			pathSetInter(mate, edge.I2)
		}

		if p.cycle && m1t == m2s && m1s == m2t {
			if p.allPathsInterior(mate) {
				return -1
			}
			return 0
		}
	}

	if edge.Out1 {
		if pathIsTerminal(mate, edge.I1) {
			return 0
		}
		if pathTerminalIs(mate, edge.I1, p.s) || pathTerminalIs(mate, edge.I1, p.t) {
			return 0
		}
		pathInit(mate, edge.I1, pathInter)
	}
	if edge.Out2 {
		if pathIsTerminal(mate, edge.I2) {
			return 0
		}
		if pathTerminalIs(mate, edge.I2, p.s) || pathTerminalIs(mate, edge.I2, p.t) {
			return 0
		}
		pathInit(mate, edge.I2, pathInter)
	}

	i++
	if i == p.n {
		return 0
	}

	encodeMates(s, 0, mate)
	return p.n - i
}

// allPathsInterior is cycleComplete in PAC.hpp: true once every
// frontier slot has settled into the interior of the (single) traced
// cycle.
func (p *PAC) allPathsInterior(mate []int16) bool {
	for i := 0; i < p.count; i++ {
		if pathIsTerminal(mate, i) {
			return false
		}
	}
	return true
}

// PACHV is the HybridGraph counterpart of PAC: a vertex item forces a
// binary choice matching whatever the path mates already decided for
// that vertex (interior vertices must be taken, anything else must be
// left), and a path or cycle can complete mid-way through an edge item,
// before every vertex item has been visited -- the remaining edge
// items are then skipped over, implicitly left, until the next vertex
// item, which is where the accept is finally returned. s[0] carries
// that "already complete" flag across Child calls; the mate array
// starts at byte offset 1.
type PACHV struct {
	graph *graph.HybridGraph
	n     int
	count int

	s, t  int16
	cycle bool
}

func NewPACHV(g *graph.HybridGraph, s, t int) *PACHV {
	return &PACHV{
		graph: g,
		n:     g.NumI(),
		count: g.MaxFrontier(),
		s:     int16(s),
		t:     int16(t),
		cycle: s == -1 || t == -1,
	}
}

func (p *PACHV) StateSize() int { return 1 + mateSize*2*p.count }

func (p *PACHV) Root(s []byte) int {
	s[0] = 0
	mate := decodeMates(s, 1, 2*p.count)
	for i := 0; i < p.count; i++ {
		pathInit(mate, i, pathInter)
	}
	encodeMates(s, 1, mate)
	return p.n
}

// pathComplete is PAC.pathComplete over PACHV's own count: the two mate
// slots the edge item currently mid-transition still owns are excluded
// from the scan -- PAC_HV.hpp's pathComplete(mate, edge) skips
// edge.i1/edge.i2.
func (p *PACHV) pathComplete(mate []int16, skip1, skip2 int) bool {
	for i := 0; i < p.count; i++ {
		if i == skip1 || i == skip2 {
			continue
		}
		if pathIsTerminal(mate, i) {
			return false
		}
	}
	return true
}

func (p *PACHV) Child(s []byte, level, branch int) int {
	take := branch == 1
	i := p.n - level
	item := p.graph.ItemAf(i)
	complete := s[0] != 0

	mate := decodeMates(s, 1, 2*p.count)

	if item.IsVertex {
		outer := pathS(mate, item.I) == pathT(mate, item.I)
		if take && outer {
			return 0
		}
		if !take && !outer {
			return 0
		}
		pathInit(mate, item.I, pathInter)
	} else {
		if item.In1 {
			pathInit(mate, item.I1, int16(item.V1))
		}
		if item.In2 {
			pathInit(mate, item.I2, int16(item.V2))
		}

		if take {
			m1s, m1t := pathS(mate, item.I1), pathT(mate, item.I1)
			m2s, m2t := pathS(mate, item.I2), pathT(mate, item.I2)

			if m1t == pathInter || m2t == pathInter {
				return 0
			}
			if !p.cycle && m1t == int16(item.V2) {
				return 0
			}
			if !p.cycle && ((m1t == p.s && m2t == p.t) || (m1t == p.t && m2t == p.s)) {
				if !p.pathComplete(mate, item.I1, item.I2) {
					return 0
				}
				complete = true
			}

			if m1t != p.s && m1t != p.t {
				pathSetTerminal(mate, p.graph.MateIndex(int(m1t)), m2t)
			}
			if m2t != p.s && m2t != p.t {
				pathSetTerminal(mate, p.graph.MateIndex(int(m2t)), m1t)
			}

			if int16(item.V1) == p.s || int16(item.V1) == p.t {
				pathSetInter(mate, item.I1)
			}
			if int16(item.V2) == p.s || int16(item.V2) == p.t {
				pathSetInter(mate, item.I2)
			}
			if m1t != int16(item.V1) {
				pathSetInter(mate, item.I1)
			}
			if m2t != int16(item.V2) {
				pathSetInter(mate, item.I2)
			}

			if p.cycle && m1t == m2s && m1s == m2t {
				if !p.allPathsInterior(mate) {
					return 0
				}
				complete = true
			}
		}

		if item.Out1 {
			if pathIsTerminal(mate, item.I1) {
				return 0
			}
			if pathTerminalIs(mate, item.I1, p.s) || pathTerminalIs(mate, item.I1, p.t) {
				return 0
			}
		}
		if item.Out2 {
			if pathIsTerminal(mate, item.I2) {
				return 0
			}
			if pathTerminalIs(mate, item.I2, p.s) || pathTerminalIs(mate, item.I2, p.t) {
				return 0
			}
		}
	}

	i++
	if i == p.n {
		if complete {
			return -1
		}
		return 0
	}
	if complete {
		for {
			next := p.graph.ItemAf(i)
			if next.IsVertex {
				break
			}
			i++
			if i == p.n {
				return -1
			}
		}
	}

	s[0] = 0
	if complete {
		s[0] = 1
	}
	encodeMates(s, 1, mate)
	return p.n - i
}

// allPathsInterior mirrors PAC.allPathsInterior over PACHV's own count.
func (p *PACHV) allPathsInterior(mate []int16) bool {
	for i := 0; i < p.count; i++ {
		if pathIsTerminal(mate, i) {
			return false
		}
	}
	return true
}
