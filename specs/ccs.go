// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import (
	"github.com/frontierzdd/frontier/graph"
	"github.com/frontierzdd/frontier/intsubset"
)

// CCS represents edge subsets whose edge-induced subgraph, restricted
// to the vertices it touches, forms a single connected component (mode
// "connected" or "tree"), a forest (mode "forest" or "tree"), or an
// unconstrained collection of components counted against Constraint
// (any other mode). A non-empty Terminals set additionally requires
// that every named terminal vertex be touched by the selection
// ("Steiner" mode).
type CCS struct {
	graph *graph.Graph
	n     int

	connected bool
	forest    bool
	steiner   bool

	constraint intsubset.Set
	terminals  intsubset.Set
}

// NewCCS returns a CCS spec over g in the given mode ("connected",
// "forest", "tree", or any other string for an unconstrained
// component count). terminals, if non-empty, switches on Steiner mode:
// every named vertex must end up in the selection.
func NewCCS(g *graph.Graph, mode string, constraint, terminals intsubset.Set) *CCS {
	return &CCS{
		graph:      g,
		n:          g.NumE(),
		connected:  mode == "connected" || mode == "tree",
		forest:     mode == "forest" || mode == "tree",
		steiner:    !terminals.Empty(),
		constraint: constraint,
		terminals:  terminals,
	}
}

func (c *CCS) StateSize() int { return counterSize + mateSize*c.graph.MaxFrontier() }

func (c *CCS) Root(s []byte) int {
	putCounter(s, 0, 0)
	mate := decodeMates(s, counterSize, c.graph.MaxFrontier())
	for i := range mate {
		mate[i] = mateDNC
	}
	encodeMates(s, counterSize, mate)
	return c.n
}

// removeVertex retires the frontier slot bound to a vertex that has
// just seen its last incident edge, closing out its component if no
// other frontier slot still references it. It returns 0 to reject, -1
// to accept immediately, or -2 to mean "no terminal decision yet". In
// connected Steiner mode, closing the single component does not accept
// at once: it sets *counter to 1 and returns -2, so that every terminal
// still ahead is checked before the final item accepts.
func (c *CCS) removeVertex(mate []int16, counter *int32, slot int) int {
	cc := mate[slot]
	mate[slot] = mateDNC

	if cc >= mateIN && !linkCheck(mate, cc) {
		if c.connected {
			if otherCCs(mate, cc) {
				return 0
			}
			if c.steiner {
				*counter = 1
				return -2
			}
			return -1
		}
		if !c.constraint.Empty() {
			*counter++
			if c.constraint.Upper() == int(*counter) {
				if otherCCs(mate, cc) {
					return 0
				}
				return -1
			}
		}
	}
	return -2
}

func (c *CCS) Child(s []byte, level, branch int) int {
	take := branch == 1
	i := c.n - level
	edge := c.graph.Edge(i)

	mate := decodeMates(s, counterSize, c.graph.MaxFrontier())
	counter := getCounter(s, 0)

	m1, m2 := mate[edge.I1], mate[edge.I2]

	if take {
		if c.connected && counter > 0 {
			return 0
		}
		if c.forest && m1 >= mateIN && m2 >= mateIN && m1 == m2 {
			return 0
		}
		if m1 == mateDNC {
			m1 = getCCid(mate)
		}
		if m2 == mateDNC {
			m2 = getCCid(mate)
		}
		mate[edge.I1], mate[edge.I2] = m1, m2
		if m1 != m2 {
			merged := ccLink(mate, m1, m2)
			m1, m2 = merged, merged
		}
	}

	if edge.Out1 {
		if c.steiner && c.terminals.Contain(edge.V1) && mate[edge.I1] == mateDNC {
			return 0
		}
		if res := c.removeVertex(mate, &counter, edge.I1); res != -2 {
			return res
		}
	}
	if edge.Out2 {
		if c.steiner && c.terminals.Contain(edge.V2) && mate[edge.I2] == mateDNC {
			return 0
		}
		if res := c.removeVertex(mate, &counter, edge.I2); res != -2 {
			return res
		}
	}

	i++
	if i == c.n {
		if c.connected {
			if counter > 0 {
				return -1
			}
			return 0
		}
		if !c.connected && !c.constraint.Empty() && !c.constraint.Contain(int(counter)) {
			return 0
		}
		return -1
	}

	putCounter(s, 0, counter)
	encodeMates(s, counterSize, mate)
	return c.n - i
}

// steinerShift packs a Steiner terminal residue into the upper 16 bits
// of CCSHV's counter, alongside the completed-component count in the
// lower 16 bits, matching CCS_HV.hpp's STEINER_SHIFT/COUNTER_MASK.
const steinerShift = 16

// CCSHV is the HybridGraph counterpart of CCS: a vertex's membership is
// its own item-level branch decision instead of being implied by a
// taken incident edge, so an isolated vertex can be its own trivial
// component.
type CCSHV struct {
	graph *graph.HybridGraph
	n     int

	connected bool
	forest    bool
	steiner   bool

	constraint intsubset.Set
	terminals  intsubset.Set
}

// NewCCSHV returns a CCSHV spec over g in the given mode ("connected",
// "forest", "tree", or any other string for an unconstrained component
// count), with the same Steiner semantics as NewCCS.
func NewCCSHV(g *graph.HybridGraph, mode string, constraint, terminals intsubset.Set) *CCSHV {
	return &CCSHV{
		graph:      g,
		n:          g.NumI(),
		connected:  mode == "connected" || mode == "tree",
		forest:     mode == "forest" || mode == "tree",
		steiner:    !terminals.Empty(),
		constraint: constraint,
		terminals:  terminals,
	}
}

func (c *CCSHV) StateSize() int { return counterSize + mateSize*c.graph.MaxFrontier() }

func (c *CCSHV) Root(s []byte) int {
	var counter int32
	if c.steiner {
		counter = int32(c.terminals.Size()) << steinerShift
	}
	putCounter(s, 0, counter)
	mate := decodeMates(s, counterSize, c.graph.MaxFrontier())
	for i := range mate {
		mate[i] = mateDNC
	}
	encodeMates(s, counterSize, mate)
	return c.n
}

func (c *CCSHV) Child(s []byte, level, branch int) int {
	take := branch == 1
	i := c.n - level
	item := c.graph.ItemAf(i)

	mate := decodeMates(s, counterSize, c.graph.MaxFrontier())
	packed := getCounter(s, 0)
	steinerTerms := packed >> steinerShift
	ccCounter := packed & 0xffff

	if item.IsVertex {
		m := mate[item.I]

		if !take && m >= mateIN {
			return 0
		}
		if take && m == mateDNC {
			m = getCCid(mate)
		}

		if c.steiner {
			if c.terminals.Contain(item.V) && m == mateDNC {
				return 0
			}
			if c.terminals.Contain(item.V) && m >= mateIN {
				steinerTerms--
			}
		}

		cc := m
		mate[item.I] = mateDNC

		if cc >= mateIN && !linkCheck(mate, cc) {
			if c.connected {
				if otherCCs(mate, cc) {
					return 0
				}
				if steinerTerms > 0 {
					return 0
				}
				return -1
			}
			if !c.constraint.Empty() {
				ccCounter++
				if int(ccCounter) > c.constraint.Upper() {
					return 0
				}
			}
		}

		i++
		if i == c.n {
			if c.connected || steinerTerms > 0 {
				return 0
			}
			if !c.constraint.Empty() && !c.constraint.Contain(int(ccCounter)) {
				return 0
			}
			return -1
		}

		putCounter(s, 0, steinerTerms<<steinerShift|ccCounter)
		encodeMates(s, counterSize, mate)
		return c.n - i
	}

	m1, m2 := mate[item.I1], mate[item.I2]

	if take {
		if c.forest && m1 >= mateIN && m2 >= mateIN && m1 == m2 {
			return 0
		}
		if m1 == mateDNC {
			m1 = getCCid(mate)
		}
		if m2 == mateDNC {
			m2 = getCCid(mate)
		}
		mate[item.I1], mate[item.I2] = m1, m2
		if m1 != m2 {
			merged := ccLink(mate, m1, m2)
			m1, m2 = merged, merged
		}
	}
	mate[item.I1], mate[item.I2] = m1, m2

	i++
	encodeMates(s, counterSize, mate)
	return c.n - i
}
