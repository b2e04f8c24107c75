// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package graph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/frontierzdd/frontier/dderr"
)

// Edge is an undirected edge between v1 and v2, annotated after SetOrder
// with its mate-slot assignment and frontier in/out flags.
//
// Invariant (after SetOrder): for every vertex with degree >= 1, exactly
// one edge in the order has In=true and exactly one has Out=true for that
// vertex, and the slot assigned at In is held until Out.
type Edge struct {
	V1, V2 int
	I1, I2 int // mate-slot indices bound to V1 and V2 for this edge's lifetime
	In1    bool
	In2    bool
	Out1   bool
	Out2   bool
}

func (e Edge) String() string {
	return fmt.Sprintf("Edge(%d, %d)", e.V1, e.V2)
}

// AddInfo carries the per-edge frontier snapshot computed during
// SetOrder: the remaining degree of each endpoint after this edge, the
// ids of frontier vertices adjacent to each endpoint through earlier
// edges, and the frontier at this edge (its own endpoints included,
// before any of them leaves). All sets are indexed by vertex id; map an
// id to its slot with MateIndex.
type AddInfo struct {
	Rm1, Rm2       int
	Adj1, Adj2     *bitset.BitSet // ids of frontier vertices adjacent to V1/V2
	Frontier       *bitset.BitSet // ids of vertices on the frontier at this edge
}

// pair is an ordered vertex pair, used as a map key for the input
// multiset; direction matters because callers may query findEdge/isAdj
// in either direction.
type pair struct{ u, v int }

// Graph is an undirected multigraph over vertices [0, NumV). Edges are
// accumulated with AddEdge and only take their final shape -- order,
// mate slots, frontier metadata -- once SetOrder is called.
type Graph struct {
	numV int

	emap   map[pair]int // multiplicity of each input edge, by exact direction
	asisOr []pair       // input edges in arrival order (for the "as-is" ordering)

	ordered     bool
	edges       []Edge
	addinfo     []AddInfo
	mateIndex   []int // per-vertex mate slot, valid only while the vertex is in the frontier
	maxFrontier int
}

// New returns an empty Graph over numV vertices.
func New(numV int) *Graph {
	return &Graph{
		numV: numV,
		emap: make(map[pair]int),
	}
}

// NumV returns the number of vertices.
func (g *Graph) NumV() int { return g.numV }

// NumE returns the number of edges, duplicates included. Valid only
// after SetOrder.
func (g *Graph) NumE() int { return len(g.edges) }

// AddEdge records an undirected edge between v1 and v2. Duplicate edges
// are allowed and counted separately. AddEdge rejects out-of-range
// vertices with an InputError.
func (g *Graph) AddEdge(v1, v2 int) error {
	if v1 < 0 || v1 >= g.numV || v2 < 0 || v2 >= g.numV {
		return dderr.New(dderr.InputError, fmt.Errorf("edge (%d, %d) out of range [0, %d)", v1, v2, g.numV))
	}
	g.ordered = false
	g.emap[pair{v1, v2}]++
	g.asisOr = append(g.asisOr, pair{v1, v2})
	return nil
}

// findEdge reports whether the input contains at least one edge directed
// exactly from u to v (direction-sensitive, matching the original
// hybriddd::Graph::findEdge).
func (g *Graph) findEdge(u, v int) bool {
	return g.emap[pair{u, v}] > 0
}

// IsAdj reports whether u and v are connected by an edge, in either
// direction.
func (g *Graph) IsAdj(u, v int) bool {
	return g.findEdge(u, v) || g.findEdge(v, u)
}

// IsOrdered reports whether SetOrder has been called since the last
// AddEdge.
func (g *Graph) IsOrdered() bool { return g.ordered }

// Edge returns the i'th edge in the fixed order. Valid only after
// SetOrder.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// AddInfo returns the frontier metadata attached to the i'th edge. Valid
// only after SetOrder.
func (g *Graph) AddInfo(i int) AddInfo { return g.addinfo[i] }

// MaxFrontier returns one past the highest mate slot ever occupied --
// the width every Spec must allocate its mate array to.
func (g *Graph) MaxFrontier() int { return g.maxFrontier }

// MateIndex returns the mate slot most recently bound to vertex v. It is
// meaningful only while v is part of the frontier.
func (g *Graph) MateIndex(v int) int { return g.mateIndex[v] }

// Ordering names one of the four item orderings SetOrder supports.
type Ordering string

const (
	AsIs    Ordering = "as-is"
	DFS     Ordering = "dfs"
	BFS     Ordering = "bfs"
	Greedy  Ordering = "greedy"
)

// SetOrder fixes the edge order according to the given strategy, then
// assigns mate slots and frontier metadata to every edge in that order.
// It must be called at least once before Edge, AddInfo, MaxFrontier or
// MateIndex are used, and again after any further AddEdge call.
func (g *Graph) SetOrder(ordering Ordering) error {
	if len(g.emap) == 0 {
		return dderr.New(dderr.InvalidOrdering, fmt.Errorf("SetOrder called on a graph with no edges"))
	}
	g.ordered = false
	g.edges = g.edges[:0]
	g.addinfo = g.addinfo[:0]

	switch ordering {
	case DFS:
		g.dfsOrdering()
	case BFS, "":
		g.bfsOrdering()
	case Greedy:
		g.greedyOrdering()
	case AsIs:
		g.asisOrdering()
	default:
		return dderr.New(dderr.InvalidOrdering, fmt.Errorf("unknown ordering %q", ordering))
	}

	g.setMateOrder()
	g.ordered = true
	return nil
}

func (g *Graph) asisOrdering() {
	for _, p := range g.asisOr {
		g.edges = append(g.edges, Edge{V1: p.u, V2: p.v})
	}
}

// setMateOrder is the ordering-independent second pass that assigns
// mate slots: walk the already-ordered edge list left to right,
// dispensing mate slots from a min-priority pool at each vertex's first
// appearance and returning them to the pool at its last.
func (g *Graph) setMateOrder() {
	numE := len(g.edges)

	deg := make([]int, g.numV)
	adjv := make([]*bitset.BitSet, g.numV)
	for v := range adjv {
		adjv[v] = bitset.New(uint(g.numV))
	}
	frontier := bitset.New(uint(g.numV))

	for p, c := range g.emap {
		deg[p.u] += c
		deg[p.v] += c
	}

	const unbound = -1
	g.mateIndex = make([]int, g.numV)
	for v := range g.mateIndex {
		g.mateIndex[v] = unbound
	}
	pool := newSlotPool(g.numV)

	for i := 0; i < numE; i++ {
		e := &g.edges[i]

		deg[e.V1]--
		deg[e.V2]--

		frontier.Set(uint(e.V1))
		frontier.Set(uint(e.V2))

		info := AddInfo{
			Rm1:      deg[e.V1],
			Rm2:      deg[e.V2],
			Adj1:     adjv[e.V1].Clone(),
			Adj2:     adjv[e.V2].Clone(),
			Frontier: frontier.Clone(),
		}
		g.addinfo = append(g.addinfo, info)

		adjv[e.V1].Set(uint(e.V2))
		adjv[e.V2].Set(uint(e.V1))

		if g.mateIndex[e.V1] == unbound {
			e.In1 = true
		}
		if g.mateIndex[e.V2] == unbound {
			e.In2 = true
		}

		if deg[e.V1] == 0 {
			e.Out1 = true
			frontier.Clear(uint(e.V1))
			for u := 0; u < g.numV; u++ {
				adjv[u].Clear(uint(e.V1))
			}
		}
		if deg[e.V2] == 0 {
			e.Out2 = true
			frontier.Clear(uint(e.V2))
			for u := 0; u < g.numV; u++ {
				adjv[u].Clear(uint(e.V2))
			}
		}

		if e.In1 {
			e.I1 = pool.take()
			g.mateIndex[e.V1] = e.I1
		} else {
			e.I1 = g.mateIndex[e.V1]
		}
		if e.In2 {
			e.I2 = pool.take()
			g.mateIndex[e.V2] = e.I2
		} else {
			e.I2 = g.mateIndex[e.V2]
		}

		if e.Out1 {
			pool.release(g.mateIndex[e.V1])
		}
		if e.Out2 {
			pool.release(g.mateIndex[e.V2])
		}
	}

	g.maxFrontier = 0
	for v := 0; v < g.numV; v++ {
		if g.mateIndex[v] == unbound {
			continue
		}
		if g.mateIndex[v]+1 > g.maxFrontier {
			g.maxFrontier = g.mateIndex[v] + 1
		}
	}
}
