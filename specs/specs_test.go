// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import (
	"math/big"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frontierzdd/frontier/graph"
	"github.com/frontierzdd/frontier/intsubset"
	"github.com/frontierzdd/frontier/zdd"
)

func build(t *testing.T, spec zdd.Spec) *zdd.DD {
	t.Helper()
	u, err := zdd.NewBuilder(spec).Build()
	require.NoError(t, err)
	return zdd.Reduce(u)
}

func pathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.New(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}
	require.NoError(t, g.SetOrder(graph.AsIs))
	return g
}

func cycleGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.New(n)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%n))
	}
	require.NoError(t, g.SetOrder(graph.AsIs))
	return g
}

func completeGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}
	require.NoError(t, g.SetOrder(graph.AsIs))
	return g
}

func cycleGraphHV(t *testing.T, n int) *graph.HybridGraph {
	t.Helper()
	g := graph.NewHybrid(n)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%n))
	}
	require.NoError(t, g.SetOrder(graph.AsIs))
	require.NoError(t, g.SetItems())
	return g
}

func pathGraphHV(t *testing.T, n int) *graph.HybridGraph {
	t.Helper()
	g := graph.NewHybrid(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}
	require.NoError(t, g.SetOrder(graph.AsIs))
	require.NoError(t, g.SetItems())
	return g
}

// A. A single simple path between the two endpoints of a path graph.
func TestPACPathGraphSinglePath(t *testing.T) {
	g := pathGraph(t, 5)
	dd := build(t, NewPAC(g, 0, 4))
	require.Equal(t, big.NewInt(1), zdd.Cardinality(dd))
}

// B. A triangle has exactly one simple cycle.
func TestPACTriangleSingleCycle(t *testing.T) {
	g := cycleGraph(t, 3)
	dd := build(t, NewPAC(g, -1, -1))
	require.Equal(t, big.NewInt(1), zdd.Cardinality(dd))
}

// C. K4 has 16 spanning trees (Cayley's formula, 4^(4-2)).
func TestCCSK4SpanningTrees(t *testing.T) {
	g := completeGraph(t, 4)
	terminals := intsubset.New(0, 1, 2, 3)
	dd := build(t, NewCCS(g, "tree", intsubset.Set{}, terminals))
	require.Equal(t, big.NewInt(16), zdd.Cardinality(dd))
}

// D. K4 has 5 simple paths between any two distinct vertices.
func TestPACK4FiveSimplePaths(t *testing.T) {
	g := completeGraph(t, 4)
	dd := build(t, NewPAC(g, 0, 3))
	require.Equal(t, big.NewInt(5), zdd.Cardinality(dd))
}

// E. A VIGHV "connected" selection over a cycle, with no_isolate off, has
// exactly nine item selections: the four singleton vertices on their
// own, the four single edges (each with its two endpoints), and the
// whole cycle.
func TestVIGC4ConnectedInducedSubgraphs(t *testing.T) {
	g := cycleGraphHV(t, 4)
	dd := build(t, NewVIGHV(g, "connected", false, intsubset.Set{}))

	require.Equal(t, big.NewInt(9), zdd.Cardinality(dd))
}

// F. Two disconnected edges can never span all four vertices as one
// connected component.
func TestCCSTwoDisconnectedEdgesConnectedIsEmpty(t *testing.T) {
	g := graph.New(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.SetOrder(graph.AsIs))

	terminals := intsubset.New(0, 1, 2, 3)
	dd := build(t, NewCCS(g, "connected", intsubset.Set{}, terminals))
	require.Equal(t, big.NewInt(0), zdd.Cardinality(dd))
}

// Determinism: building the same spec twice yields the same cardinality.
func TestDeterminism(t *testing.T) {
	g := completeGraph(t, 4)
	dd1 := build(t, NewCCS(g, "tree", intsubset.Set{}, intsubset.New(0, 1, 2, 3)))
	dd2 := build(t, NewCCS(g, "tree", intsubset.Set{}, intsubset.New(0, 1, 2, 3)))
	require.Equal(t, zdd.Cardinality(dd1), zdd.Cardinality(dd2))
}

// Power-set sanity: an unconstrained Power spec counts 2^|E|.
func TestPowerSanity(t *testing.T) {
	g := completeGraph(t, 4)
	dd := build(t, NewPower(g))
	want := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(g.NumE())), nil)
	require.Equal(t, want, zdd.Cardinality(dd))
}

// Enumeration and counting agree: Cardinality is stable whether or not
// the diagram has already passed through EnumeratePaths, and equals the
// number of paths EnumeratePaths visits.
func TestEnumerationCountMatchesCardinality(t *testing.T) {
	g := pathGraph(t, 5)
	dd := build(t, NewPAC(g, 0, 4))
	before := zdd.Cardinality(dd)

	count := 0
	require.NoError(t, zdd.EnumeratePaths(dd, func(selected []int) error {
		count++
		return nil
	}))

	after := zdd.Cardinality(dd)
	require.Equal(t, before, after)
	require.Equal(t, before, big.NewInt(int64(count)))
}

// Forest correctness: forcing forest mode without a spanning-all
// terminal requirement still rejects any selection that closes a cycle.
// On a triangle the only vertex-induced selections left are the empty
// one and the three single edges: two edges would put all three
// vertices in S and so induce the third.
func TestVIGForestRejectsCycle(t *testing.T) {
	g := cycleGraph(t, 3)
	dd := build(t, NewVIG(g, "forest", intsubset.Set{}))

	found := false
	require.NoError(t, zdd.EnumeratePaths(dd, func(selected []int) error {
		if len(selected) == 3 {
			found = true
		}
		return nil
	}))
	require.False(t, found, "forest mode must never select all three edges of a triangle")
}

// Product AND-composes two specs: intersecting an EdgeCount bound with
// an unconstrained EdgeCount, which lets every item through, reproduces
// the bounded EdgeCount spec alone.
func TestProductIntersectsWithUnconstrainedEdgeCount(t *testing.T) {
	hv := graph.NewHybrid(4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, hv.AddEdge(i, j))
		}
	}
	require.NoError(t, hv.SetOrder(graph.AsIs))
	require.NoError(t, hv.SetItems())

	bound := intsubset.New(2)
	ddAlone := build(t, NewEdgeCount(hv, bound))
	ddProduct := build(t, NewProduct(NewEdgeCount(hv, bound), NewEdgeCount(hv, intsubset.Set{})))

	require.Equal(t, zdd.Cardinality(ddAlone), zdd.Cardinality(ddProduct))
	require.True(t, zdd.Cardinality(ddProduct).Sign() > 0)
}

// Import round-trip: re-exposing an already-reduced diagram through
// Import preserves its cardinality exactly.
func TestImportRoundTrip(t *testing.T) {
	g := completeGraph(t, 4)
	original := build(t, NewCCS(g, "tree", intsubset.Set{}, intsubset.New(0, 1, 2, 3)))

	reimported := build(t, NewImport(original))
	require.Equal(t, zdd.Cardinality(original), zdd.Cardinality(reimported))
}

// Order-independence: swapping the two endpoints of PAC's path query
// must not change the represented cardinality.
func TestPACOrderIndependence(t *testing.T) {
	g := completeGraph(t, 4)
	dd1 := build(t, NewPAC(g, 0, 3))
	dd2 := build(t, NewPAC(g, 3, 0))
	require.Equal(t, zdd.Cardinality(dd1), zdd.Cardinality(dd2))
}

// CCSHV adds, on top of every CCS edge-based selection, the choice of
// picking a single vertex on its own as a trivial one-vertex component
// -- so a "connected" count over CCSHV must strictly exceed the same
// count over CCS on the plain graph carrying the same edges.
func TestCCSHVAddsIsolatedVertexChoices(t *testing.T) {
	plain := cycleGraph(t, 3)
	hv := cycleGraphHV(t, 3)

	ddPlain := build(t, NewCCS(plain, "connected", intsubset.Set{}, intsubset.Set{}))
	ddHV := build(t, NewCCSHV(hv, "connected", intsubset.Set{}, intsubset.Set{}))

	require.Greater(t, zdd.Cardinality(ddPlain).Cmp(big.NewInt(0)), 0)
	require.Greater(t, zdd.Cardinality(ddHV).Cmp(zdd.Cardinality(ddPlain)), 0)
}

// VCUTHV is the dual of VIGHV: cutting every vertex in a cycle apart
// one item at a time is always a valid multi-way split once at least
// two pieces remain, so the default constraint must accept more than
// just the plain edge-only VCUT selections.
func TestVCUTHVAddsIsolatedVertexChoices(t *testing.T) {
	plain := cycleGraph(t, 4)
	hv := cycleGraphHV(t, 4)

	ddPlain := build(t, NewVCUT(plain, intsubset.Set{}))
	ddHV := build(t, NewVCUTHV(hv, intsubset.Set{}))

	require.Greater(t, zdd.Cardinality(ddHV).Cmp(zdd.Cardinality(ddPlain)), 0)
}

// A vertex item's take/leave in PACHV is always forced by the path
// state its incident edges already settled -- it never adds a genuine
// choice -- so PACHV represents exactly the same edge selections as
// PAC on the same graph.
func TestPACHVMatchesPACCardinality(t *testing.T) {
	plainPath, hvPath := pathGraph(t, 5), pathGraphHV(t, 5)
	require.Equal(t,
		zdd.Cardinality(build(t, NewPAC(plainPath, 0, 4))),
		zdd.Cardinality(build(t, NewPACHV(hvPath, 0, 4))),
	)

	plainCycle, hvCycle := cycleGraph(t, 4), cycleGraphHV(t, 4)
	require.Equal(t,
		zdd.Cardinality(build(t, NewPAC(plainCycle, -1, -1))),
		zdd.Cardinality(build(t, NewPACHV(hvCycle, -1, -1))),
	)
}

// The unique accepted path in a 5-vertex path graph must select every
// vertex along it, not just the right number of edges -- a regression
// check for a bug where a premature mate reset made every on-path
// vertex look untouched, forcing it to be left instead of taken.
func TestPACHVSelectsEveryVertexOnThePath(t *testing.T) {
	hv := pathGraphHV(t, 5)
	dd := build(t, NewPACHV(hv, 0, 4))

	var vertices []int
	require.NoError(t, zdd.EnumeratePaths(dd, func(selected []int) error {
		for _, level := range selected {
			item := hv.ItemAf(hv.NumI() - level)
			if item.IsVertex {
				vertices = append(vertices, item.V)
			}
		}
		return nil
	}))

	sort.Ints(vertices)
	require.Equal(t, []int{0, 1, 2, 3, 4}, vertices)
}

// VertexConstraint forces every Select vertex item to be taken and
// every NonSelect vertex item to be left, and leaves every other item
// (edges, and vertices named by neither set) free.
func TestVertexConstraintForcesNamedVertices(t *testing.T) {
	g := cycleGraphHV(t, 4)
	dd := build(t, NewVertexConstraint(g, intsubset.New(0), intsubset.New(2)))

	// 4 free edges, vertex 0 forced taken, vertex 2 forced left,
	// vertices 1 and 3 free: 2^4 * 2^2 = 64.
	require.Equal(t, big.NewInt(64), zdd.Cardinality(dd))
}
