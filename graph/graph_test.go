// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pathGraph(t *testing.T) *Graph {
	g := New(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestAddEdgeOutOfRange(t *testing.T) {
	g := New(3)
	require.Error(t, g.AddEdge(0, 5))
}

func TestSetOrderAsIsPreservesInput(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.SetOrder(AsIs))
	require.Equal(t, 4, g.NumE())
	for i, want := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}} {
		e := g.Edge(i)
		require.Equal(t, want[0], e.V1)
		require.Equal(t, want[1], e.V2)
	}
}

func TestSetOrderInOutInvariant(t *testing.T) {
	for _, ord := range []Ordering{AsIs, DFS, BFS, Greedy} {
		g := pathGraph(t)
		require.NoError(t, g.SetOrder(ord))

		inCount := make([]int, g.NumV())
		outCount := make([]int, g.NumV())
		for i := 0; i < g.NumE(); i++ {
			e := g.Edge(i)
			if e.In1 {
				inCount[e.V1]++
			}
			if e.In2 {
				inCount[e.V2]++
			}
			if e.Out1 {
				outCount[e.V1]++
			}
			if e.Out2 {
				outCount[e.V2]++
			}
		}
		for v := 0; v < g.NumV(); v++ {
			require.Equalf(t, 1, inCount[v], "ordering %s: vertex %d in-count", ord, v)
			require.Equalf(t, 1, outCount[v], "ordering %s: vertex %d out-count", ord, v)
		}
	}
}

func TestMaxFrontierPositive(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.SetOrder(BFS))
	require.Greater(t, g.MaxFrontier(), 0)
}

func TestParseWriteTextRoundTrip(t *testing.T) {
	const text = "4 3\n0 1\n1 2\n2 3\n"
	g, err := ParseText(strings.NewReader(text), "test")
	require.NoError(t, err)
	require.Equal(t, 4, g.NumV())

	var buf strings.Builder
	require.NoError(t, WriteText(&buf, g))
	require.Equal(t, text, buf.String())
}

func TestParseTextRejectsOutOfRange(t *testing.T) {
	_, err := ParseText(strings.NewReader("2 1\n0 5\n"), "bad")
	require.Error(t, err)
}

func TestHybridGraphItemCount(t *testing.T) {
	g := NewHybrid(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.SetOrder(AsIs))
	require.NoError(t, g.SetItems())
	require.Equal(t, g.NumV()+g.NumE(), g.NumI())
}

func TestHybridGraphIsolatedVertex(t *testing.T) {
	g := NewHybrid(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.SetOrder(AsIs))
	require.NoError(t, g.SetItems())
	require.Equal(t, 4, g.NumI()) // edge(0,1) + vertex(0) + vertex(1) + isolated vertex 2

	found := false
	for i := 0; i < g.NumI(); i++ {
		it := g.ItemAf(i)
		if it.IsVertex && it.V == 2 {
			found = true
		}
	}
	require.True(t, found)
}
