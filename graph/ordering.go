// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package graph

import (
	"math"
	"sort"

	"github.com/frontierzdd/frontier/intsubset"
)

// dfsOrdering emits each edge the first time a depth-first walk visits
// either of its endpoints.
func (g *Graph) dfsOrdering() {
	vis := make([]bool, g.numV)
	used := make(map[pair]bool)
	for v := 0; v < g.numV; v++ {
		g.dfsVisit(v, vis, used)
	}
}

func (g *Graph) dfsVisit(v int, vis []bool, used map[pair]bool) {
	if vis[v] {
		return
	}
	vis[v] = true
	for u := 0; u < g.numV; u++ {
		if used[pair{u, v}] {
			continue
		}
		g.emitBoth(u, v)
		used[pair{u, v}] = true
		used[pair{v, u}] = true
		if g.IsAdj(u, v) {
			g.dfsVisit(u, vis, used)
		}
	}
}

// bfsOrdering explores each component breadth-first, visiting the
// neighbours of each vertex in sorted order, and emits edges the first
// time either endpoint is dequeued.
func (g *Graph) bfsOrdering() {
	adj := make([][]int, g.numV)
	for p := range g.emap {
		adj[p.u] = append(adj[p.u], p.v)
		adj[p.v] = append(adj[p.v], p.u)
	}
	for v := range adj {
		sort.Ints(adj[v])
	}

	vis := make([]bool, g.numV)
	used := make(map[pair]bool)

	for start := 0; start < g.numV; start++ {
		if vis[start] {
			continue
		}
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			if vis[v] {
				continue
			}
			vis[v] = true
			for _, u := range adj[v] {
				if !vis[u] {
					queue = append(queue, u)
				}
				if used[pair{u, v}] {
					continue
				}
				g.emitBoth(u, v)
				used[pair{u, v}] = true
				used[pair{v, u}] = true
			}
		}
	}
}

// emitBoth appends every edge recorded from u to v, and every edge
// recorded from v to u, to g.edges (both directions, since the input
// multiset is keyed by exact direction).
func (g *Graph) emitBoth(u, v int) {
	if c := g.emap[pair{u, v}]; c > 0 {
		for i := 0; i < c; i++ {
			g.edges = append(g.edges, Edge{V1: u, V2: v})
		}
	}
	if c := g.emap[pair{v, u}]; c > 0 {
		for i := 0; i < c; i++ {
			g.edges = append(g.edges, Edge{V1: v, V2: u})
		}
	}
}

// greedyOrdering heuristically minimizes the peak frontier size: at each
// step, it extends the frontier through the vertex already in it with
// minimum remaining degree, falling back to the globally minimum-degree
// vertex once the frontier empties.
func (g *Graph) greedyOrdering() {
	deg := make([]int, g.numV+1)
	used := make(map[pair]bool)
	for p, c := range g.emap {
		deg[p.u] += c
		deg[p.v] += c
	}
	deg[g.numV] = math.MaxInt32 // sentinel: never chosen as a minimum

	consume := func(u, v int) int {
		cnt := 0
		if c := g.emap[pair{u, v}]; c > 0 && !used[pair{u, v}] {
			for i := 0; i < c; i++ {
				g.edges = append(g.edges, Edge{V1: u, V2: v})
			}
			deg[u] -= c
			deg[v] -= c
			used[pair{u, v}] = true
			cnt += c
		}
		if c := g.emap[pair{v, u}]; c > 0 && !used[pair{v, u}] {
			for i := 0; i < c; i++ {
				g.edges = append(g.edges, Edge{V1: v, V2: u})
			}
			deg[u] -= c
			deg[v] -= c
			used[pair{v, u}] = true
			cnt += c
		}
		return cnt
	}

	var frontier intsubset.Set

	for {
		vals := frontier.Values()
		outV := intsubset.Set{}
		for i, u := range vals {
			for _, v := range vals[i+1:] {
				if !used[pair{u, v}] && g.findEdge(u, v) {
					consume(u, v)
				}
				if !used[pair{v, u}] && g.findEdge(v, u) {
					consume(v, u)
				}
				if deg[u] == 0 {
					outV.Add(u)
				}
				if deg[v] == 0 {
					outV.Add(v)
				}
			}
		}
		for _, v := range outV.Values() {
			frontier.Remove(v)
		}

		piv := g.numV
		if frontier.Empty() {
			for v := 0; v < g.numV; v++ {
				if deg[v] > 0 && deg[piv] > deg[v] {
					piv = v
				}
			}
			if piv == g.numV {
				break
			}
		} else {
			piv = frontier.Values()[0]
			for _, x := range frontier.Values() {
				if deg[piv] > deg[x] {
					piv = x
				}
			}
		}

		u := piv
		for v := 0; v < g.numV; v++ {
			if !used[pair{u, v}] && g.findEdge(u, v) {
				frontier.Add(v)
				consume(u, v)
			}
			if !used[pair{v, u}] && g.findEdge(v, u) {
				frontier.Add(v)
				consume(v, u)
			}
			if deg[u] == 0 {
				frontier.Remove(u)
			}
			if deg[v] == 0 {
				frontier.Remove(v)
			}
		}
	}
}
