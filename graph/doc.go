// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package graph implements the vertex/edge model consumed by package specs
and package zdd: an undirected multigraph with four item orderings
(as-is, DFS, BFS, greedy) and a per-edge mate-slot assignment that later
becomes the frontier array index used by every DD specification.

A Graph only becomes useful once SetOrder has been called: this fixes the
edge order and, in the same pass, dispenses a mate slot to each vertex the
moment it first appears and returns it to a free pool the moment the
vertex is fully seen (its incident edges are exhausted). The number of
slots in use at any point in the order is the frontier size; the largest
value it ever reaches, MaxFrontier, is the width of every mate array a
Spec allocates.

HybridGraph extends Graph by splitting each vertex's arrival or departure
out into its own item, interleaved with the edge items, so that a Spec can
make an explicit accept/reject decision about including a vertex instead
of inferring it from its incident edges alone.
*/
package graph
