// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package specs implements the concrete zdd.Spec families: connected
// subgraphs, simple paths and cycles, vertex-induced subgraphs, vertex
// cuts, degree-constrained subgraphs, vertex covers, counting specs,
// power sets, external-ZDD import, and the Product combinator that
// intersects any of the above.
//
// Every Spec in this package encodes its per-level state as a flat
// []byte buffer, the same convention zdd.Spec itself asks for: a fixed
// prefix of counters (big-endian int32; CCSHV and VertexSetCover pack
// two 16-bit quantities into one)
// followed by a fixed-width mate array, one slot per unit of frontier
// width (graph.Graph.MaxFrontier or graph.HybridGraph.MaxFrontier).
package specs

import "encoding/binary"

// counterSize is the width, in bytes, of one big-endian int32 counter
// prefix.
const counterSize = 4

func getCounter(s []byte, off int) int32 {
	return int32(binary.BigEndian.Uint32(s[off:]))
}

func putCounter(s []byte, off int, v int32) {
	binary.BigEndian.PutUint32(s[off:], uint32(v))
}

// mateSize is the width, in bytes, of one big-endian int16 mate slot.
const mateSize = 2

func getMate(s []byte, off, i int) int16 {
	return int16(binary.BigEndian.Uint16(s[off+mateSize*i:]))
}

func putMate(s []byte, off, i int, v int16) {
	binary.BigEndian.PutUint16(s[off+mateSize*i:], uint16(v))
}

// decodeMates copies the n mate slots starting at byte offset off into a
// fresh []int16, so spec code can work with ordinary indexing and slice
// helpers before re-encoding with encodeMates.
func decodeMates(s []byte, off, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = getMate(s, off, i)
	}
	return out
}

func encodeMates(s []byte, off int, mate []int16) {
	for i, v := range mate {
		putMate(s, off, i, v)
	}
}
