// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import "github.com/bits-and-blooms/bitset"

// Component-id sentinels shared by every cc-tracking spec (CCS, VIG,
// VCUT, VertexSetCover), matching CCS.hpp/VIG.hpp/VCUT.hpp/SCP.hpp's
// Mate encoding: a frontier slot is either unassigned (dnc, "don't
// care" -- no vertex currently occupies it, or an occupying vertex has
// not yet been linked to any component), forced out of every future
// component (out), or holds a non-negative component id.
const (
	mateDNC int16 = -1
	mateIN  int16 = 0
	mateOUT int16 = -2
)

// getCCid returns the next unused component id: one past the largest
// id currently present in mate.
func getCCid(mate []int16) int16 {
	res := int16(-1)
	for _, m := range mate {
		if m > res {
			res = m
		}
	}
	return res + 1
}

// ccLink merges the components named m1 and m2 into one and renumbers
// every component id in mate to a dense range starting at 0, in order
// of first appearance. It returns the merged component's new id.
//
// This replaces every *.hpp file's own ccLink body (a mix of a
// first-occurrence "trans" table and a frequency-sorted alternative,
// depending on the file) with one canonical scheme used uniformly here.
func ccLink(mate []int16, m1, m2 int16) int16 {
	a, b := m1, m2
	if a > b {
		a, b = b, a
	}
	for i, m := range mate {
		if m == b {
			mate[i] = a
		}
	}

	trans := make(map[int16]int16, len(mate))
	var cur int16
	for i, m := range mate {
		if m < mateIN {
			continue
		}
		if nv, ok := trans[m]; ok {
			mate[i] = nv
		} else {
			trans[m] = cur
			mate[i] = cur
			cur++
		}
	}
	return trans[a]
}

// linkCheck reports whether any frontier slot still holds component id
// cc.
func linkCheck(mate []int16, cc int16) bool {
	for _, m := range mate {
		if m == cc {
			return true
		}
	}
	return false
}

// otherCCs reports whether any completed or in-progress component other
// than cc is still present in the frontier.
func otherCCs(mate []int16, cc int16) bool {
	for _, m := range mate {
		if m >= mateIN && m != cc {
			return true
		}
	}
	return false
}

// reject marks every don't-care slot among adj's member vertices as
// permanently excluded (OUT): a frontier neighbour whose edge to a
// vertex that has just joined a component was already left can then
// never join too. Used by VIG, VCUT and VertexSetCover; CCS does not
// call it.
func reject(mate []int16, adj *bitset.BitSet, slot func(v int) int) {
	for v, ok := adj.NextSet(0); ok; v, ok = adj.NextSet(v + 1) {
		t := slot(int(v))
		if mate[t] == mateDNC {
			mate[t] = mateOUT
		}
	}
}

// setIsolate forces every member of adj out of the frontier entirely,
// used when a vertex item is taken in isolation (no incident edge will
// ever link it to another component).
func setIsolate(mate []int16, adj *bitset.BitSet, slot func(v int) int) {
	for v, ok := adj.NextSet(0); ok; v, ok = adj.NextSet(v + 1) {
		mate[slot(int(v))] = mateOUT
	}
}

// loopCheck reports whether every member of adj is still unassigned,
// i.e. taking the current edge cannot close a cycle through any of
// them.
func loopCheck(mate []int16, adj *bitset.BitSet, slot func(v int) int) bool {
	for v, ok := adj.NextSet(0); ok; v, ok = adj.NextSet(v + 1) {
		if mate[slot(int(v))] >= mateIN {
			return false
		}
	}
	return true
}
