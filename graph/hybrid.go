// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package graph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/frontierzdd/frontier/dderr"
)

// Item is a single element of a HybridGraph's linearized sequence: either
// an edge decision (IsVertex == false, the embedded Edge fields apply) or
// a vertex-inclusion decision (IsVertex == true, V and I apply).
type Item struct {
	Edge
	IsVertex bool
	V        int // vertex id, valid only if IsVertex
	I        int // mate slot of V, valid only if IsVertex
}

func (it Item) String() string {
	if it.IsVertex {
		return fmt.Sprintf("Vertex(%d)@%d", it.V, it.I)
	}
	return it.Edge.String()
}

// AddInfoHV is the HybridGraph counterpart of AddInfo: the same
// remaining-degree and adjacency-projection fields, plus Adj, the set of
// already-frontier vertices adjacent to a vertex item's own vertex.
type AddInfoHV struct {
	Rm1, Rm2   int
	Adj1, Adj2 *bitset.BitSet
	Frontier   *bitset.BitSet
	Adj        *bitset.BitSet
}

// HybridGraph extends Graph with two interleaved item sequences: "before"
// (a vertex item precedes its first incident edge) and "after" (a vertex
// item follows its last incident edge). Specs choose whichever sequence
// suits the constraint they enforce.
type HybridGraph struct {
	Graph

	itemsBf []Item
	itemsAf []Item

	addinfoBf []AddInfoHV
	addinfoAf []AddInfoHV

	itemsSet bool
}

// NewHybrid returns an empty HybridGraph over numV vertices.
func NewHybrid(numV int) *HybridGraph {
	return &HybridGraph{Graph: *New(numV)}
}

// NumI returns the number of items in either sequence (they always have
// the same length: V_active + E, plus one item for every fully isolated
// vertex). Valid only after SetItems.
func (h *HybridGraph) NumI() int { return len(h.itemsAf) }

// ItemBf returns the i'th item of the "before" sequence.
func (h *HybridGraph) ItemBf(i int) Item { return h.itemsBf[i] }

// ItemAf returns the i'th item of the "after" sequence.
func (h *HybridGraph) ItemAf(i int) Item { return h.itemsAf[i] }

// AddInfoBf returns the frontier metadata of the i'th "before" item.
func (h *HybridGraph) AddInfoBf(i int) AddInfoHV { return h.addinfoBf[i] }

// AddInfoAf returns the frontier metadata of the i'th "after" item.
func (h *HybridGraph) AddInfoAf(i int) AddInfoHV { return h.addinfoAf[i] }

// SetItems builds both item sequences from the already-fixed edge order.
// It must be called after SetOrder.
func (h *HybridGraph) SetItems() error {
	if !h.IsOrdered() {
		return dderr.New(dderr.InvalidOrdering, fmt.Errorf("SetItems called before SetOrder"))
	}

	h.itemsBf = h.itemsBf[:0]
	h.itemsAf = h.itemsAf[:0]
	h.addinfoBf = h.addinfoBf[:0]
	h.addinfoAf = h.addinfoAf[:0]

	vis := make([]bool, h.NumV())
	frontier := bitset.New(uint(h.NumV()))
	numE := h.NumE()

	adjOf := func(v int, fr *bitset.BitSet) *bitset.BitSet {
		adj := bitset.New(uint(h.NumV()))
		for i, ok := fr.NextSet(0); ok; i, ok = fr.NextSet(i + 1) {
			if h.IsAdj(v, int(i)) {
				adj.Set(i)
			}
		}
		return adj
	}

	for i := 0; i < numE; i++ {
		e := h.Edge(i)
		vis[e.V1] = true
		vis[e.V2] = true

		if e.In1 {
			h.itemsBf = append(h.itemsBf, Item{IsVertex: true, V: e.V1, I: e.I1})
			h.addinfoBf = append(h.addinfoBf, AddInfoHV{Frontier: frontier.Clone(), Adj: adjOf(e.V1, frontier)})
		}
		if e.In2 {
			h.itemsBf = append(h.itemsBf, Item{IsVertex: true, V: e.V2, I: e.I2})
			h.addinfoBf = append(h.addinfoBf, AddInfoHV{Frontier: frontier.Clone(), Adj: adjOf(e.V2, frontier)})
		}

		frontier.Set(uint(e.V1))
		frontier.Set(uint(e.V2))

		info := h.AddInfo(i)
		hv := AddInfoHV{Rm1: info.Rm1, Rm2: info.Rm2, Adj1: info.Adj1, Adj2: info.Adj2, Frontier: info.Frontier}

		h.itemsBf = append(h.itemsBf, Item{Edge: e})
		h.addinfoBf = append(h.addinfoBf, hv)

		h.itemsAf = append(h.itemsAf, Item{Edge: e})
		h.addinfoAf = append(h.addinfoAf, hv)

		if e.Out1 {
			preErase := frontier.Clone()
			frontier.Clear(uint(e.V1))
			h.itemsAf = append(h.itemsAf, Item{IsVertex: true, V: e.V1, I: e.I1})
			h.addinfoAf = append(h.addinfoAf, AddInfoHV{Frontier: preErase, Adj: adjOf(e.V1, frontier)})
		}
		if e.Out2 {
			preErase := frontier.Clone()
			frontier.Clear(uint(e.V2))
			h.itemsAf = append(h.itemsAf, Item{IsVertex: true, V: e.V2, I: e.I2})
			h.addinfoAf = append(h.addinfoAf, AddInfoHV{Frontier: preErase, Adj: adjOf(e.V2, frontier)})
		}
	}

	for v := 0; v < h.NumV(); v++ {
		if vis[v] {
			continue
		}
		item := Item{IsVertex: true, V: v, I: 0}
		info := AddInfoHV{Frontier: bitset.New(uint(h.NumV()))}
		h.itemsAf = append(h.itemsAf, item)
		h.addinfoAf = append(h.addinfoAf, info)
		h.itemsBf = append(h.itemsBf, item)
		h.addinfoBf = append(h.addinfoBf, info)
	}

	h.itemsSet = true
	return nil
}
