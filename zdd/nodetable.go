// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import "fmt"

// levelBot and levelTop are the two terminal sentinels a Ref can carry in
// place of a real level. They play the role of the BDD kernel's reserved
// node ids 0 and 1 (bddfalse/bddtrue in bdd.go), but a Ref is a value
// type here rather than an index into a shared node array.
const (
	levelBot = -1
	levelTop = -2
)

// Ref points either at a terminal (⊥ or ⊤) or at column Col of level
// Level in some node table. The zero Ref is not valid; always construct
// one through Bot, Top, or a table lookup.
type Ref struct {
	Level int
	Col   int
}

// Bot is the empty family, ⊥.
func Bot() Ref { return Ref{Level: levelBot} }

// Top is the family containing only the empty set, ⊤.
func Top() Ref { return Ref{Level: levelTop} }

func (r Ref) IsBot() bool      { return r.Level == levelBot }
func (r Ref) IsTop() bool      { return r.Level == levelTop }
func (r Ref) IsTerminal() bool { return r.Level < 0 }

func (r Ref) String() string {
	switch {
	case r.IsBot():
		return "B"
	case r.IsTop():
		return "T"
	default:
		return fmt.Sprintf("(%d,%d)", r.Level, r.Col)
	}
}

// node is a single ZDD node: a 0-edge (Lo, "item excluded") and a 1-edge
// (Hi, "item included"), both pointing strictly below the node's own
// level, or at a terminal.
type node struct {
	Lo, Hi Ref
}

// table is the shared shape of both an Unreduced (builder output) and a
// DD (reduced): a dense, level-indexed array of node slices plus a root
// reference. Levels[0] is always unused -- levels are 1-indexed.
type table struct {
	Top    int
	Levels [][]node
	Root   Ref
}

// NumLevels returns the number of levels the table was built over
// (equal to the top level returned by the spec's Root, or 0 for a
// trivial ⊥/⊤ diagram).
func (t *table) NumLevels() int { return t.Top }

// NodeCount returns the total number of nodes across all levels.
func (t *table) NodeCount() int {
	n := 0
	for _, lvl := range t.Levels {
		n += len(lvl)
	}
	return n
}

func (t *table) node(r Ref) node {
	return t.Levels[r.Level][r.Col]
}
