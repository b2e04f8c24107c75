// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

// DD is a reduced zero-suppressed decision diagram: the output of
// Reduce, and the input every query in this package (Cardinality,
// EnumeratePaths, Dump) expects.
type DD struct{ table }

// childKey canonicalizes a node's two already-resolved children for the
// merge step below.
type childKey struct{ Lo, Hi Ref }

// Reduce applies the two ZDD reduction rules to an Unreduced level
// table, bottom-up (level 1 first):
//
//  1. Zero-suppression: a node whose 1-edge (Hi) is ⊥ contributes
//     nothing when taken, so it is deleted and every reference to it is
//     redirected to its own 0-edge (Lo).
//  2. Merging: two nodes at the same level with equal (Lo, Hi) children
//     (after (1) has already been applied to them) are isomorphic and
//     are collapsed into one.
//
// Because a node's children always resolve to strictly lower levels, a
// single bottom-up pass is enough: by the time level L is processed,
// every reference into a level below L has already been rewritten to
// its final, reduced form.
func Reduce(u *Unreduced) *DD {
	remap := make([]map[int]Ref, u.Top+1)
	newLevels := make([][]node, u.Top+1)
	canon := make([]map[childKey]int, u.Top+1)

	resolve := func(r Ref) Ref {
		if r.IsTerminal() {
			return r
		}
		return remap[r.Level][r.Col]
	}

	for level := 1; level <= u.Top; level++ {
		nodes := u.Levels[level]
		if nodes == nil {
			continue
		}
		remap[level] = make(map[int]Ref, len(nodes))
		canon[level] = make(map[childKey]int, len(nodes))

		for col, n := range nodes {
			lo := resolve(n.Lo)
			hi := resolve(n.Hi)

			if hi.IsBot() {
				remap[level][col] = lo
				continue
			}

			key := childKey{lo, hi}
			if c, ok := canon[level][key]; ok {
				remap[level][col] = Ref{Level: level, Col: c}
				continue
			}

			c := len(newLevels[level])
			newLevels[level] = append(newLevels[level], node{Lo: lo, Hi: hi})
			canon[level][key] = c
			remap[level][col] = Ref{Level: level, Col: c}
		}
	}

	return &DD{table{Top: u.Top, Levels: newLevels, Root: resolve(u.Root)}}
}
