// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

// Spec is the frontier-based DD specification contract: a state machine
// over a fixed-size byte buffer (the mate array plus any
// packed counters), driven top-down from Root to the terminals.
//
// A concrete Spec (package specs) owns the byte layout of its state and
// is responsible for canonicalizing it inside Child -- relabelCC-style
// renumbering for component ids, range clamps for counters, and so on --
// so that two states with the same future behavior always produce the
// same bytes. Builder never interprets state bytes itself; it only
// copies them and uses them as hash-map keys.
type Spec interface {
	// StateSize returns the fixed length, in bytes, of a state buffer.
	StateSize() int

	// Root writes the root state into s (len(s) == StateSize()) and
	// returns the top level. It may also return 0 (the whole DD is the
	// empty family, ⊥) or -1 (the whole DD is the family containing only
	// the empty set, ⊤) when no items need to be examined at all.
	Root(s []byte) int

	// Child mutates s in place, moving from level to the branch taken
	// (0 = item excluded, 1 = item included), and returns the next
	// level to recurse into. The next level must be strictly below
	// level, except for the two terminal codes: 0 (reject, ⊥) and -1
	// (accept, ⊤).
	Child(s []byte, level int, branch int) int
}
