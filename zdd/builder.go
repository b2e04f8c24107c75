// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import (
	"fmt"

	"github.com/frontierzdd/frontier/dderr"
)

// Unreduced is the raw output of Builder.Build: a level table before
// zero-suppression and isomorphism merging have been applied. It is
// rarely useful on its own -- pass it to Reduce.
type Unreduced struct{ table }

// Builder drives a Spec level-by-level, top level down to 1, the way
// hudd.go's makenode drives BuDDy's apply recursion: each freshly
// produced state is looked up in that level's unique table (a plain Go
// map keyed by the state's own bytes, `hudd`'s `[huddsize]byte` trick
// generalized to a variable-width buffer) and only inserted if no equal
// state has been seen yet at that level.
//
// Builder holds no long-lived node cache across levels: once a level has
// been fully resolved into node records, its state buffers and lookup
// map are dropped, keeping construction a single bounded-memory pass.
type Builder struct {
	spec Spec
}

// NewBuilder returns a Builder for spec.
func NewBuilder(spec Spec) *Builder {
	return &Builder{spec: spec}
}

// pending accumulates the distinct states discovered so far for one
// level, in first-discovery order (so that column indices are
// deterministic and independent of Go's unordered map iteration).
type pending struct {
	order []string
	state map[string][]byte
	col   map[string]int
}

func newPending() *pending {
	return &pending{state: map[string][]byte{}, col: map[string]int{}}
}

func (p *pending) insert(level int, s []byte) Ref {
	key := string(s)
	if c, ok := p.col[key]; ok {
		return Ref{Level: level, Col: c}
	}
	c := len(p.order)
	p.col[key] = c
	p.order = append(p.order, key)
	p.state[key] = append([]byte(nil), s...)
	return Ref{Level: level, Col: c}
}

// Build runs the frontier-based construction and returns the unreduced
// level table. It never blocks and never spawns goroutines: construction
// is single-threaded and non-suspending.
func (b *Builder) Build() (*Unreduced, error) {
	spec := b.spec
	size := spec.StateSize()
	root := make([]byte, size)
	top := spec.Root(root)

	if top == 0 {
		return &Unreduced{table{Top: 0, Root: Bot()}}, nil
	}
	if top == -1 {
		return &Unreduced{table{Top: 0, Root: Top()}}, nil
	}
	if top < 1 {
		return nil, dderr.New(dderr.InvalidState, fmt.Errorf("spec.Root returned invalid top level %d", top))
	}

	pends := make([]*pending, top+1)
	pends[top] = newPending()
	rootRef := pends[top].insert(top, root)

	levels := make([][]node, top+1)

	for level := top; level >= 1; level-- {
		p := pends[level]
		if p == nil {
			continue
		}
		nodes := make([]node, len(p.order))
		for col, key := range p.order {
			state := p.state[key]
			var n node
			for branch := 0; branch <= 1; branch++ {
				buf := append([]byte(nil), state...)
				next := spec.Child(buf, level, branch)

				var ref Ref
				switch {
				case next == 0:
					ref = Bot()
				case next == -1:
					ref = Top()
				case next < 0 || next >= level:
					return nil, dderr.New(dderr.InvalidState, fmt.Errorf(
						"spec.Child(level=%d, branch=%d) returned invalid next level %d", level, branch, next))
				default:
					if pends[next] == nil {
						pends[next] = newPending()
					}
					ref = pends[next].insert(next, buf)
				}

				if branch == 0 {
					n.Lo = ref
				} else {
					n.Hi = ref
				}
			}
			nodes[col] = n
		}
		levels[level] = nodes
		pends[level] = nil
		debugf("level %d: %d nodes\n", level, len(nodes))
	}

	return &Unreduced{table{Top: top, Levels: levels, Root: rootRef}}, nil
}
