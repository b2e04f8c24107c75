// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import (
	"encoding/binary"

	"github.com/frontierzdd/frontier/zdd"
)

// Product AND-composes N sub-specs built over the same item sequence:
// it accepts a selection only when every sub-spec accepts it. This is
// the one composition the connected-subgraph family ever needs in
// practice -- CCS intersected with a DegreeConstraint, VIG intersected
// with an EdgeCount cardinality bound, an Import'ed diagram intersected
// with anything -- the frontier-spec analogue of BuDDy's
// Apply(bddop_and, ...), narrowed down to the one operator this
// repository exposes.
//
// Sub-specs are free to skip levels (Child may jump down more than one
// level, the way PowerHV's forced-exclude runs or an Import'ed
// diagram's own level gaps do). Per the skip-suppression convention
// every Spec in this package follows, a sub that has skipped past the
// group's current level has thereby already decided that level's item
// is excluded -- so Product tracks, per sub, the next level at which
// it actually has something to say, and treats "taken" as an immediate
// reject at any level where some sub is not yet due.
type Product struct {
	subs    []zdd.Spec
	offsets []int
	total   int
}

// per-sub bookkeeping: 1 flag byte ("already accepted", i.e. skipped to
// the ⊤ terminal, so every later item is excluded for that sub) plus a
// 4-byte big-endian int32 recording the next level that sub must be
// consulted at.
const productHeaderPerSub = 1 + 4

func NewProduct(subs ...zdd.Spec) *Product {
	offsets := make([]int, len(subs))
	off := productHeaderPerSub * len(subs)
	for i, sub := range subs {
		offsets[i] = off
		off += sub.StateSize()
	}
	return &Product{subs: subs, offsets: offsets, total: off}
}

func (p *Product) StateSize() int { return p.total }

func (p *Product) subState(s []byte, i int) []byte {
	end := p.offsets[i] + p.subs[i].StateSize()
	return s[p.offsets[i]:end]
}

func (p *Product) flag(s []byte, i int) bool { return s[i] == 1 }
func (p *Product) setFlag(s []byte, i int, v bool) {
	if v {
		s[i] = 1
	} else {
		s[i] = 0
	}
}

func (p *Product) due(s []byte, i int) int {
	n := len(p.subs)
	return int(int32(binary.BigEndian.Uint32(s[n+4*i:])))
}
func (p *Product) setDue(s []byte, i int, v int) {
	n := len(p.subs)
	binary.BigEndian.PutUint32(s[n+4*i:], uint32(int32(v)))
}

func (p *Product) Root(s []byte) int {
	top := 0
	for i, sub := range p.subs {
		r := sub.Root(p.subState(s, i))
		switch {
		case r == 0:
			return 0
		case r == -1:
			p.setFlag(s, i, true)
		default:
			p.setFlag(s, i, false)
			p.setDue(s, i, r)
			if r > top {
				top = r
			}
		}
	}
	if top == 0 {
		return -1
	}
	return top
}

func (p *Product) Child(s []byte, level, branch int) int {
	for i, sub := range p.subs {
		if p.flag(s, i) {
			if branch == 1 {
				return 0
			}
			continue
		}
		if p.due(s, i) != level {
			if branch == 1 {
				return 0
			}
			continue
		}
		r := sub.Child(p.subState(s, i), level, branch)
		switch {
		case r == 0:
			return 0
		case r == -1:
			p.setFlag(s, i, true)
		default:
			p.setDue(s, i, r)
		}
	}

	top := 0
	for i := range p.subs {
		if p.flag(s, i) {
			continue
		}
		if d := p.due(s, i); d > top {
			top = d
		}
	}
	if top == 0 {
		return -1
	}
	return top
}
