// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package specs

import (
	"encoding/binary"

	"github.com/frontierzdd/frontier/zdd"
)

// Import re-exposes an already-built, already-reduced diagram as a
// Spec, so it can be run through Product alongside freshly constructed
// specs (intersecting an externally produced diagram with a
// DegreeConstraint, a cardinality bound, or another Import). Its own
// state is literally the current node's Ref into the wrapped diagram --
// the same trick ImportZDD.hpp uses, where the spec's "mate" is the
// node's own address and getChild just looks up that address's
// zero/one edges.
type Import struct {
	dd *zdd.DD
}

func NewImport(dd *zdd.DD) *Import { return &Import{dd: dd} }

func (im *Import) StateSize() int { return 8 }

func encodeRef(s []byte, r zdd.Ref) {
	binary.BigEndian.PutUint32(s[0:], uint32(int32(r.Level)))
	binary.BigEndian.PutUint32(s[4:], uint32(int32(r.Col)))
}

func decodeRef(s []byte) zdd.Ref {
	return zdd.Ref{
		Level: int(int32(binary.BigEndian.Uint32(s[0:]))),
		Col:   int(int32(binary.BigEndian.Uint32(s[4:]))),
	}
}

func (im *Import) Root(s []byte) int {
	r := im.dd.Root
	switch {
	case r.IsBot():
		return 0
	case r.IsTop():
		return -1
	}
	encodeRef(s, r)
	return r.Level
}

func (im *Import) Child(s []byte, level, branch int) int {
	r := decodeRef(s)
	lo, hi := im.dd.Children(r)

	next := lo
	if branch == 1 {
		next = hi
	}

	switch {
	case next.IsBot():
		return 0
	case next.IsTop():
		return -1
	}
	encodeRef(s, next)
	return next.Level
}
