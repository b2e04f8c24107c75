// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package dderr defines the error taxonomy shared by package graph,
// package zdd and package specs. It plays the same role as BuDDy-style
// seterror, except that, unlike seterror's string-concatenation
// chaining, it uses the standard %w wrapping so callers can errors.As
// to an *Error and read its Kind, or call IsKind.
package dderr

import "fmt"

// Kind classifies an error raised anywhere in this module.
type Kind int

const (
	// InputError reports a malformed graph file or an out-of-range
	// vertex. Reported once, with the offending file name attached.
	InputError Kind = iota
	// InvalidOrdering reports a request to build items before an
	// ordering was fixed. Always a programming error.
	InvalidOrdering
	// InvalidState reports a violated internal invariant, such as a
	// canonicalization that would assign an out-of-range component id.
	// Indicates a bug in a Spec implementation.
	InvalidState
	// Overflow reports a mate counter that cannot be represented in the
	// width required by a Spec (the frontier exceeded the type's
	// range). Callers should retry with a different ordering.
	Overflow
)

func (k Kind) String() string {
	switch k {
	case InputError:
		return "input error"
	case InvalidOrdering:
		return "invalid ordering"
	case InvalidState:
		return "invalid state"
	case Overflow:
		return "overflow"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type raised by this module. File is set
// only for InputError and names the offending graph file.
type Error struct {
	Kind Kind
	File string
	Err  error
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.File, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error of the given kind wrapping err.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// NewInput builds an InputError naming the offending file.
func NewInput(file string, err error) *Error {
	return &Error{Kind: InputError, File: file, Err: err}
}

// IsKind reports whether the first *Error found along err's Unwrap
// chain has the given kind, e.g. dderr.IsKind(err, dderr.Overflow).
func IsKind(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if as, ok := err.(*Error); ok {
			e = as
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
