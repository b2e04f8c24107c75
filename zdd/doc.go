// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package zdd implements frontier-based construction of zero-suppressed
// binary decision diagrams (ZDDs) from a small state-machine contract
// (Spec), plus the node table, reduction and query machinery shared by
// every concrete spec in package specs.
//
// A Spec never sees the whole diagram: it only knows how to derive the
// top level from nothing (Root) and the next level from a mate-array
// state and a branch choice (Child). Builder drives that contract
// level-by-level, deduplicating states with a per-level hash table, the
// same way hudd.go deduplicates BDD nodes with a per-manager hash table.
// Reduce then collapses the resulting level table into the two ZDD
// canonical forms (zero-suppression and isomorphism merging).
package zdd
