// Package core defines the Digraph type, its sentinel errors, and the
// New constructor. Method implementations live in digraph.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeWeight indicates that SetEdge was called with weight < 0.
	// Edge weights are counts; zero deletes and negatives are invalid input.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrCorruptGraph is reported by Validate when the representation
	// invariant is broken (a stored weight ≤ 0, or an adjacency row for a
	// vertex missing from the vertex set). Seeing it means a bug in this
	// package, not invalid caller input.
	ErrCorruptGraph = errors.New("core: representation invariant violated")
)

// Digraph is a mutable weighted directed graph over labels of type L.
//
// The representation is a nested adjacency map: adj[source][target] holds
// the positive weight of the edge source→target. Every key of adj is a
// vertex, including vertices with no outgoing edges (their inner map is
// empty but non-nil).
//
// The zero value is not usable; construct with New.
type Digraph[L comparable] struct {
	adj map[L]map[L]int
}

// New creates an empty Digraph.
// Complexity: O(1)
func New[L comparable]() *Digraph[L] {
	return &Digraph[L]{adj: make(map[L]map[L]int)}
}
