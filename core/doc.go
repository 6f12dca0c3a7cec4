// Package core provides Digraph, a mutable weighted directed graph over
// arbitrary comparable labels.
//
// A Digraph[L] stores a set of vertices of type L and at most one
// integer-weighted directed edge per ordered (source, target) pair. Every
// stored weight is strictly positive: SetEdge with weight 0 removes the
// edge, and negative weights are rejected with ErrNegativeWeight. Adding
// an edge implicitly adds both endpoints, so a vertex referenced by any
// edge is always present in the vertex set.
//
// Labels must be immutable values with meaningful equality (the usual
// contract of a Go map key). They are never mutated by the graph.
//
// Query methods return snapshots: Vertices returns a freshly allocated
// slice and SourcesOf/TargetsOf return freshly allocated maps, so callers
// can never mutate graph internals through a returned value. Because L is
// only constrained to comparable, no ordering exists for it; the order of
// Vertices and of map iteration is unspecified and callers MUST NOT rely
// on it.
//
// Concurrency: Digraph performs no internal locking. A host that shares
// one graph across goroutines must serialize all mutating calls and may
// interleave read-only queries only while no mutation is in flight
// (single-writer/multiple-reader discipline, enforced externally).
package core
