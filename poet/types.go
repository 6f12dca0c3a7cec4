// Package poet defines the Poet type, its sentinel errors, and its
// constructors. Generation logic lives in poet.go.
package poet

import (
	"errors"

	"github.com/katalvlaran/affinity/core"
)

// ErrCorpusRead indicates that the corpus source could not be read.
// The underlying I/O error is wrapped alongside it, so errors.Is works
// against both this sentinel and the os/fs error chain.
var ErrCorpusRead = errors.New("poet: cannot read corpus")

// Poet holds the word-affinity graph derived from one corpus.
//
// The graph is built completely at construction time and never mutated
// afterwards; Generate only reads it. A single Poet may therefore serve
// concurrent Generate calls, since no mutation is ever in flight after
// the constructor returns.
type Poet struct {
	graph *core.Digraph[string]
}

// VertexCount returns the number of distinct words in the affinity graph.
func (p *Poet) VertexCount() int {
	return p.graph.VertexCount()
}

// EdgeCount returns the number of distinct adjacencies in the affinity
// graph.
func (p *Poet) EdgeCount() int {
	return p.graph.EdgeCount()
}

// WordGraph returns a deep copy of the affinity graph, so callers can
// inspect or extend it without affecting this Poet.
func (p *Poet) WordGraph() *core.Digraph[string] {
	return p.graph.Clone()
}
