package poet

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/affinity/core"
)

// New creates a Poet whose affinity graph is derived from the given
// corpus text. Tokens are maximal runs of non-whitespace characters,
// case-folded to lowercase; each adjacent token pair increments the
// weight of its edge by one.
// Complexity: O(W) over the number of corpus words.
func New(corpus string) *Poet {
	g := core.New[string]()
	words := strings.Fields(strings.ToLower(corpus))
	for i := 0; i+1 < len(words); i++ {
		prev, _ := g.Weight(words[i], words[i+1])
		if _, err := g.SetEdge(words[i], words[i+1], prev+1); err != nil {
			// prev ≥ 0 always, so the weight is ≥ 1 and SetEdge cannot fail.
			panic(err)
		}
	}
	// All stored weights are counts starting at 1; a violation here means
	// a bug in the build loop or the graph, never bad input.
	if err := g.Validate(); err != nil {
		panic(err)
	}

	return &Poet{graph: g}
}

// NewFromReader creates a Poet from the full contents of r. Read
// failures are wrapped with ErrCorpusRead and returned unrecovered.
func NewFromReader(r io.Reader) (*Poet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusRead, err)
	}

	return New(string(data)), nil
}

// NewFromFile creates a Poet from the text in the named file. Line
// breaks act as word separators, so words never merge across lines while
// adjacency still counts across them. A missing or unreadable file
// yields an error wrapping both ErrCorpusRead and the os error.
func NewFromFile(path string) (*Poet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusRead, err)
	}

	return New(string(data)), nil
}

// Generate produces a variant of input with bridge words inserted.
//
// Between every adjacent pair of input words w1 and w2 (compared in
// lowercase), the bridge is the word b maximizing
// weight(w1→b) + weight(b→w2) over all two-edge paths w1→b→w2 in the
// affinity graph; when no such path exists, no word is inserted for that
// pair. Ties on total weight resolve to the lexicographically smallest
// bridge word — candidate order is part of this contract precisely
// because map iteration order is not.
//
// Input words keep their original casing and order, bridges appear in
// lowercase, and every output word is separated by exactly one space.
// An input with fewer than two words is returned unchanged.
// Complexity: O(N·D) for N input words and maximum out-degree D
// (plus the per-pair sort of D candidates).
func (p *Poet) Generate(input string) string {
	words := strings.Fields(input)
	if len(words) < 2 {
		return input
	}

	var out strings.Builder
	out.WriteString(words[0])
	for i := 0; i+1 < len(words); i++ {
		w1 := strings.ToLower(words[i])
		w2 := strings.ToLower(words[i+1])
		if bridge, ok := p.bestBridge(w1, w2); ok {
			out.WriteByte(' ')
			out.WriteString(bridge)
		}
		out.WriteByte(' ')
		out.WriteString(words[i+1])
	}

	return out.String()
}

// bestBridge returns the maximum-total-weight bridge between w1 and w2
// and whether any two-edge path w1→b→w2 exists. Candidates are scanned
// in lexicographic order and only a strictly greater total displaces the
// current best, which pins the tie-break to the smallest label.
func (p *Poet) bestBridge(w1, w2 string) (string, bool) {
	firstHops := p.graph.TargetsOf(w1)
	candidates := make([]string, 0, len(firstHops))
	for b := range firstHops {
		candidates = append(candidates, b)
	}
	sort.Strings(candidates)

	var best string
	var bestTotal int
	found := false
	for _, b := range candidates {
		second, ok := p.graph.Weight(b, w2)
		if !ok {
			continue
		}
		// Stored weights are ≥ 1, so any real path totals ≥ 2 and always
		// beats the zero start; a weight-0 "path" can never be selected.
		if total := firstHops[b] + second; total > bestTotal {
			best, bestTotal = b, total
			found = true
		}
	}

	return best, found
}
