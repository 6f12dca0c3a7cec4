// Package poet_test provides benchmarks for corpus construction and
// poem generation.
package poet_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/affinity/poet"
)

// benchCorpus repeats a small vocabulary so the graph gains weighty,
// contested edges rather than a long chain of weight-1 links.
func benchCorpus() string {
	phrase := "the quick brown fox jumps over the lazy dog and the quick red fox runs past the sleeping dog "

	return strings.Repeat(phrase, 128)
}

func BenchmarkNew(b *testing.B) {
	corpus := benchCorpus()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = poet.New(corpus)
	}
}

func BenchmarkGenerate(b *testing.B) {
	p := poet.New(benchCorpus())
	input := "the fox over dog"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Generate(input)
	}
}
