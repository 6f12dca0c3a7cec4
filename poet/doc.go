// Package poet generates text variants from a word-affinity graph.
//
// A Poet is built from a corpus of text. Words are maximal runs of
// non-whitespace characters, compared case-insensitively; the affinity
// graph has lowercase words as vertices and the edge w1→w2 weighted by
// the number of times w1 is immediately followed by w2 in the corpus.
// Adjacency is counted across the whole corpus, including across line
// breaks (a newline separates words exactly like a space does).
//
// For example, the corpus
//
//	Hello, HELLO, hello, goodbye!
//
// produces exactly two edges:
//
//	"hello,"  → "hello,"   weight 2
//	"hello,"  → "goodbye!" weight 1
//
// Generate walks an input phrase and, between every adjacent pair of
// input words w1 and w2, inserts a bridge word b such that w1→b→w2 is a
// two-edge path of maximum total weight in the graph, when such a path
// exists. Input words keep their original casing, bridges are lowercase,
// and output words are separated by single spaces. Given the corpus
//
//	This is a test of the Mugar Omni Theater sound system.
//
// and the input "Test the system.", the output is
//
//	Test of the system.
//
// No natural-language processing happens beyond literal adjacency
// counting: punctuation stays glued to its word and no stemming or
// Unicode segmentation is performed.
package poet
