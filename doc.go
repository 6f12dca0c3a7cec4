// Package affinity derives a word-affinity graph from a text corpus and
// uses it to decorate phrases with "bridge" words.
//
// The module is organized as two small subpackages plus a CLI wrapper:
//
//	core/ — generic, mutable, weighted directed graph over arbitrary
//	        comparable labels: AddVertex, SetEdge, RemoveVertex,
//	        Vertices, SourcesOf, TargetsOf, Clone, Validate
//	poet/ — builds a core.Digraph[string] from a corpus (vertices are
//	        lowercase words, edge weights count adjacencies) and answers
//	        Generate queries by inserting maximum-weight two-hop bridge
//	        words between adjacent input words
//	cmd/affinity — thin command-line front end over poet
//
// Quick example:
//
//	p := poet.New("This is a test of the Mugar Omni Theater sound system.")
//	fmt.Println(p.Generate("Test the system."))
//	// Test of the system.
//
// The graph in core is a standalone ADT: nothing in it knows about words,
// so it can be reused for any directed adjacency-counting problem.
package affinity
