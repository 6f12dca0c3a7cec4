package core

// AddVertex inserts v into the vertex set if absent and reports whether it
// was newly added. Adding an existing vertex is a no-op returning false.
// Complexity: O(1)
func (g *Digraph[L]) AddVertex(v L) bool {
	if _, ok := g.adj[v]; ok {
		return false
	}
	g.adj[v] = make(map[L]int)

	return true
}

// SetEdge sets the weight of the directed edge source→target, inserting
// both endpoints into the vertex set if absent. A weight of 0 removes the
// edge instead of storing it, so persisted weights are always strictly
// positive. Returns the previous weight of the edge (0 if it did not
// exist) and ErrNegativeWeight if weight < 0, in which case the graph is
// left unchanged.
// Complexity: O(1)
func (g *Digraph[L]) SetEdge(source, target L, weight int) (int, error) {
	if weight < 0 {
		return 0, ErrNegativeWeight
	}
	g.AddVertex(source)
	g.AddVertex(target)

	prev := g.adj[source][target]
	if weight == 0 {
		delete(g.adj[source], target)
	} else {
		g.adj[source][target] = weight
	}

	return prev, nil
}

// RemoveVertex removes v and every edge incident to it, outgoing and
// incoming, and reports whether v was present.
// Complexity: O(V) — incoming edges require a scan over all sources.
func (g *Digraph[L]) RemoveVertex(v L) bool {
	if _, ok := g.adj[v]; !ok {
		return false
	}
	delete(g.adj, v)
	for _, targets := range g.adj {
		delete(targets, v)
	}

	return true
}

// HasVertex reports whether v is in the vertex set.
// Complexity: O(1)
func (g *Digraph[L]) HasVertex(v L) bool {
	_, ok := g.adj[v]

	return ok
}

// HasEdge reports whether the directed edge source→target exists.
// Complexity: O(1)
func (g *Digraph[L]) HasEdge(source, target L) bool {
	_, ok := g.adj[source][target]

	return ok
}

// Weight returns the weight of the edge source→target and whether the
// edge exists. A missing edge yields (0, false); stored weights are
// always ≥ 1.
// Complexity: O(1)
func (g *Digraph[L]) Weight(source, target L) (int, bool) {
	w, ok := g.adj[source][target]

	return w, ok
}

// Vertices returns the current vertex set as a freshly allocated slice.
// The order is unspecified; callers needing determinism must sort with a
// label-specific comparison of their own.
// Complexity: O(V)
func (g *Digraph[L]) Vertices() []L {
	out := make([]L, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Digraph[L]) VertexCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of directed edges.
// Complexity: O(V)
func (g *Digraph[L]) EdgeCount() int {
	var n int
	for _, targets := range g.adj {
		n += len(targets)
	}

	return n
}

// TargetsOf returns every vertex reachable by one edge from source,
// mapped to that edge's weight. The map is a freshly allocated snapshot,
// empty (non-nil) when source has no outgoing edges or does not exist.
// Complexity: O(deg(source))
func (g *Digraph[L]) TargetsOf(source L) map[L]int {
	targets := g.adj[source]
	out := make(map[L]int, len(targets))
	for t, w := range targets {
		out[t] = w
	}

	return out
}

// SourcesOf returns every vertex with an edge into target, mapped to that
// edge's weight. The map is a freshly allocated snapshot, empty (non-nil)
// when target has no incoming edges or does not exist.
// Complexity: O(V) — incoming edges require a scan over all sources.
func (g *Digraph[L]) SourcesOf(target L) map[L]int {
	out := make(map[L]int)
	for s, targets := range g.adj {
		if w, ok := targets[target]; ok {
			out[s] = w
		}
	}

	return out
}

// Clone returns a deep copy of the graph. Mutating the copy never
// affects the original and vice versa; labels themselves are shared
// (they are immutable values by contract).
// Complexity: O(V + E)
func (g *Digraph[L]) Clone() *Digraph[L] {
	out := &Digraph[L]{adj: make(map[L]map[L]int, len(g.adj))}
	for v, targets := range g.adj {
		row := make(map[L]int, len(targets))
		for t, w := range targets {
			row[t] = w
		}
		out.adj[v] = row
	}

	return out
}

// Validate checks the representation invariant: every stored edge weight
// is strictly positive and every edge target is present in the vertex
// set. It returns nil on a healthy graph and an error wrapping
// ErrCorruptGraph otherwise. The check is a cheap optional pass for
// tests and post-construction assertions, not a cost paid per mutation.
// Complexity: O(V + E)
func (g *Digraph[L]) Validate() error {
	for _, targets := range g.adj {
		for t, w := range targets {
			if w <= 0 {
				return ErrCorruptGraph
			}
			if _, ok := g.adj[t]; !ok {
				return ErrCorruptGraph
			}
		}
	}

	return nil
}
