package graph

// Edge is a directed connection from one vertex to another.
// For undirected analyses the pair order carries no meaning beyond
// determinism: engines treat (u, v) and (v, u) identically.
//
// Self-loops (From == To) are legal and must not corrupt any consumer.
type Edge[V comparable] struct {
	From V
	To   V
}

// Set is an unordered collection of vertices.
type Set[V comparable] map[V]struct{}

// NewSet creates a set containing the given vertices.
func NewSet[V comparable](vs ...V) Set[V] {
	s := make(Set[V], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set. Adding an existing vertex is a no-op.
func (s Set[V]) Add(v V) { s[v] = struct{}{} }

// Contains reports whether v is in the set.
func (s Set[V]) Contains(v V) bool {
	_, ok := s[v]
	return ok
}

// Equal reports whether both sets contain exactly the same vertices.
func (s Set[V]) Equal(other Set[V]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Adjacency maps every vertex of a graph to the set of its outward
// neighbors. Every vertex that appears in any edge, or was supplied as an
// isolated extra vertex, has an entry (possibly an empty set).
type Adjacency[V comparable] map[V]Set[V]

// BuildAdjacency constructs an adjacency structure from an edge list.
//
// Vertices listed in extra but absent from every edge map to an empty
// neighbor set. When directed is false, inserting edge (u, v) adds v to u's
// neighbor set and u to v's. Duplicate edges are idempotent, and a self-loop
// makes the vertex its own neighbor.
//
// The function is pure: it never mutates its inputs and has no side effects.
func BuildAdjacency[V comparable](edges []Edge[V], extra []V, directed bool) Adjacency[V] {
	adj := make(Adjacency[V], len(edges)+len(extra))
	touch := func(v V) Set[V] {
		set, ok := adj[v]
		if !ok {
			set = make(Set[V])
			adj[v] = set
		}
		return set
	}
	for _, e := range edges {
		touch(e.From).Add(e.To)
		if directed {
			touch(e.To)
		} else {
			touch(e.To).Add(e.From)
		}
	}
	for _, v := range extra {
		touch(v)
	}
	return adj
}

// Vertices collects every vertex mentioned by an edge or listed in extra.
// This is the vertex universe that connectivity partitions must cover.
func Vertices[V comparable](edges []Edge[V], extra []V) Set[V] {
	vs := make(Set[V], len(edges)+len(extra))
	for _, e := range edges {
		vs.Add(e.From)
		vs.Add(e.To)
	}
	for _, v := range extra {
		vs.Add(v)
	}
	return vs
}

// Equal reports whether two adjacency structures are structurally equal:
// the same vertices mapped to equal neighbor sets.
func (a Adjacency[V]) Equal(other Adjacency[V]) bool {
	if len(a) != len(other) {
		return false
	}
	for v, set := range a {
		os, ok := other[v]
		if !ok || !set.Equal(os) {
			return false
		}
	}
	return true
}

// VertexCount returns the number of vertices in the structure.
func (a Adjacency[V]) VertexCount() int { return len(a) }

// EdgeCount returns the number of directed neighbor entries. For an
// undirected build, each non-loop edge contributes two entries.
func (a Adjacency[V]) EdgeCount() int {
	n := 0
	for _, set := range a {
		n += len(set)
	}
	return n
}
