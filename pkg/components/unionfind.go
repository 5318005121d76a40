package components

import (
	"github.com/islandertools/islander/pkg/graph"
)

// Finder is an incremental quick-find structure. Each vertex stores an index
// into an arena of component member lists; all vertices of one component
// share the same arena slot. Lookup is a single map access, and a union
// appends the smaller list onto the larger and repoints the smaller list's
// vertices.
//
// The arena-plus-index layout makes the core invariant directly observable:
// two vertices are in the same component iff [Finder.Slot] returns the same
// index for both.
//
// Merge cost is bounded by total component growth: O(n + m) amortized under
// typical edge orders, O(n·m) for pathological orders. This is the accepted
// quick-find trade-off, not union-by-rank.
//
// The zero value is not usable; call [NewFinder]. Finder is not safe for
// concurrent use.
type Finder[V comparable] struct {
	slot  map[V]int
	arena [][]V
}

// NewFinder creates an empty Finder.
func NewFinder[V comparable]() *Finder[V] {
	return &Finder[V]{slot: make(map[V]int)}
}

// AddVertex registers v as a singleton component if it has not been seen.
// Adding a known vertex is a no-op.
func (f *Finder[V]) AddVertex(v V) {
	if _, ok := f.slot[v]; ok {
		return
	}
	f.slot[v] = len(f.arena)
	f.arena = append(f.arena, []V{v})
}

// AddEdge records the edge (u, v), merging their components if needed.
//
// If neither endpoint is known, both share a fresh two-element list. If one
// is known, the other joins its component. If both are known and distinct,
// the smaller component is absorbed into the larger; on equal sizes the
// first argument's component absorbs the second's. Self-loops and repeated
// edges are no-ops beyond first registration.
func (f *Finder[V]) AddEdge(u, v V) {
	su, okU := f.slot[u]
	sv, okV := f.slot[v]

	switch {
	case !okU && !okV:
		s := len(f.arena)
		members := []V{u}
		if u != v {
			members = append(members, v)
		}
		f.arena = append(f.arena, members)
		f.slot[u] = s
		f.slot[v] = s
	case okU && !okV:
		f.arena[su] = append(f.arena[su], v)
		f.slot[v] = su
	case !okU && okV:
		f.arena[sv] = append(f.arena[sv], u)
		f.slot[u] = sv
	case su != sv:
		f.merge(su, sv)
	}
}

// merge absorbs the smaller of two arena slots into the larger. The
// absorbed slot is cleared and never reused.
func (f *Finder[V]) merge(a, b int) {
	if len(f.arena[b]) > len(f.arena[a]) {
		a, b = b, a
	}
	for _, w := range f.arena[b] {
		f.slot[w] = a
	}
	f.arena[a] = append(f.arena[a], f.arena[b]...)
	f.arena[b] = nil
}

// Slot returns the arena index of v's component. The second return is false
// for vertices the Finder has never seen.
func (f *Finder[V]) Slot(v V) (int, bool) {
	s, ok := f.slot[v]
	return s, ok
}

// Connected reports whether u and v are currently in the same component.
// Unknown vertices are connected to nothing, not even themselves.
func (f *Finder[V]) Connected(u, v V) bool {
	su, okU := f.slot[u]
	sv, okV := f.slot[v]
	return okU && okV && su == sv
}

// VertexCount returns the number of registered vertices.
func (f *Finder[V]) VertexCount() int { return len(f.slot) }

// Membership returns the vertex → member-list mapping for the current
// state. All vertices of one component receive the same slice value, so the
// result can be materialized with [FromMembership] without collapsing
// distinct components that hold equal contents.
func (f *Finder[V]) Membership() Membership[V] {
	m := make(Membership[V], len(f.slot))
	for _, members := range f.arena {
		if members == nil {
			continue
		}
		for _, v := range members {
			m[v] = members
		}
	}
	return m
}

// UnionFind computes component membership for an edge list using the
// quick-find strategy. Vertices listed in extra but touched by no edge
// become singleton components.
func UnionFind[V comparable](edges []graph.Edge[V], extra []V) Membership[V] {
	f := NewFinder[V]()
	for _, e := range edges {
		f.AddEdge(e.From, e.To)
	}
	for _, v := range extra {
		f.AddVertex(v)
	}
	return f.Membership()
}
