package components

import (
	"github.com/islandertools/islander/pkg/graph"
)

// Partition is a collection of disjoint, unordered vertex groups whose
// union is the full vertex set of the analyzed graph. The order of groups
// is not significant and is not guaranteed to be stable across engines.
type Partition[V comparable] []graph.Set[V]

// Membership maps every vertex to the member list of its component. All
// vertices of one component reference the *same* slice value, so callers
// must not mistake list identity for distinctness of content: two map
// entries are in the same component iff their slices share a backing array.
type Membership[V comparable] map[V][]V

// FromMembership materializes a vertex → member-list mapping into a
// Partition.
//
// Component identity is determined by slice identity (the backing array),
// never by content equality. Two components that happen to hold
// equal-looking member lists mid-merge therefore stay distinct.
func FromMembership[V comparable](m Membership[V]) Partition[V] {
	seen := make(map[*V]struct{}, len(m))
	var parts Partition[V]
	for _, members := range m {
		if len(members) == 0 {
			continue
		}
		head := &members[0]
		if _, dup := seen[head]; dup {
			continue
		}
		seen[head] = struct{}{}
		parts = append(parts, graph.NewSet(members...))
	}
	return parts
}

// Vertices returns the union of all groups in the partition.
func (p Partition[V]) Vertices() graph.Set[V] {
	all := make(graph.Set[V])
	for _, comp := range p {
		for v := range comp {
			all.Add(v)
		}
	}
	return all
}

// Contains reports whether some group in the partition equals want.
func (p Partition[V]) Contains(want graph.Set[V]) bool {
	for _, comp := range p {
		if comp.Equal(want) {
			return true
		}
	}
	return false
}

// Equal reports whether two partitions contain the same groups, ignoring
// group order.
func (p Partition[V]) Equal(other Partition[V]) bool {
	if len(p) != len(other) {
		return false
	}
	matched := make([]bool, len(other))
outer:
	for _, comp := range p {
		for i, oc := range other {
			if !matched[i] && comp.Equal(oc) {
				matched[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// newComponent allocates a group seeded with the start vertex.
func newComponent[V comparable](start V) graph.Set[V] {
	comp := make(graph.Set[V])
	comp.Add(start)
	return comp
}
