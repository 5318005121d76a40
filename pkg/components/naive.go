package components

import (
	"github.com/islandertools/islander/pkg/graph"
)

// NaiveMerge computes component membership by scanning a list of growing
// vertex sets for every edge. For edge (a, b): if the endpoints sit in two
// different sets those sets are merged (the second is absorbed into the
// first and removed); if only one endpoint is found the other joins its
// set; if neither is found a new two-vertex set is started.
//
// Cost is O(m·k) with k components live at each edge, quadratic in the
// worst case. The engine exists as the correctness baseline the faster
// engines are tested against, not for production use.
func NaiveMerge[V comparable](edges []graph.Edge[V], extra []V) Membership[V] {
	var sets []graph.Set[V]

	locate := func(v V) int {
		for i, s := range sets {
			if s.Contains(v) {
				return i
			}
		}
		return -1
	}

	for _, e := range edges {
		ai := locate(e.From)
		bi := locate(e.To)
		switch {
		case ai < 0 && bi < 0:
			sets = append(sets, graph.NewSet(e.From, e.To))
		case ai >= 0 && bi < 0:
			sets[ai].Add(e.To)
		case ai < 0 && bi >= 0:
			sets[bi].Add(e.From)
		case ai != bi:
			for v := range sets[bi] {
				sets[ai].Add(v)
			}
			sets = append(sets[:bi], sets[bi+1:]...)
		}
	}

	for _, v := range extra {
		if locate(v) < 0 {
			sets = append(sets, graph.NewSet(v))
		}
	}

	m := make(Membership[V])
	for _, s := range sets {
		members := make([]V, 0, len(s))
		for v := range s {
			members = append(members, v)
		}
		for _, v := range members {
			m[v] = members
		}
	}
	return m
}
