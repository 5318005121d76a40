package components

import (
	"github.com/islandertools/islander/pkg/graph"
)

// BFS partitions the graph's vertices using breadth-first search. Each
// unvisited vertex seeds a FIFO queue; a vertex is marked visited the
// moment it is enqueued, so it is never enqueued twice. No recursion is
// involved, making the engine robust to arbitrarily long chains by
// construction.
func BFS[V comparable](edges []graph.Edge[V], extra []V) Partition[V] {
	adj := graph.BuildAdjacency(edges, extra, false)
	visited := make(graph.Set[V], len(adj))

	var parts Partition[V]
	for v := range adj {
		if visited.Contains(v) {
			continue
		}
		visited.Add(v)
		comp := newComponent(v)

		queue := []V{v}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for n := range adj[u] {
				if visited.Contains(n) {
					continue
				}
				visited.Add(n)
				comp.Add(n)
				queue = append(queue, n)
			}
		}
		parts = append(parts, comp)
	}
	return parts
}
