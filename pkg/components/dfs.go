package components

import (
	"errors"

	"github.com/islandertools/islander/pkg/graph"
)

// ErrDepthExceeded is returned by [DFS] and [DFSLimit] when a single
// component requires more nested visits than the depth budget allows.
// Graphs containing long induced paths hit this; use [DFSIterative] or
// [BFS] for such input.
var ErrDepthExceeded = errors.New("recursion depth exceeded")

// DefaultMaxDepth is the recursion budget used by [DFS]. It deliberately
// matches the call-stack ceiling of runtimes that cap recursion near a
// thousand frames, keeping the failure mode of the recursive engine
// observable instead of relying on an untestable stack overflow.
const DefaultMaxDepth = 1000

// DFS partitions the graph's vertices using recursive depth-first search
// with the [DefaultMaxDepth] budget.
//
// The recursive form is the demonstration of the depth hazard: it returns
// [ErrDepthExceeded] for any component containing a simple path longer than
// the budget. That failure is part of the contract, not a bug; the
// iterative form exists precisely because of it.
func DFS[V comparable](edges []graph.Edge[V], extra []V) (Partition[V], error) {
	return DFSLimit(edges, extra, DefaultMaxDepth)
}

// DFSLimit is [DFS] with an explicit recursion budget. maxDepth counts
// nested visits within one component; a budget of n fails on any simple
// path of more than n vertices.
func DFSLimit[V comparable](edges []graph.Edge[V], extra []V, maxDepth int) (Partition[V], error) {
	adj := graph.BuildAdjacency(edges, extra, false)
	visited := make(graph.Set[V], len(adj))

	var visit func(v V, comp graph.Set[V], depth int) error
	visit = func(v V, comp graph.Set[V], depth int) error {
		if depth > maxDepth {
			return ErrDepthExceeded
		}
		visited.Add(v)
		comp.Add(v)
		for n := range adj[v] {
			if visited.Contains(n) {
				continue
			}
			if err := visit(n, comp, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	var parts Partition[V]
	for v := range adj {
		if visited.Contains(v) {
			continue
		}
		comp := make(graph.Set[V])
		if err := visit(v, comp, 1); err != nil {
			return nil, err
		}
		parts = append(parts, comp)
	}
	return parts, nil
}

// DFSIterative partitions the graph's vertices using depth-first search
// driven by an explicit stack of remaining-neighbor frames. Visiting
// semantics and results are identical to [DFS], but no native call-stack
// frames are consumed per vertex, so arbitrarily long chains are handled.
func DFSIterative[V comparable](edges []graph.Edge[V], extra []V) Partition[V] {
	adj := graph.BuildAdjacency(edges, extra, false)
	visited := make(graph.Set[V], len(adj))

	var parts Partition[V]
	for v := range adj {
		if visited.Contains(v) {
			continue
		}
		visited.Add(v)
		comp := newComponent(v)

		// Each frame holds the neighbors of an active vertex that have
		// not been examined yet.
		stack := [][]V{neighborList(adj[v])}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if len(top) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			n := top[len(top)-1]
			stack[len(stack)-1] = top[:len(top)-1]
			if visited.Contains(n) {
				continue
			}
			visited.Add(n)
			comp.Add(n)
			stack = append(stack, neighborList(adj[n]))
		}
		parts = append(parts, comp)
	}
	return parts
}

// neighborList snapshots a neighbor set as a slice so a frame can consume
// it one vertex at a time.
func neighborList[V comparable](set graph.Set[V]) []V {
	ns := make([]V, 0, len(set))
	for n := range set {
		ns = append(ns, n)
	}
	return ns
}
