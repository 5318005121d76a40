package components

import (
	"math/rand"
	"testing"

	"github.com/islandertools/islander/pkg/graph"
)

// allEngines runs every engine on the same input and returns the resulting
// partitions keyed by engine name. The recursive DFS engine is skipped for
// inputs it cannot handle.
func allEngines(t *testing.T, edges []graph.Edge[int], extra []int) map[string]Partition[int] {
	t.Helper()

	results := map[string]Partition[int]{
		"union-find":    FromMembership(UnionFind(edges, extra)),
		"naive":         FromMembership(NaiveMerge(edges, extra)),
		"dfs-iterative": DFSIterative(edges, extra),
		"bfs":           BFS(edges, extra),
	}
	if p, err := DFS(edges, extra); err == nil {
		results["dfs"] = p
	}
	return results
}

func TestEngines_CrossEquivalence(t *testing.T) {
	cases := []struct {
		name  string
		edges []graph.Edge[int]
		extra []int
	}{
		{"empty", nil, nil},
		{"single edge", []graph.Edge[int]{{From: 1, To: 2}}, nil},
		{"self loop", []graph.Edge[int]{{From: 7, To: 7}}, nil},
		{"two components", []graph.Edge[int]{{From: 1, To: 2}, {From: 1, To: 3}, {From: 4, To: 5}, {From: 5, To: 6}, {From: 3, To: 7}, {From: 2, To: 7}}, nil},
		{"isolated extras", []graph.Edge[int]{{From: 1, To: 2}}, []int{9, 10}},
		{"duplicate edges", []graph.Edge[int]{{From: 1, To: 2}, {From: 1, To: 2}, {From: 2, To: 1}}, nil},
		{"late bridge", []graph.Edge[int]{{From: 1, To: 2}, {From: 3, To: 4}, {From: 5, To: 6}, {From: 2, To: 3}, {From: 4, To: 5}}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results := allEngines(t, tc.edges, tc.extra)
			baseline := results["naive"]
			for name, p := range results {
				if !p.Equal(baseline) {
					t.Errorf("%s partition %v differs from naive baseline %v", name, p, baseline)
				}
			}
		})
	}
}

func TestEngines_PartitionLaw(t *testing.T) {
	edges := []graph.Edge[int]{{From: 1, To: 2}, {From: 1, To: 3}, {From: 4, To: 5}, {From: 5, To: 6}, {From: 3, To: 7}, {From: 2, To: 7}}
	extra := []int{42}
	universe := graph.Vertices(edges, extra)

	for name, p := range allEngines(t, edges, extra) {
		if !p.Vertices().Equal(universe) {
			t.Errorf("%s: union of components %v != vertex universe %v", name, p.Vertices(), universe)
		}
		total := 0
		for _, comp := range p {
			total += len(comp)
		}
		if total != len(universe) {
			t.Errorf("%s: components overlap (sizes sum to %d, universe has %d)", name, total, len(universe))
		}
	}
}

func TestEngines_RandomGraphsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 25; trial++ {
		n := 2 + rng.Intn(40)
		m := rng.Intn(60)
		edges := make([]graph.Edge[int], m)
		for i := range edges {
			edges[i] = graph.Edge[int]{From: rng.Intn(n), To: rng.Intn(n)}
		}
		extra := []int{n + 1, n + 2}

		results := allEngines(t, edges, extra)
		baseline := results["naive"]
		for name, p := range results {
			if !p.Equal(baseline) {
				t.Fatalf("trial %d: %s disagrees with naive baseline\nedges: %v\n%s: %v\nnaive: %v",
					trial, name, edges, name, p, baseline)
			}
		}
	}
}
