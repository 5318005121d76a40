package graph

import (
	"testing"
)

func TestBuildAdjacency_Empty(t *testing.T) {
	adj := BuildAdjacency[string](nil, nil, false)
	if len(adj) != 0 {
		t.Errorf("BuildAdjacency(nil, nil) has %d vertices, want 0", len(adj))
	}
}

func TestBuildAdjacency_SingleEdgeUndirected(t *testing.T) {
	adj := BuildAdjacency([]Edge[string]{{From: "a", To: "A"}}, nil, false)

	if len(adj) != 2 {
		t.Fatalf("vertex count = %d, want 2", len(adj))
	}
	if !adj["a"].Contains("A") {
		t.Error(`"A" missing from neighbors of "a"`)
	}
	if !adj["A"].Contains("a") {
		t.Error(`"a" missing from neighbors of "A"`)
	}
}

func TestBuildAdjacency_SingleEdgeDirected(t *testing.T) {
	adj := BuildAdjacency([]Edge[string]{{From: "a", To: "A"}}, nil, true)

	if !adj["a"].Contains("A") {
		t.Error(`"A" missing from neighbors of "a"`)
	}
	if len(adj["A"]) != 0 {
		t.Errorf(`neighbors of "A" = %v, want empty`, adj["A"])
	}
}

func TestBuildAdjacency_SymmetryUndirected(t *testing.T) {
	edges := []Edge[int]{{1, 2}, {1, 3}, {4, 5}, {5, 6}, {3, 7}, {2, 7}}
	adj := BuildAdjacency(edges, nil, false)

	for _, e := range edges {
		if !adj[e.From].Contains(e.To) {
			t.Errorf("%v missing from neighbors of %v", e.To, e.From)
		}
		if !adj[e.To].Contains(e.From) {
			t.Errorf("%v missing from neighbors of %v", e.From, e.To)
		}
	}
}

func TestBuildAdjacency_ExtraVerticesIsolated(t *testing.T) {
	adj := BuildAdjacency([]Edge[string]{{From: "a", To: "b"}}, []string{"c", "d"}, false)

	for _, v := range []string{"c", "d"} {
		set, ok := adj[v]
		if !ok {
			t.Fatalf("vertex %q missing from adjacency", v)
		}
		if len(set) != 0 {
			t.Errorf("neighbors of %q = %v, want empty", v, set)
		}
	}
}

func TestBuildAdjacency_ExtraVertexAlsoInEdge(t *testing.T) {
	adj := BuildAdjacency([]Edge[string]{{From: "a", To: "b"}}, []string{"a"}, false)

	if !adj["a"].Contains("b") {
		t.Error(`listing "a" as extra vertex cleared its neighbors`)
	}
}

func TestBuildAdjacency_DuplicateEdgesIdempotent(t *testing.T) {
	once := BuildAdjacency([]Edge[string]{{From: "a", To: "b"}}, nil, false)
	twice := BuildAdjacency([]Edge[string]{{From: "a", To: "b"}, {From: "a", To: "b"}}, nil, false)

	if !once.Equal(twice) {
		t.Errorf("duplicate edge changed the structure: %v vs %v", once, twice)
	}
}

func TestBuildAdjacency_SelfLoop(t *testing.T) {
	adj := BuildAdjacency([]Edge[string]{{From: "x", To: "x"}}, nil, false)

	if len(adj) != 1 {
		t.Fatalf("vertex count = %d, want 1", len(adj))
	}
	if !adj["x"].Contains("x") {
		t.Error(`"x" should be its own neighbor`)
	}
}

func TestBuildAdjacency_Deterministic(t *testing.T) {
	edges := []Edge[string]{{"a", "c"}, {"a", "b"}, {"b", "c"}, {"c", "a"}}

	first := BuildAdjacency(edges, []string{"z"}, true)
	second := BuildAdjacency(edges, []string{"z"}, true)

	if !first.Equal(second) {
		t.Errorf("two builds from identical input differ: %v vs %v", first, second)
	}
}

func TestBuildAdjacency_DoesNotMutateInput(t *testing.T) {
	edges := []Edge[string]{{From: "a", To: "b"}}
	extra := []string{"c"}

	BuildAdjacency(edges, extra, false)

	if edges[0].From != "a" || edges[0].To != "b" || extra[0] != "c" {
		t.Error("BuildAdjacency mutated its inputs")
	}
}

func TestVertices(t *testing.T) {
	edges := []Edge[string]{{"a", "b"}, {"b", "c"}}
	vs := Vertices(edges, []string{"d", "a"})

	want := NewSet("a", "b", "c", "d")
	if !vs.Equal(want) {
		t.Errorf("Vertices() = %v, want %v", vs, want)
	}
}

func TestSet_Equal(t *testing.T) {
	if !NewSet(1, 2, 3).Equal(NewSet(3, 2, 1)) {
		t.Error("order should not affect set equality")
	}
	if NewSet(1, 2).Equal(NewSet(1, 2, 3)) {
		t.Error("sets of different size reported equal")
	}
	if NewSet(1, 2).Equal(NewSet(1, 4)) {
		t.Error("sets with different members reported equal")
	}
}

func TestAdjacency_EdgeCount(t *testing.T) {
	adj := BuildAdjacency([]Edge[string]{{"a", "b"}, {"b", "c"}}, nil, false)
	if got := adj.EdgeCount(); got != 4 {
		t.Errorf("EdgeCount() = %d, want 4 (two undirected edges)", got)
	}
}
