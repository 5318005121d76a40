package components

import (
	"testing"

	"github.com/islandertools/islander/pkg/graph"
)

func TestFinder_FreshEdgeSharesOneList(t *testing.T) {
	f := NewFinder[string]()
	f.AddEdge("u", "v")

	su, okU := f.Slot("u")
	sv, okV := f.Slot("v")
	if !okU || !okV {
		t.Fatal("endpoints of the first edge not registered")
	}
	if su != sv {
		t.Errorf("slots differ after one edge: %d vs %d", su, sv)
	}
}

func TestFinder_MergeRepointsSmaller(t *testing.T) {
	f := NewFinder[int]()
	// Component one: {1, 2, 3}. Component two: {4, 5}.
	f.AddEdge(1, 2)
	f.AddEdge(2, 3)
	f.AddEdge(4, 5)

	if f.Connected(1, 4) {
		t.Fatal("separate components reported connected before merge")
	}

	f.AddEdge(3, 4)

	for _, v := range []int{1, 2, 3, 4, 5} {
		if !f.Connected(1, v) {
			t.Errorf("vertex %d not repointed into the merged component", v)
		}
	}
}

func TestFinder_EqualSizeTieGoesToFirstArgument(t *testing.T) {
	f := NewFinder[int]()
	f.AddEdge(1, 2)
	f.AddEdge(3, 4)

	before, _ := f.Slot(1)
	f.AddEdge(1, 3)

	after, _ := f.Slot(3)
	if after != before {
		t.Errorf("on equal sizes the first argument's slot should absorb: got %d, want %d", after, before)
	}
}

func TestFinder_SelfLoop(t *testing.T) {
	f := NewFinder[string]()
	f.AddEdge("x", "x")

	if f.VertexCount() != 1 {
		t.Fatalf("VertexCount() = %d, want 1", f.VertexCount())
	}
	m := f.Membership()
	if len(m["x"]) != 1 || m["x"][0] != "x" {
		t.Errorf(`membership of "x" = %v, want ["x"]`, m["x"])
	}
}

func TestFinder_SelfLoopOnKnownVertex(t *testing.T) {
	f := NewFinder[string]()
	f.AddEdge("x", "y")
	f.AddEdge("x", "x")

	m := f.Membership()
	if len(m["x"]) != 2 {
		t.Errorf("self-loop grew the component: %v", m["x"])
	}
}

func TestFinder_ConnectedUnknownVertex(t *testing.T) {
	f := NewFinder[string]()
	f.AddEdge("a", "b")

	if f.Connected("a", "zz") {
		t.Error("unknown vertex reported connected")
	}
	if f.Connected("zz", "zz") {
		t.Error("unknown vertex reported connected to itself")
	}
}

func TestUnionFind_SharedListIdentity(t *testing.T) {
	m := UnionFind([]graph.Edge[int]{{From: 1, To: 2}, {From: 2, To: 3}}, nil)

	a, b := m[1], m[3]
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("empty member lists")
	}
	if &a[0] != &b[0] {
		t.Error("members of one component do not share a list")
	}
}

func TestUnionFind_DistinctComponentsDistinctLists(t *testing.T) {
	m := UnionFind([]graph.Edge[int]{{From: 1, To: 2}, {From: 3, To: 4}}, nil)

	if &m[1][0] == &m[3][0] {
		t.Error("separate components share a member list")
	}
}

func TestUnionFind_ExtraVerticesBecomeSingletons(t *testing.T) {
	m := UnionFind(nil, []string{"d", "a", "e"})

	if len(m) != 3 {
		t.Fatalf("membership size = %d, want 3", len(m))
	}
	for _, v := range []string{"d", "a", "e"} {
		if len(m[v]) != 1 || m[v][0] != v {
			t.Errorf("membership of %q = %v, want singleton", v, m[v])
		}
	}
}

func TestUnionFind_KnownPartition(t *testing.T) {
	edges := []graph.Edge[int]{{From: 1, To: 2}, {From: 1, To: 3}, {From: 4, To: 5}, {From: 5, To: 6}, {From: 3, To: 7}, {From: 2, To: 7}}
	got := FromMembership(UnionFind(edges, nil))

	want := Partition[int]{graph.NewSet(1, 2, 3, 7), graph.NewSet(4, 5, 6)}
	if !got.Equal(want) {
		t.Errorf("partition = %v, want %v", got, want)
	}
}

func TestUnionFind_EmptyInput(t *testing.T) {
	m := UnionFind[string](nil, nil)
	if len(m) != 0 {
		t.Errorf("membership of empty input = %v, want empty", m)
	}
}
