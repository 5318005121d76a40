package components

import (
	"testing"

	"github.com/islandertools/islander/pkg/graph"
)

func TestFromMembership_CollapsesSharedLists(t *testing.T) {
	members := []string{"a", "b", "c"}
	m := Membership[string]{"a": members, "b": members, "c": members}

	got := FromMembership(m)

	if len(got) != 1 {
		t.Fatalf("component count = %d, want 1", len(got))
	}
	if !got[0].Equal(graph.NewSet("a", "b", "c")) {
		t.Errorf("component = %v", got[0])
	}
}

func TestFromMembership_IdentityNotValue(t *testing.T) {
	// Two distinct lists must stay distinct components even when their
	// contents look alike mid-merge. Identity is the backing array, not
	// the element values.
	first := []string{"a"}
	second := []string{"a"}
	m := Membership[string]{"a": first, "b": second}

	got := FromMembership(m)

	if len(got) != 2 {
		t.Errorf("component count = %d, want 2 (distinct lists collapsed by value)", len(got))
	}
}

func TestFromMembership_Empty(t *testing.T) {
	if got := FromMembership(Membership[int]{}); len(got) != 0 {
		t.Errorf("FromMembership(empty) = %v, want empty", got)
	}
}

func TestPartition_Equal(t *testing.T) {
	a := Partition[int]{graph.NewSet(1, 2), graph.NewSet(3)}
	b := Partition[int]{graph.NewSet(3), graph.NewSet(2, 1)}
	c := Partition[int]{graph.NewSet(1, 2, 3)}

	if !a.Equal(b) {
		t.Error("group order should not affect partition equality")
	}
	if a.Equal(c) {
		t.Error("different groupings reported equal")
	}
}

func TestPartition_Vertices(t *testing.T) {
	p := Partition[int]{graph.NewSet(1, 2), graph.NewSet(3)}

	if !p.Vertices().Equal(graph.NewSet(1, 2, 3)) {
		t.Errorf("Vertices() = %v, want {1 2 3}", p.Vertices())
	}
}

func TestPartition_Contains(t *testing.T) {
	p := Partition[int]{graph.NewSet(1, 2), graph.NewSet(3)}

	if !p.Contains(graph.NewSet(2, 1)) {
		t.Error("Contains() missed an existing group")
	}
	if p.Contains(graph.NewSet(1)) {
		t.Error("Contains() matched a non-group subset")
	}
}
