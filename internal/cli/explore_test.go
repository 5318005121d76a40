package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestComponentListModel_Navigation(t *testing.T) {
	m := NewComponentListModel([][]string{{"a", "b"}, {"c"}, {"d", "e", "f"}})

	next, _ := m.Update(keyMsg("j"))
	m = next.(ComponentListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(ComponentListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after k, want 0", m.Cursor)
	}

	// Cursor clamps at the ends.
	next, _ = m.Update(keyMsg("k"))
	m = next.(ComponentListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d at top after k, want 0", m.Cursor)
	}

	next, _ = m.Update(keyMsg("G"))
	m = next.(ComponentListModel)
	if m.Cursor != 2 {
		t.Errorf("cursor = %d after G, want 2", m.Cursor)
	}
}

func TestComponentListModel_View(t *testing.T) {
	m := NewComponentListModel([][]string{{"a", "b"}, {"c"}})
	view := m.View()

	if !strings.Contains(view, "component 1") {
		t.Error("view missing first component")
	}
	if !strings.Contains(view, "2 vertices") {
		t.Error("view missing size annotation")
	}
	if !strings.Contains(view, "members:") {
		t.Error("view missing member preview")
	}
}

func TestComponentListModel_EmptyGraph(t *testing.T) {
	m := NewComponentListModel(nil)
	if view := m.View(); !strings.Contains(view, "empty graph") {
		t.Errorf("empty view = %q", view)
	}
}

func TestMemberPreview(t *testing.T) {
	if got := memberPreview([]string{"a", "b"}, 5); got != "a b" {
		t.Errorf("memberPreview short = %q", got)
	}
	got := memberPreview([]string{"a", "b", "c", "d"}, 2)
	if !strings.Contains(got, "+2 more") {
		t.Errorf("memberPreview elided = %q", got)
	}
}
