package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the root command with args, with caching disabled
// via XDG_CACHE_HOME pointing into the test's temp dir.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := testCLI()
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func writeEdgeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestComponentsCommand(t *testing.T) {
	input := writeEdgeFile(t, "a b\nb c\nx y\nlonely\n")
	output := filepath.Join(t.TempDir(), "out.txt")

	err := runCommand(t, "components", input, "--engine", "bfs", "--output", output)
	if err != nil {
		t.Fatalf("components command error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	want := "a b c\nlonely\nx y\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}

func TestComponentsCommand_JSON(t *testing.T) {
	input := writeEdgeFile(t, "a b\n")
	output := filepath.Join(t.TempDir(), "out.json")

	err := runCommand(t, "components", input, "--format", "json", "--output", output)
	if err != nil {
		t.Fatalf("components command error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"components"`) {
		t.Errorf("JSON output missing components key: %s", data)
	}
}

func TestComponentsCommand_BadEngine(t *testing.T) {
	input := writeEdgeFile(t, "a b\n")

	if err := runCommand(t, "components", input, "--engine", "quantum"); err == nil {
		t.Error("unknown engine accepted")
	}
}

func TestComponentsCommand_MissingFile(t *testing.T) {
	if err := runCommand(t, "components", "/nonexistent/graph.txt"); err == nil {
		t.Error("missing input file accepted")
	}
}

func TestAdjacencyCommand(t *testing.T) {
	input := writeEdgeFile(t, "a b\n")
	output := filepath.Join(t.TempDir(), "adj.json")

	err := runCommand(t, "adjacency", input, "--output", output)
	if err != nil {
		t.Fatalf("adjacency command error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"a"`, `"b"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("adjacency output missing %s: %s", want, data)
		}
	}
}

func TestRenderCommand_DOT(t *testing.T) {
	input := writeEdgeFile(t, "a b\nx y\n")
	output := filepath.Join(t.TempDir(), "graph.dot")

	err := runCommand(t, "render", input, "--format", "dot", "--output", output)
	if err != nil {
		t.Fatalf("render command error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "graph") {
		t.Errorf("DOT output malformed: %s", data)
	}
}
