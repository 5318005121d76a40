package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/islandertools/islander/pkg/pipeline"
)

func testCLI() *CLI {
	return &CLI{Logger: newLogger(os.Stderr, LogInfo), Config: DefaultConfig()}
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := []string{"components", "adjacency", "render", "explore", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestCacheDir_XDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir() = %q", dir)
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats("", "svg"); !reflect.DeepEqual(got, []string{"svg"}) {
		t.Errorf("parseFormats(empty) = %v", got)
	}
	if got := parseFormats("dot,png", "svg"); !reflect.DeepEqual(got, []string{"dot", "png"}) {
		t.Errorf("parseFormats(dot,png) = %v", got)
	}
}

func TestValidateRenderFormats(t *testing.T) {
	if err := validateRenderFormats([]string{"dot", "svg", "png"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := validateRenderFormats([]string{"pdf"}); err == nil {
		t.Error("pdf accepted")
	}
}

func TestRenderBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "graph.txt", "graph"},
		{"out.svg", "graph.txt", "out"},
		{"diagrams/out", "graph.txt", "diagrams/out"},
	}
	for _, tt := range tests {
		if got := renderBasePath(tt.output, tt.input); got != tt.want {
			t.Errorf("renderBasePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestNewServeCache_Unknown(t *testing.T) {
	c := testCLI()
	if _, err := c.newServeCache(t.Context(), "etcd"); err == nil {
		t.Error("unknown backend accepted")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Engine != pipeline.DefaultEngine {
		t.Errorf("Engine = %q, want %q", cfg.Engine, pipeline.DefaultEngine)
	}
	if cfg.Addr == "" || cfg.CacheBackend == "" {
		t.Error("defaults incomplete")
	}
}
