package render

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/islandertools/islander/pkg/graph"
)

// palette cycles through fill colors when component groups are highlighted.
var palette = []string{
	"#a8dadc", "#f4a261", "#e9c46a", "#b5e48c", "#cdb4db",
	"#90e0ef", "#ffb4a2", "#d8e2dc",
}

// Options configures DOT generation.
type Options struct {
	// Directed selects digraph output with arrowed edges. When false the
	// graph is emitted as an undirected "graph" and each edge appears once.
	Directed bool

	// Groups highlights vertex groups (typically connected components) by
	// giving all members of one group the same fill color.
	Groups [][]string

	// Label is an optional caption placed under the drawing.
	Label string
}

// ToDOT converts an adjacency structure to Graphviz DOT text.
// Vertices and edges are emitted in sorted order so identical structures
// produce identical output.
func ToDOT(adj graph.Adjacency[string], opts Options) string {
	var buf bytes.Buffer

	keyword, arrow := "graph", "--"
	if opts.Directed {
		keyword, arrow = "digraph", "->"
	}
	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	if opts.Label != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Label)
		buf.WriteString("  labelloc=b;\n")
	}
	buf.WriteString("\n")

	fill := groupColors(opts.Groups)
	for _, v := range sortedVertices(adj) {
		if color, ok := fill[v]; ok {
			fmt.Fprintf(&buf, "  %q [fillcolor=%q];\n", v, color)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", v)
		}
	}

	buf.WriteString("\n")
	for _, v := range sortedVertices(adj) {
		neighbors := make([]string, 0, len(adj[v]))
		for n := range adj[v] {
			// In undirected mode each pair is written once.
			if !opts.Directed && n < v {
				continue
			}
			neighbors = append(neighbors, n)
		}
		sort.Strings(neighbors)
		for _, n := range neighbors {
			fmt.Fprintf(&buf, "  %q %s %q;\n", v, arrow, n)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT text to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders DOT text to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedVertices(adj graph.Adjacency[string]) []string {
	vs := make([]string, 0, len(adj))
	for v := range adj {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return vs
}

// groupColors maps each grouped vertex to its group's palette color.
func groupColors(groups [][]string) map[string]string {
	if len(groups) == 0 {
		return nil
	}
	fill := make(map[string]string)
	for i, members := range groups {
		color := palette[i%len(palette)]
		for _, v := range members {
			fill[v] = color
		}
	}
	return fill
}

// Summary produces a one-line description of a drawing, used for CLI
// status output.
func Summary(adj graph.Adjacency[string], opts Options) string {
	kind := "undirected"
	if opts.Directed {
		kind = "directed"
	}
	parts := []string{fmt.Sprintf("%d vertices", adj.VertexCount()), kind}
	if n := len(opts.Groups); n > 0 {
		parts = append(parts, fmt.Sprintf("%d components highlighted", n))
	}
	return strings.Join(parts, ", ")
}
