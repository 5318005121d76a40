package edgeio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/islandertools/islander/pkg/graph"
)

// jsonDocument is the JSON wire shape for an edge list.
type jsonDocument struct {
	Vertices []string   `json:"vertices,omitempty"`
	Edges    []jsonEdge `json:"edges"`
}

type jsonEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// tomlDocument is the TOML file shape for an edge list.
type tomlDocument struct {
	Vertices []string   `toml:"vertices"`
	Edges    []tomlEdge `toml:"edges"`
}

type tomlEdge struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// decodeText parses the plain text format: one edge ("u v") or one isolated
// vertex per line, blank lines and "#" comments skipped.
func decodeText(r io.Reader) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			doc.Vertices = append(doc.Vertices, fields[0])
		case 2:
			doc.Edges = append(doc.Edges, graph.Edge[string]{From: fields[0], To: fields[1]})
		default:
			return nil, fmt.Errorf("line %d: want \"from to\" or a lone vertex, got %d fields", lineNo, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return doc, nil
}

func decodeJSON(r io.Reader) (*Document, error) {
	var data jsonDocument
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	doc := &Document{Vertices: data.Vertices}
	for _, e := range data.Edges {
		doc.Edges = append(doc.Edges, graph.Edge[string]{From: e.From, To: e.To})
	}
	return doc, nil
}

func decodeTOML(r io.Reader) (*Document, error) {
	var data tomlDocument
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	doc := &Document{Vertices: data.Vertices}
	for _, e := range data.Edges {
		doc.Edges = append(doc.Edges, graph.Edge[string]{From: e.From, To: e.To})
	}
	return doc, nil
}

// EncodeJSON writes the document as indented JSON. Edges keep their input
// order; this format round-trips through [Decode] with FormatJSON.
func EncodeJSON(doc *Document, w io.Writer) error {
	data := jsonDocument{Vertices: doc.Vertices, Edges: make([]jsonEdge, len(doc.Edges))}
	for i, e := range doc.Edges {
		data.Edges[i] = jsonEdge{From: e.From, To: e.To}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
