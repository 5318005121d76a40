package edgeio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/islandertools/islander/pkg/graph"
)

// ErrUnknownFormat is returned by [DetectFormat] for file extensions that
// map to no supported edge-list format.
var ErrUnknownFormat = errors.New("unknown edge list format")

// Format identifies an edge-list file format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Document is a parsed edge list: the edges plus any vertices that were
// listed explicitly so isolated vertices survive the round trip.
type Document struct {
	Vertices []string
	Edges    []graph.Edge[string]
}

// DetectFormat maps a file path to its format by extension.
// ".txt" and ".edges" are text, ".json" is JSON, ".toml" is TOML.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".edges":
		return FormatText, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s (supported: .txt, .edges, .json, .toml)", ErrUnknownFormat, path)
	}
}

// ReadFile reads and decodes the edge list at path, detecting the format
// from the file extension.
func ReadFile(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Decode reads an edge list from r in the given format.
func Decode(r io.Reader, format Format) (*Document, error) {
	switch format {
	case FormatText:
		return decodeText(r)
	case FormatJSON:
		return decodeJSON(r)
	case FormatTOML:
		return decodeTOML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Adjacency builds the document's adjacency structure.
func (d *Document) Adjacency(directed bool) graph.Adjacency[string] {
	return graph.BuildAdjacency(d.Edges, d.Vertices, directed)
}

// VertexCount returns the number of distinct vertices in the document.
func (d *Document) VertexCount() int {
	return len(graph.Vertices(d.Edges, d.Vertices))
}

// EdgeCount returns the number of edges in the document.
func (d *Document) EdgeCount() int { return len(d.Edges) }
