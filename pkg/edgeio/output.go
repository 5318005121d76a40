package edgeio

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/islandertools/islander/pkg/components"
	"github.com/islandertools/islander/pkg/graph"
)

// SortedComponents converts a partition into sorted slices: members sorted
// within each component, components ordered by their smallest member. Maps
// iterate in random order, so this is what keeps output stable.
func SortedComponents(p components.Partition[string]) [][]string {
	out := make([][]string, 0, len(p))
	for _, comp := range p {
		members := make([]string, 0, len(comp))
		for v := range comp {
			members = append(members, v)
		}
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// SortedAdjacency converts an adjacency structure into a sorted map shape:
// neighbor sets become sorted slices. The result is suitable for stable
// JSON encoding (object keys are sorted by encoding/json).
func SortedAdjacency(adj graph.Adjacency[string]) map[string][]string {
	out := make(map[string][]string, len(adj))
	for v, set := range adj {
		neighbors := make([]string, 0, len(set))
		for n := range set {
			neighbors = append(neighbors, n)
		}
		sort.Strings(neighbors)
		out[v] = neighbors
	}
	return out
}

// partitionDocument is the JSON wire shape for a computed partition.
type partitionDocument struct {
	Engine     string     `json:"engine,omitempty"`
	Components [][]string `json:"components"`
}

// EncodePartitionJSON writes a partition as indented JSON, deterministically
// sorted. The engine name is included when non-empty so consumers can tell
// which strategy produced the result.
func EncodePartitionJSON(p components.Partition[string], engine string, w io.Writer) error {
	doc := partitionDocument{Engine: engine, Components: SortedComponents(p)}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// EncodePartitionText writes a partition as plain text, one component per
// line with members space-separated, deterministically sorted.
func EncodePartitionText(p components.Partition[string], w io.Writer) error {
	for _, members := range SortedComponents(p) {
		if _, err := fmt.Fprintln(w, strings.Join(members, " ")); err != nil {
			return err
		}
	}
	return nil
}

// EncodeAdjacencyJSON writes an adjacency structure as indented JSON with
// sorted neighbor lists.
func EncodeAdjacencyJSON(adj graph.Adjacency[string], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(SortedAdjacency(adj)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
