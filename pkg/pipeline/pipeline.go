// Package pipeline runs the read → analyze → render flow shared by the
// CLI and the HTTP API.
//
// Centralizing the flow keeps engine selection, caching, and timing
// behavior identical across entry points. The pipeline caches two derived
// artifacts keyed by a canonical graph hash: computed partitions and
// rendered diagrams. The input graph itself is never persisted.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Engine:  "bfs",
//	    Formats: []string{"svg"},
//	})
package pipeline

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/islandertools/islander/pkg/components"
	"github.com/islandertools/islander/pkg/edgeio"
	"github.com/islandertools/islander/pkg/errors"
	"github.com/islandertools/islander/pkg/graph"
)

// Engine names accepted by the pipeline.
const (
	EngineUnionFind    = "union-find"
	EngineNaive        = "naive"
	EngineDFS          = "dfs"
	EngineDFSIterative = "dfs-iterative"
	EngineBFS          = "bfs"
)

// DefaultEngine is used when options leave the engine empty. The iterative
// engine is the safe default for arbitrary input.
const DefaultEngine = EngineDFSIterative

// Engines lists every available engine name, in presentation order.
func Engines() []string {
	return []string{EngineUnionFind, EngineNaive, EngineDFS, EngineDFSIterative, EngineBFS}
}

// Options selects the engine and output artifacts for a pipeline run.
type Options struct {
	// Engine names the component strategy; empty selects DefaultEngine.
	Engine string

	// Directed controls adjacency and rendering direction. Connectivity
	// itself is always undirected.
	Directed bool

	// Formats lists rendered artifacts to produce: "dot", "svg", "png".
	Formats []string

	// Refresh bypasses cached results.
	Refresh bool

	// TTL overrides the cache expiry; zero uses the cache default.
	TTL time.Duration
}

// ValidateAndSetDefaults normalizes the options in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	valid := false
	for _, e := range Engines() {
		if o.Engine == e {
			valid = true
			break
		}
	}
	if !valid {
		return errors.New(errors.ErrCodeInvalidEngine, "unknown engine %q (available: %v)", o.Engine, Engines())
	}
	for _, f := range o.Formats {
		switch f {
		case "dot", "svg", "png":
		default:
			return errors.New(errors.ErrCodeInvalidFormat, "unknown render format %q (available: dot, svg, png)", f)
		}
	}
	return nil
}

// Stats carries timing and size information for one run.
type Stats struct {
	ReadTime       time.Duration
	AnalyzeTime    time.Duration
	RenderTime     time.Duration
	VertexCount    int
	EdgeCount      int
	ComponentCount int
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	PartitionHit bool
	RenderHits   map[string]bool
}

// Result is the outcome of a pipeline run.
type Result struct {
	Partition components.Partition[string]
	GraphHash string
	Artifacts map[string][]byte // format → bytes
	Stats     Stats
	CacheInfo CacheInfo
}

// canonicalGraph is the deterministic serialization hashed for cache keys.
// Edges and vertices are sorted so graphs that differ only in input order
// share derived results.
type canonicalGraph struct {
	Vertices []string    `json:"vertices"`
	Edges    [][2]string `json:"edges"`
}

// CanonicalHash computes the canonical content hash of a document.
func CanonicalHash(doc *edgeio.Document) string {
	cg := canonicalGraph{
		Vertices: append([]string(nil), doc.Vertices...),
		Edges:    make([][2]string, len(doc.Edges)),
	}
	sort.Strings(cg.Vertices)
	for i, e := range doc.Edges {
		cg.Edges[i] = [2]string{e.From, e.To}
	}
	sort.Slice(cg.Edges, func(i, j int) bool {
		if cg.Edges[i][0] != cg.Edges[j][0] {
			return cg.Edges[i][0] < cg.Edges[j][0]
		}
		return cg.Edges[i][1] < cg.Edges[j][1]
	})
	data, _ := json.Marshal(cg)
	return hashBytes(data)
}

// runEngine dispatches to the named component engine.
func runEngine(engine string, doc *edgeio.Document) (components.Partition[string], error) {
	switch engine {
	case EngineUnionFind:
		return components.FromMembership(components.UnionFind(doc.Edges, doc.Vertices)), nil
	case EngineNaive:
		return components.FromMembership(components.NaiveMerge(doc.Edges, doc.Vertices)), nil
	case EngineDFS:
		p, err := components.DFS(doc.Edges, doc.Vertices)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err,
				"graph too deep for the recursive engine; use %s or %s", EngineDFSIterative, EngineBFS)
		}
		return p, nil
	case EngineDFSIterative:
		return components.DFSIterative(doc.Edges, doc.Vertices), nil
	case EngineBFS:
		return components.BFS(doc.Edges, doc.Vertices), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidEngine, "unknown engine %q", engine)
	}
}

// partitionFromLists rebuilds a Partition from its sorted-slices wire form.
func partitionFromLists(lists [][]string) components.Partition[string] {
	p := make(components.Partition[string], 0, len(lists))
	for _, members := range lists {
		p = append(p, graph.NewSet(members...))
	}
	return p
}
