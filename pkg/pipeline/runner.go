package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/islandertools/islander/pkg/cache"
	"github.com/islandertools/islander/pkg/components"
	"github.com/islandertools/islander/pkg/edgeio"
	"github.com/islandertools/islander/pkg/errors"
	"github.com/islandertools/islander/pkg/render"
)

// Runner executes pipeline runs against a shared cache.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger disables run logging.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cache: c, logger: logger}
}

// ExecuteFile reads an edge-list file and runs the pipeline on it.
func (r *Runner) ExecuteFile(ctx context.Context, path string, opts Options) (*Result, error) {
	start := time.Now()
	doc, err := edgeio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	readTime := time.Since(start)

	result, err := r.Execute(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.ReadTime = readTime
	return result, nil
}

// Execute computes the component partition of a document and renders any
// requested artifacts, consulting the cache at each stage.
func (r *Runner) Execute(ctx context.Context, doc *edgeio.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hash := CanonicalHash(doc)
	result := &Result{
		GraphHash: hash,
		Artifacts: make(map[string][]byte),
		CacheInfo: CacheInfo{RenderHits: make(map[string]bool)},
	}
	result.Stats.VertexCount = doc.VertexCount()
	result.Stats.EdgeCount = len(doc.Edges)

	r.logger.Debug("pipeline start",
		"engine", opts.Engine,
		"vertices", result.Stats.VertexCount,
		"edges", result.Stats.EdgeCount,
		"hash", hash[:12])

	start := time.Now()
	partition, hit, err := r.partition(ctx, doc, hash, opts)
	if err != nil {
		return nil, err
	}
	result.Partition = partition
	result.CacheInfo.PartitionHit = hit
	result.Stats.AnalyzeTime = time.Since(start)
	result.Stats.ComponentCount = len(partition)

	r.logger.Debug("partition ready",
		"components", len(partition),
		"cached", hit,
		"took", result.Stats.AnalyzeTime)

	if len(opts.Formats) > 0 {
		start = time.Now()
		if err := r.renderAll(ctx, doc, hash, result, opts); err != nil {
			return nil, err
		}
		result.Stats.RenderTime = time.Since(start)
	}

	return result, nil
}

// partition returns the component partition, from cache when possible.
func (r *Runner) partition(ctx context.Context, doc *edgeio.Document, hash string, opts Options) (components.Partition[string], bool, error) {
	key := cache.PartitionKey(hash, opts.Engine)

	if !opts.Refresh {
		if data, ok, err := r.cache.Get(ctx, key); err != nil {
			r.logger.Warn("cache read failed", "key", key, "error", err)
		} else if ok {
			var lists [][]string
			if err := json.Unmarshal(data, &lists); err == nil {
				return partitionFromLists(lists), true, nil
			}
			r.logger.Warn("cache entry corrupt, recomputing", "key", key)
		}
	}

	partition, err := runEngine(opts.Engine, doc)
	if err != nil {
		return nil, false, err
	}

	data, err := json.Marshal(edgeio.SortedComponents(partition))
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode partition")
	}
	if err := r.cache.Set(ctx, key, data, opts.TTL); err != nil {
		r.logger.Warn("cache write failed", "key", key, "error", err)
	}
	return partition, false, nil
}

// renderAll produces the requested artifacts, each cached independently.
// The cache key folds in the direction since it changes the drawing.
func (r *Runner) renderAll(ctx context.Context, doc *edgeio.Document, hash string, result *Result, opts Options) error {
	ropts := render.Options{
		Directed: opts.Directed,
		Groups:   edgeio.SortedComponents(result.Partition),
	}

	for _, format := range opts.Formats {
		keyFormat := format + ":undirected"
		if opts.Directed {
			keyFormat = format + ":directed"
		}
		key := cache.RenderKey(hash, keyFormat)

		if !opts.Refresh {
			if data, ok, err := r.cache.Get(ctx, key); err != nil {
				r.logger.Warn("cache read failed", "key", key, "error", err)
			} else if ok {
				result.Artifacts[format] = data
				result.CacheInfo.RenderHits[format] = true
				continue
			}
		}

		data, err := r.renderOne(doc, format, ropts)
		if err != nil {
			return err
		}
		result.Artifacts[format] = data
		result.CacheInfo.RenderHits[format] = false

		if err := r.cache.Set(ctx, key, data, opts.TTL); err != nil {
			r.logger.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return nil
}

func (r *Runner) renderOne(doc *edgeio.Document, format string, ropts render.Options) ([]byte, error) {
	dot := render.ToDOT(doc.Adjacency(ropts.Directed), ropts)
	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return render.RenderSVG(dot)
	case "png":
		return render.RenderPNG(dot)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown render format %q", format)
	}
}

func hashBytes(data []byte) string { return cache.Hash(data) }
