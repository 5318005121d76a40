package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/islandertools/islander/pkg/edgeio"
	"github.com/islandertools/islander/pkg/errors"
	"github.com/islandertools/islander/pkg/pipeline"
)

// componentsOpts holds the command-line flags for the components command.
type componentsOpts struct {
	engine  string // component engine name
	format  string // output format: "json" or "text"
	output  string // output file path, empty for stdout
	noCache bool   // disable the result cache
	refresh bool   // recompute even on a cache hit
}

// componentsCommand creates the components command.
func (c *CLI) componentsCommand() *cobra.Command {
	opts := componentsOpts{
		engine: c.Config.Engine,
		format: "text",
	}

	cmd := &cobra.Command{
		Use:   "components [file]",
		Short: "Compute the connected components of an edge list",
		Long: `Compute the connected components of an edge-list graph.

The input file may be plain text (one edge per line), JSON, or TOML; the
format is detected from the file extension. Edge direction is ignored:
two vertices belong to the same component when any chain of edges joins
them, regardless of orientation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runComponents(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.engine, "engine", "e", opts.engine,
		fmt.Sprintf("component engine: %v", pipeline.Engines()))
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")

	return cmd
}

func (c *CLI) runComponents(cmd *cobra.Command, input string, opts *componentsOpts) error {
	if opts.format != "text" && opts.format != "json" {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'text' or 'json')", opts.format)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	result, err := runner.ExecuteFile(cmd.Context(), input, pipeline.Options{
		Engine:  opts.engine,
		Refresh: opts.refresh,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Partitioned %d vertices into %d components",
		result.Stats.VertexCount, result.Stats.ComponentCount))

	out, cleanup, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer cleanup()

	switch opts.format {
	case "json":
		err = edgeio.EncodePartitionJSON(result.Partition, opts.engine, out)
	default:
		err = edgeio.EncodePartitionText(result.Partition, out)
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Wrote %d components", result.Stats.ComponentCount)
		printFile(opts.output)
	}
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount,
		result.Stats.ComponentCount, result.CacheInfo.PartitionHit)
	return nil
}

// openOutput opens path for writing, or returns stdout when path is empty.
// The cleanup func closes the file; for stdout it is a no-op.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}
