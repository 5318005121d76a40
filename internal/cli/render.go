package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/islandertools/islander/pkg/edgeio"
	"github.com/islandertools/islander/pkg/errors"
	"github.com/islandertools/islander/pkg/pipeline"
	"github.com/islandertools/islander/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "dot", "svg", "png"
	engine   string   // engine used to color components
	directed bool     // draw arrowed edges
	noColor  bool     // skip component coloring
	noCache  bool     // disable the result cache
}

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{engine: c.Config.Engine}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an edge list as a Graphviz diagram",
		Long: `Render an edge-list graph as a Graphviz diagram.

Vertices of the same connected component share a fill color, which makes
the component structure visible at a glance. Pass --no-color to draw a
plain graph instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr, "svg")
			if err := validateRenderFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.engine, "engine", "e", opts.engine, "engine used for component coloring")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "draw arrowed edges")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "skip component coloring")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// validRenderFormats is the set of supported render output formats.
var validRenderFormats = map[string]bool{"dot": true, "svg": true, "png": true}

func validateRenderFormats(formats []string) error {
	for _, f := range formats {
		if !validRenderFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'dot', 'svg', or 'png')", f)
		}
	}
	return nil
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Engine:   opts.engine,
		Directed: opts.directed,
		Formats:  opts.formats,
	}
	if opts.noColor {
		// Plain drawings skip the pipeline's grouped rendering; the
		// partition is still computed for the stats line.
		popts.Formats = nil
	}

	spin := newSpinnerWithContext(cmd.Context(), "Rendering "+input)
	spin.Start()
	result, err := runner.ExecuteFile(cmd.Context(), input, popts)
	if err != nil {
		spin.StopWithError(fmt.Sprintf("Render failed: %v", errors.UserMessage(err)))
		return err
	}
	if opts.noColor {
		if err := renderPlain(result, input, opts); err != nil {
			spin.StopWithError(fmt.Sprintf("Render failed: %v", errors.UserMessage(err)))
			return err
		}
	}
	spin.StopWithSuccess(fmt.Sprintf("Rendered %d components", result.Stats.ComponentCount))

	base := renderBasePath(opts.output, input)
	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		out, cleanup, err := openOutput(path)
		if err != nil {
			return err
		}
		_, werr := out.Write(result.Artifacts[format])
		cleanup()
		if werr != nil {
			return werr
		}
		printFile(path)
	}

	printStats(result.Stats.VertexCount, result.Stats.EdgeCount,
		result.Stats.ComponentCount, result.CacheInfo.PartitionHit)
	return nil
}

// renderPlain renders the requested formats without component coloring
// and stores them on the result.
func renderPlain(result *pipeline.Result, input string, opts *renderOpts) error {
	doc, err := edgeio.ReadFile(input)
	if err != nil {
		return err
	}
	dot := render.ToDOT(doc.Adjacency(opts.directed), render.Options{Directed: opts.directed})

	for _, format := range opts.formats {
		var data []byte
		var rerr error
		switch format {
		case "dot":
			data = []byte(dot)
		case "svg":
			data, rerr = render.RenderSVG(dot)
		case "png":
			data, rerr = render.RenderPNG(dot)
		}
		if rerr != nil {
			return rerr
		}
		result.Artifacts[format] = data
	}
	return nil
}

// renderBasePath derives the base output path from the output and input
// file paths, stripping a known format extension when present.
func renderBasePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validRenderFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
