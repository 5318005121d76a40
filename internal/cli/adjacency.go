package cli

import (
	"github.com/spf13/cobra"

	"github.com/islandertools/islander/pkg/edgeio"
)

// adjacencyOpts holds the command-line flags for the adjacency command.
type adjacencyOpts struct {
	directed bool   // keep edge direction instead of symmetrizing
	output   string // output file path, empty for stdout
}

// adjacencyCommand creates the adjacency command.
func (c *CLI) adjacencyCommand() *cobra.Command {
	var opts adjacencyOpts

	cmd := &cobra.Command{
		Use:   "adjacency [file]",
		Short: "Build the adjacency mapping of an edge list",
		Long: `Build the vertex-to-neighbors mapping of an edge-list graph.

By default every edge contributes both directions, so the mapping is
symmetric. With --directed each edge only adds its target to the
source's neighbor set; target vertices still appear as keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAdjacency(args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.directed, "directed", false, "keep edge direction")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runAdjacency(input string, opts *adjacencyOpts) error {
	doc, err := edgeio.ReadFile(input)
	if err != nil {
		return err
	}
	adj := doc.Adjacency(opts.directed)
	c.Logger.Debug("adjacency built", "vertices", adj.VertexCount(), "edges", doc.EdgeCount())

	out, cleanup, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := edgeio.EncodeAdjacencyJSON(adj, out); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Wrote adjacency for %d vertices", adj.VertexCount())
		printFile(opts.output)
	}
	return nil
}
