package cli

import (
	"github.com/spf13/cobra"

	"github.com/islandertools/islander/pkg/api"
	"github.com/islandertools/islander/pkg/errors"
	"github.com/islandertools/islander/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	backend string // cache backend: file, memory, redis, mongo, none
}

// serveCommand creates the serve command running the HTTP analysis API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:    c.Config.Addr,
		backend: c.Config.CacheBackend,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis API",
		Long: `Run the HTTP analysis API.

Endpoints:
  POST /v1/components  compute connected components
  POST /v1/adjacency   build adjacency mappings
  GET  /healthz        liveness probe

The redis and mongo cache backends let several instances share one
result cache; their connection settings come from the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.backend, "cache", opts.backend, "cache backend: file, memory, redis, mongo, none")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()

	backend, err := c.newServeCache(ctx, opts.backend)
	if err != nil {
		return err
	}
	defer backend.Close()
	c.Logger.Info("cache ready", "backend", opts.backend)

	runner := pipeline.NewRunner(backend, c.Logger)
	server := api.NewServer(runner, c.Logger)
	return server.ListenAndServe(ctx, opts.addr)
}

func errUnknownBackend(backend string) error {
	return errors.New(errors.ErrCodeInvalidInput,
		"unknown cache backend: %s (must be 'file', 'memory', 'redis', 'mongo', or 'none')", backend)
}
