package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/server"
)

// serveCommand runs the HTTP server until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		cacheKind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page, snapshots and exports over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if cacheKind != "" {
				cfg.Server.Cache = cacheKind
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			g := c.graph
			srv := server.New(cfg,
				server.WithLogger(loggerFromContext(cmd.Context())),
				server.WithGraph(func() graph.Graph { return g.Clone() }),
			)

			printInfo("Serving %s on %s", appName, StyleLink.Render("http://"+cfg.Server.Addr))
			printStats(g.NodeCount(), g.EdgeCount())
			if err := srv.ListenAndServe(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config: localhost:8080)")
	cmd.Flags().StringVar(&cacheKind, "cache", "", "render cache backend: memory, file, none (default from config)")
	return cmd
}
