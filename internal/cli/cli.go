package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depview/pkg/buildinfo"
	"github.com/matzehuels/depview/pkg/config"
	"github.com/matzehuels/depview/pkg/dataset"
	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and default file names.
const appName = "depview"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string
	dataPath   string

	// Populated by the root PersistentPreRunE.
	cfg   config.Config
	graph graph.Graph
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "depview shows a dependency graph as 2D and 3D force graphs",
		Long:         `depview renders a node-link dataset as an interactive web page with a 2D canvas view and a 3D view, and exports headless snapshots and Graphviz diagrams of the same data.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetRenderHooks(logHooks{c.Logger})
			observability.SetServerHooks(logHooks{c.Logger})
			return c.load()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (toml or yaml; default: ./depview.{toml,yaml,yml})")
	root.PersistentFlags().StringVarP(&c.dataPath, "data", "d", "", "graph JSON file (default: bundled dataset)")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.pageCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Data Loading
// =============================================================================

// load resolves the config file and the dataset. Flags win over the file.
func (c *CLI) load() error {
	path := c.configPath
	if path == "" {
		wd, err := os.Getwd()
		if err == nil {
			path = config.Find(wd)
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
		c.Logger.Debug("loaded config", "path", path)
	}
	if c.dataPath != "" {
		cfg.Data = c.dataPath
	}
	c.cfg = cfg

	if cfg.Data != "" {
		g, err := dataset.Load(cfg.Data)
		if err != nil {
			return err
		}
		c.graph = g
		c.Logger.Debug("loaded dataset", "path", cfg.Data, "nodes", g.NodeCount(), "links", g.EdgeCount())
		return nil
	}

	if err := dataset.Err(); err != nil {
		return err
	}
	c.graph = dataset.Default()
	c.Logger.Debug("using bundled dataset", "nodes", c.graph.NodeCount(), "links", c.graph.EdgeCount())
	return nil
}
