package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depview/pkg/errors"
	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/nodelink"
	"github.com/matzehuels/depview/pkg/observability"
)

var exportFormats = []string{"dot", "svg", "png"}

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output   string
	format   string
	rankdir  string
	detailed bool
	noColor  bool
}

// exportCommand writes the Graphviz node-link diagram.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the graph as a Graphviz node-link diagram (DOT, SVG, PNG)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := errors.ValidateFormat(opts.format, exportFormats...)
			if err != nil {
				return err
			}
			output := opts.output
			if output == "" {
				output = "graph." + format
			}

			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			var spin *Spinner
			if format != "dot" && output != stdoutPath {
				spin = newSpinner(ctx, "Rendering with Graphviz...")
				spin.Start()
			}
			data, err := exportGraph(ctx, c.graph, format, opts)
			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				return err
			}

			if err := writeOutput(output, data, cmd.OutOrStdout()); err != nil {
				return err
			}
			if output != stdoutPath {
				prog.done("Exported node-link diagram")
				reportOutput(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file ("-" for stdout; default graph.<format>)`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "LR", "Graphviz rank direction: LR, TB, RL, BT")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include node attributes in labels")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable auto-assigned node colors")
	return cmd
}

func exportGraph(ctx context.Context, g graph.Graph, format string, opts exportOpts) ([]byte, error) {
	var data []byte
	err := observability.Track(ctx, "export", format, g.NodeCount(), func() (int, error) {
		dot := nodelink.ToDOT(g, nodelink.Options{
			RankDir:  opts.rankdir,
			Detailed: opts.detailed,
			NoColor:  opts.noColor,
		})
		var err error
		switch format {
		case "svg":
			data, err = nodelink.RenderSVG(ctx, dot)
		case "png":
			data, err = nodelink.RenderPNG(ctx, dot)
		default:
			data = []byte(dot)
		}
		if err != nil {
			err = errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		return len(data), err
	})
	return data, err
}
