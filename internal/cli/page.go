package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depview/pkg/observability"
	"github.com/matzehuels/depview/pkg/webpage"
)

// pageCommand writes the standalone HTML page.
func (c *CLI) pageCommand() *cobra.Command {
	var (
		output string
		title  string
		no2D   bool
		no3D   bool
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Write the HTML page with the 2D and 3D views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := webpage.OptionsFromConfig(c.cfg, c.graph)
			if title != "" {
				opts.Title = title
			}
			if no2D {
				opts.Panes.Graph2D = false
			}
			if no3D {
				opts.Panes.Graph3D = false
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			var buf bytes.Buffer
			err := observability.Track(cmd.Context(), "page", "html", c.graph.NodeCount(), func() (int, error) {
				err := webpage.Render(&buf, opts)
				return buf.Len(), err
			})
			if err != nil {
				return err
			}
			if err := writeOutput(output, buf.Bytes(), cmd.OutOrStdout()); err != nil {
				return err
			}
			if output != stdoutPath {
				prog.done("Wrote page")
				reportOutput(output)
				printNextStep("Open it in a browser, or serve it live", appName+" serve")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", appName+".html", `output file ("-" for stdout)`)
	cmd.Flags().StringVar(&title, "title", "", "header title (default from config)")
	cmd.Flags().BoolVar(&no2D, "no-2d", false, "omit the 2D view")
	cmd.Flags().BoolVar(&no3D, "no-3d", false, "omit the 3D view")
	return cmd
}
