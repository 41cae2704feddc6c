package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depview/pkg/errors"
	"github.com/matzehuels/depview/pkg/observability"
	"github.com/matzehuels/depview/pkg/view/snapshot"
)

// snapshotOpts holds the command-line flags for the snapshot command.
type snapshotOpts struct {
	output string
	format string
	width  int
	height int
	seed   uint64
}

// snapshotCommand renders the 2D view headlessly.
func (c *CLI) snapshotCommand() *cobra.Command {
	var opts snapshotOpts

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the 2D view to PNG or SVG without a browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sopts, err := c.snapshotOptions(opts)
			if err != nil {
				return err
			}
			output := opts.output
			if output == "" {
				output = appName + "." + string(sopts.Format)
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			var buf bytes.Buffer
			err = observability.Track(cmd.Context(), "snapshot", string(sopts.Format), c.graph.NodeCount(), func() (int, error) {
				err := snapshot.Render(&buf, c.graph, sopts)
				return buf.Len(), err
			})
			if err != nil {
				return err
			}
			if err := writeOutput(output, buf.Bytes(), cmd.OutOrStdout()); err != nil {
				return err
			}
			if output != stdoutPath {
				prog.done("Rendered snapshot")
				reportOutput(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file ("-" for stdout; default depview.<format>)`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png, svg (default from config)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "image width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "image height in pixels (default from config)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "layout random seed")
	return cmd
}

// snapshotOptions merges flags over the config.
func (c *CLI) snapshotOptions(o snapshotOpts) (snapshot.Options, error) {
	format := o.format
	if format == "" {
		format = c.cfg.Snapshot.Format
	}
	f, err := snapshot.ParseFormat(format)
	if err != nil {
		return snapshot.Options{}, err
	}
	width, height := c.cfg.Snapshot.Width, c.cfg.Snapshot.Height
	if o.width != 0 {
		width = o.width
	}
	if o.height != 0 {
		height = o.height
	}
	if width <= 0 || height <= 0 {
		return snapshot.Options{}, errors.New(errors.ErrCodeInvalidInput, "size must be positive, got %dx%d", width, height)
	}
	layout := snapshot.DefaultLayoutOptions()
	layout.Seed = o.seed
	return snapshot.Options{Width: width, Height: height, Format: f, Layout: layout}, nil
}
