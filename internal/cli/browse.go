package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand opens the interactive node browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Explore nodes and their relations in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.graph.NodeCount() == 0 {
				printWarning("Dataset has no nodes")
				return nil
			}

			p := tea.NewProgram(NewNodeListModel(c.graph), tea.WithContext(cmd.Context()))
			result, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := result.(NodeListModel); ok && m.Selected != "" {
				printInfo("Selected %s", StyleHighlight.Render(m.Selected))
				for _, line := range relationLines(c.graph, m.desc.LinkLabel, m.Selected) {
					fmt.Fprintln(out, "  "+line)
				}
			}
			return nil
		},
	}
}
