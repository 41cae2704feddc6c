package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/palette"
	"github.com/matzehuels/depview/pkg/view"
)

// graphStats summarizes a dataset.
type graphStats struct {
	Nodes        int      `json:"nodes"`
	Links        int      `json:"links"`
	Isolated     []string `json:"isolated"`
	SelfLoops    int      `json:"self_loops"`
	Dangling     int      `json:"dangling"` // links naming an unknown node
	MaxOutDegree int      `json:"max_out_degree"`
	MaxOutNode   string   `json:"max_out_node,omitempty"`
}

// nodeRow is one line of the node table.
type nodeRow struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Out   int    `json:"out"`
	In    int    `json:"in"`
}

func computeStats(g graph.Graph) graphStats {
	known := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		known[n.ID] = true
	}

	degree := make(map[string]int, len(g.Nodes))
	out := make(map[string]int, len(g.Nodes))
	s := graphStats{Nodes: g.NodeCount(), Links: g.EdgeCount(), Isolated: []string{}}
	for _, e := range g.Links {
		if !known[e.Source] || !known[e.Target] {
			s.Dangling++
			continue
		}
		if e.Source == e.Target {
			s.SelfLoops++
		}
		degree[e.Source]++
		degree[e.Target]++
		out[e.Source]++
	}

	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		if degree[n.ID] == 0 {
			s.Isolated = append(s.Isolated, n.ID)
		}
		if out[n.ID] > s.MaxOutDegree {
			s.MaxOutDegree = out[n.ID]
			s.MaxOutNode = n.ID
		}
	}
	return s
}

// nodeRows lists each distinct node with its auto color and degrees, in file order.
func nodeRows(g graph.Graph) []nodeRow {
	colors := palette.AutoColor(autoColorKeys(g))
	in := make(map[string]int)
	out := make(map[string]int)
	for _, e := range g.Links {
		out[e.Source]++
		in[e.Target]++
	}

	var rows []nodeRow
	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		rows = append(rows, nodeRow{ID: n.ID, Color: colors[n.ID], Out: out[n.ID], In: in[n.ID]})
	}
	return rows
}

// autoColorKeys returns the coloring keys in node order, as the panes see them.
func autoColorKeys(g graph.Graph) []string {
	label := view.NodeLabel{Field: view.SharedDescriptor().AutoColorBy}
	keys := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		keys[i] = label.Text(n)
	}
	return keys
}

// inspectCommand prints dataset statistics.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		asJSON bool
		top    int
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show dataset statistics and node colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := computeStats(c.graph)
			rows := nodeRows(c.graph)
			if asJSON {
				return writeInspectJSON(cmd.OutOrStdout(), stats, rows)
			}
			printInspect(stats, rows, top)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print machine-readable JSON")
	cmd.Flags().IntVar(&top, "top", 20, "number of nodes to list (0 for all)")
	return cmd
}

func writeInspectJSON(w io.Writer, stats graphStats, rows []nodeRow) error {
	if rows == nil {
		rows = []nodeRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Stats graphStats `json:"stats"`
		Nodes []nodeRow  `json:"nodes"`
	}{stats, rows})
}

func printInspect(s graphStats, rows []nodeRow, top int) {
	fmt.Fprintln(out, StyleTitle.Render("Dataset"))
	printStats(s.Nodes, s.Links)
	fmt.Fprintln(out)
	printKeyValue("Isolated", strconv.Itoa(len(s.Isolated)))
	printKeyValue("Self-loops", strconv.Itoa(s.SelfLoops))
	printKeyValue("Dangling", strconv.Itoa(s.Dangling))
	if s.MaxOutNode != "" {
		printKeyValue("Top node", fmt.Sprintf("%s (%d out)", s.MaxOutNode, s.MaxOutDegree))
	}
	if s.Dangling > 0 {
		printWarning("%d links name unknown nodes and will not render", s.Dangling)
	}
	if len(rows) == 0 {
		return
	}

	sorted := append([]nodeRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Out+sorted[i].In > sorted[j].Out+sorted[j].In
	})
	if top > 0 && len(sorted) > top {
		sorted = sorted[:top]
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, nodeTable(sorted))
	if len(sorted) < len(rows) {
		fmt.Fprintln(out, StyleDim.Render(fmt.Sprintf("  showing %d of %d nodes", len(sorted), len(rows))))
	}
}

func nodeTable(rows []nodeRow) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{swatch(r.Color), r.ID, r.Color, strconv.Itoa(r.Out), strconv.Itoa(r.In)}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Color", "Out", "In").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
