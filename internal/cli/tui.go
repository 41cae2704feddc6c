package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/view"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// NodeListModel - Interactive node browser
// =============================================================================

// NodeListModel is the bubbletea model for browsing nodes and their relations.
// The left table lists nodes; the detail block below shows the hover label
// and the link labels of the node under the cursor, as the panes render them.
type NodeListModel struct {
	Rows     []nodeRow
	Graph    graph.Graph
	Cursor   int
	Height   int
	Offset   int
	Selected string

	desc view.Descriptor
}

// NewNodeListModel creates a node browser over g.
func NewNodeListModel(g graph.Graph) NodeListModel {
	return NodeListModel{
		Rows:   nodeRows(g),
		Graph:  g,
		Height: 15,
		desc:   view.SharedDescriptor(),
	}
}

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Rows); n > 0 {
				m.Cursor = n - 1
				if m.Cursor >= m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Rows) == 0 {
				return m, nil
			}
			m.Selected = m.Rows[m.Cursor].ID
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 14
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m NodeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Nodes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  (no nodes)"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, swatch(r.Color), r.ID, fmt.Sprint(r.Out), fmt.Sprint(r.In)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Node", "Out", "In").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if m.Offset+row == m.Cursor && col == 2 {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(m.details())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// details renders the labels of the node under the cursor.
func (m NodeListModel) details() string {
	id := m.Rows[m.Cursor].ID
	var b strings.Builder

	label := id
	if n, ok := m.Graph.Node(id); ok {
		label = m.desc.NodeLabel.Text(n)
	}
	b.WriteString(StyleHighlight.Render(label))
	b.WriteString("\n")

	for _, line := range relationLines(m.Graph, m.desc.LinkLabel, id) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// relationLines returns the link labels touching id: outgoing first, then incoming.
func relationLines(g graph.Graph, label view.LinkLabel, id string) []string {
	var outgoing, incoming []string
	for _, e := range g.Links {
		switch {
		case e.Source == id:
			outgoing = append(outgoing, label.Text(e))
		case e.Target == id:
			incoming = append(incoming, label.Text(e))
		}
	}
	if len(outgoing)+len(incoming) == 0 {
		return []string{listDimStyle.Render("no relations")}
	}
	lines := make([]string, 0, len(outgoing)+len(incoming))
	for _, s := range outgoing {
		lines = append(lines, iconArrow+" "+s)
	}
	for _, s := range incoming {
		lines = append(lines, listDimStyle.Render("← ")+s)
	}
	return lines
}
