package view

import (
	"strings"

	"github.com/matzehuels/depview/pkg/graph"
)

// Style is an ordered list of CSS declarations.
type Style [][2]string

// String renders the declarations as an inline style attribute value.
func (s Style) String() string {
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d[0])
		b.WriteString(": ")
		b.WriteString(d[1])
		b.WriteByte(';')
	}
	return b.String()
}

// PaneStyle holds the inline styles of a pane's section, heading and
// container.
type PaneStyle struct {
	Section   Style
	Heading   Style
	Container Style
}

const accent = "#4CAF50"

func paneBaseStyle() PaneStyle {
	return PaneStyle{
		Section: Style{{"padding", "20px"}},
		Heading: Style{{"text-align", "center"}, {"color", accent}},
		Container: Style{
			{"width", "100%"},
			{"height", "80vh"},
			{"border", "2px solid " + accent},
			{"border-radius", "10px"},
		},
	}
}

func pane2DStyle() PaneStyle {
	s := paneBaseStyle()
	s.Container = append(s.Container,
		[2]string{"box-shadow", "0 4px 8px rgba(0, 0, 0, 0.2)"},
		[2]string{"background-color", "#f9f9f9"},
		[2]string{"overflow", "hidden"},
	)
	return s
}

func pane3DStyle() PaneStyle {
	s := paneBaseStyle()
	s.Container = append(s.Container, [2]string{"overflow", "hidden"})
	return s
}

// DefaultTitle is the header text.
const DefaultTitle = "Regulations Dependency Force-Graph"

// Header is the static page title.
type Header struct {
	Title string
	Style Style
}

// NewHeader returns the header with its fixed styling. An empty title falls
// back to [DefaultTitle].
func NewHeader(title string) Header {
	if title == "" {
		title = DefaultTitle
	}
	return Header{
		Title: title,
		Style: Style{
			{"font-size", "24px"},
			{"font-weight", "bold"},
			{"color", "#333"},
			{"text-align", "center"},
			{"padding", "20px"},
			{"background-color", "#f0f0f0"},
			{"position", "sticky"},
			{"top", "0"},
			{"z-index", "1000"},
		},
	}
}

// Page is the header followed by the panes, top to bottom.
type Page struct {
	Header Header
	Panes  []*Pane
}

// NewPage composes the header with the 2D and 3D panes. Either backend may
// be nil, in which case that pane never constructs a renderer.
func NewPage(title string, backend2D, backend3D Backend) *Page {
	return &Page{
		Header: NewHeader(title),
		Panes:  []*Pane{NewGraph2D(backend2D), NewGraph3D(backend3D)},
	}
}

// Mount mounts every pane against doc with the same data.
func (p *Page) Mount(doc Document, g graph.Graph) {
	for _, pane := range p.Panes {
		pane.Mount(doc, g)
	}
}

// Unmount unmounts every pane.
func (p *Page) Unmount() {
	for _, pane := range p.Panes {
		pane.Unmount()
	}
}

// Pane returns the pane with the given name, or nil.
func (p *Page) Pane(name string) *Pane {
	for _, pane := range p.Panes {
		if pane.Name == name {
			return pane
		}
	}
	return nil
}
