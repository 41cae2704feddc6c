// Package snapshot renders the 2D pane headlessly to PNG or SVG.
//
// Node positions come from a force-directed layout, links are drawn with
// their directional arrows, and nodes go through the pane's paint routine
// exactly as the browser would call it, on a gg raster or svgo vector
// canvas. Colors follow the same ordinal assignment the browser uses.
package snapshot

import (
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/depview/pkg/errors"
	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/palette"
	"github.com/matzehuels/depview/pkg/view"
)

// Format is an output encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// Formats lists the supported encodings, default first.
var Formats = []string{string(PNG), string(SVG)}

// ParseFormat validates a format name. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	f, err := errors.ValidateFormat(s, Formats...)
	return Format(f), err
}

// Options controls the output image.
type Options struct {
	Width      int
	Height     int
	Format     Format
	Margin     float64
	Background string
	LinkColor  string
	Layout     LayoutOptions
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.Format == "" {
		o.Format = PNG
	}
	if o.Margin <= 0 {
		o.Margin = 40
	}
	if o.Background == "" {
		o.Background = "#f9f9f9"
	}
	if o.LinkColor == "" {
		o.LinkColor = "#999999"
	}
	if o.Layout.Updates <= 0 {
		o.Layout = DefaultLayoutOptions()
	}
	return o
}

// arrowRatio is force-graph's arrow length to width ratio.
const arrowRatio = 1.6

// Document returns a document holding only the 2D container.
func Document() view.Document {
	return view.NewStaticDocument(view.Graph2DContainer)
}

// NewBackend returns a view backend building snapshot renderers.
func NewBackend(opts Options) view.Backend {
	return view.BackendFunc(func(el view.Element) view.Renderer {
		return newRenderer(el, opts)
	})
}

// Renderer draws the configured graph on demand.
type Renderer struct {
	InstanceID string
	Container  string

	opts        Options
	data        graph.Graph
	nodeID      string
	autoColorBy string
	nodeRelSize float64
	linkWidth   float64
	arrowLength float64
	arrowRelPos float64
	painter     view.Painter
	surface     surface
	disposed    bool
}

func newRenderer(el view.Element, opts Options) *Renderer {
	return &Renderer{
		InstanceID:  uuid.NewString(),
		Container:   el.ID(),
		opts:        opts.withDefaults(),
		nodeRelSize: 4,
		linkWidth:   1,
	}
}

func (r *Renderer) SetGraphData(g graph.Graph)                   { r.data = g.Clone() }
func (r *Renderer) SetNodeID(field string)                       { r.nodeID = field }
func (r *Renderer) SetLinkSource(string)                         {}
func (r *Renderer) SetLinkTarget(string)                         {}
func (r *Renderer) SetNodeLabel(view.NodeLabel)                  {}
func (r *Renderer) SetNodeAutoColorBy(field string)              { r.autoColorBy = field }
func (r *Renderer) SetNodeRelSize(size float64)                  { r.nodeRelSize = size }
func (r *Renderer) SetLinkWidth(width float64)                   { r.linkWidth = width }
func (r *Renderer) SetLinkLabel(view.LinkLabel)                  {}
func (r *Renderer) SetLinkDirectionalArrowLength(length float64) { r.arrowLength = length }
func (r *Renderer) SetLinkDirectionalArrowRelPos(pos float64)    { r.arrowRelPos = pos }
func (r *Renderer) SetNodeCanvasObject(p view.Painter)           { r.painter = p }

// Dispose releases the drawing surface. Render fails afterwards.
func (r *Renderer) Dispose() {
	if r.surface != nil {
		r.surface.release()
		r.surface = nil
	}
	r.disposed = true
}

// Disposed reports whether Dispose was called.
func (r *Renderer) Disposed() bool { return r.disposed }

// Colors returns the fill assigned to each node id.
func (r *Renderer) Colors() map[string]string {
	keys := make([]string, len(r.data.Nodes))
	for i, n := range r.data.Nodes {
		keys[i] = colorKey(n, r.autoColorBy)
	}
	byKey := palette.AutoColor(keys)
	out := make(map[string]string, len(r.data.Nodes))
	for i, n := range r.data.Nodes {
		if r.autoColorBy == "" {
			continue
		}
		out[n.ID] = byKey[keys[i]]
	}
	return out
}

func colorKey(n graph.Node, field string) string {
	if field == "" || field == "id" {
		return n.ID
	}
	return fmt.Sprint(n.Attrs[field])
}

// Render lays out the graph and writes the encoded image to w.
func (r *Renderer) Render(w io.Writer) error {
	if r.disposed {
		return errors.New(errors.ErrCodeInternal, "render after dispose")
	}
	o := r.opts
	if r.surface != nil {
		r.surface.release()
		r.surface = nil
	}
	switch o.Format {
	case PNG:
		r.surface = newRasterCanvas(o.Width, o.Height, o.Background)
	case SVG:
		r.surface = newVectorCanvas(o.Width, o.Height, o.Background)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported snapshot format %q", o.Format)
	}

	pos := Fit(Layout(r.data, o.Layout), float64(o.Width), float64(o.Height), o.Margin)
	for _, e := range r.data.Links {
		a, ok1 := pos[e.Source]
		b, ok2 := pos[e.Target]
		if !ok1 || !ok2 || e.Source == e.Target {
			continue
		}
		r.drawLink(a, b)
	}

	colors := r.Colors()
	painter := r.painter
	if painter == nil {
		painter = plainPainter{radius: r.nodeRelSize}
	}
	for _, n := range r.data.Nodes {
		p := pos[n.ID]
		painter.PaintNode(view.PaintNode{ID: n.ID, X: p.X, Y: p.Y, Color: colors[n.ID]}, r.surface, 1)
	}

	if err := r.surface.encode(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", o.Format)
	}
	return nil
}

// drawLink draws the segment between node edges and, when configured, an
// arrow whose tip sits at arrowRelPos along the visible part of the line.
func (r *Renderer) drawLink(a, b r2.Vec) {
	d := r2.Sub(b, a)
	length := r2.Norm(d)
	if length == 0 {
		return
	}
	dir := r2.Scale(1/length, d)
	r.surface.line(a, b, r.linkWidth, r.opts.LinkColor)

	al := r.arrowLength
	if al <= 0 {
		return
	}
	rad := r.nodeRelSize
	along := rad + al + (length-2*rad-al)*r.arrowRelPos
	along = math.Max(al, math.Min(length, along))
	tip := r2.Add(a, r2.Scale(along, dir))
	back := r2.Sub(tip, r2.Scale(al, dir))
	half := al / arrowRatio / 2
	normal := r2.Vec{X: -dir.Y, Y: dir.X}
	r.surface.triangle([3]r2.Vec{
		tip,
		r2.Add(back, r2.Scale(half, normal)),
		r2.Sub(back, r2.Scale(half, normal)),
	}, r.opts.LinkColor)
}

// plainPainter fills a circle when no paint routine is installed.
type plainPainter struct{ radius float64 }

func (p plainPainter) PaintNode(n view.PaintNode, c view.Canvas, _ float64) {
	fill := n.Color
	if fill == "" {
		fill = palette.Default
	}
	c.BeginPath()
	c.Arc(n.X, n.Y, p.radius, 0, 2*math.Pi)
	c.SetFillStyle(fill)
	c.Fill()
}

// Render mounts a 2D pane against the snapshot backend, draws g to w and
// unmounts again.
func Render(w io.Writer, g graph.Graph, opts Options) error {
	var r *Renderer
	pane := view.NewGraph2D(view.BackendFunc(func(el view.Element) view.Renderer {
		r = newRenderer(el, opts)
		return r
	}))
	pane.Mount(Document(), g)
	defer pane.Unmount()
	if r == nil {
		return errors.New(errors.ErrCodeInternal, "no renderer mounted")
	}
	return r.Render(w)
}
