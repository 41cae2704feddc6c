package snapshot

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/depview/pkg/palette"
	"github.com/matzehuels/depview/pkg/view"
)

// surface is a [view.Canvas] plus the primitives the renderer needs for
// links and the final encoding.
type surface interface {
	view.Canvas
	line(a, b r2.Vec, width float64, color string)
	triangle(p [3]r2.Vec, color string)
	encode(w io.Writer) error
	release()
}

// =============================================================================
// PNG (gg)
// =============================================================================

type rasterCanvas struct {
	dc *gg.Context
}

func newRasterCanvas(width, height int, background string) *rasterCanvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(palette.Parse(background))
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	return &rasterCanvas{dc: dc}
}

func (c *rasterCanvas) BeginPath()                      { c.dc.ClearPath() }
func (c *rasterCanvas) Arc(x, y, r, a0, a1 float64)     { c.dc.NewSubPath(); c.dc.DrawArc(x, y, r, a0, a1) }
func (c *rasterCanvas) SetFillStyle(style string)       { c.dc.SetColor(palette.Parse(style)) }
func (c *rasterCanvas) Fill()                           { c.dc.Fill() }
func (c *rasterCanvas) SetLineWidth(width float64)      { c.dc.SetLineWidth(width) }
func (c *rasterCanvas) SetFont(string)                  {}
func (c *rasterCanvas) FillText(s string, x, y float64) { c.dc.DrawString(s, x, y) }

func (c *rasterCanvas) line(a, b r2.Vec, width float64, color string) {
	c.dc.SetColor(palette.Parse(color))
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.dc.Stroke()
}

func (c *rasterCanvas) triangle(p [3]r2.Vec, color string) {
	c.dc.SetColor(palette.Parse(color))
	c.dc.NewSubPath()
	c.dc.MoveTo(p[0].X, p[0].Y)
	c.dc.LineTo(p[1].X, p[1].Y)
	c.dc.LineTo(p[2].X, p[2].Y)
	c.dc.ClosePath()
	c.dc.Fill()
}

func (c *rasterCanvas) encode(w io.Writer) error {
	return png.Encode(w, c.dc.Image())
}

func (c *rasterCanvas) release() { c.dc = nil }

// =============================================================================
// SVG (svgo)
// =============================================================================

type vectorCanvas struct {
	buf *bytes.Buffer
	s   *svg.SVG

	fill      string
	lineWidth float64
	fontSize  float64
	fontFace  string
	arcs      []arc
}

type arc struct{ x, y, r float64 }

func newVectorCanvas(width, height int, background string) *vectorCanvas {
	buf := &bytes.Buffer{}
	s := svg.New(buf)
	s.Start(width, height)
	s.Rect(0, 0, width, height, "fill:"+palette.Hex(background))
	return &vectorCanvas{buf: buf, s: s, fill: palette.Default, fontSize: 10, fontFace: "sans-serif"}
}

func (c *vectorCanvas) BeginPath()                 { c.arcs = c.arcs[:0] }
func (c *vectorCanvas) Arc(x, y, r, _, _ float64)  { c.arcs = append(c.arcs, arc{x, y, r}) }
func (c *vectorCanvas) SetFillStyle(style string)  { c.fill = style }
func (c *vectorCanvas) SetLineWidth(width float64) { c.lineWidth = width }

func (c *vectorCanvas) Fill() {
	for _, a := range c.arcs {
		c.s.Circle(px(a.x), px(a.y), px(a.r), "fill:"+palette.Hex(c.fill))
	}
}

// SetFont accepts the CSS shorthand "<size>px <family>".
func (c *vectorCanvas) SetFont(font string) {
	size, family, ok := strings.Cut(font, " ")
	if !ok {
		return
	}
	if v, err := strconv.ParseFloat(strings.TrimSuffix(size, "px"), 64); err == nil {
		c.fontSize = v
	}
	c.fontFace = family
}

func (c *vectorCanvas) FillText(s string, x, y float64) {
	c.s.Text(px(x), px(y), s, fmt.Sprintf("fill:%s;font-size:%spx;font-family:%s",
		palette.Hex(c.fill), strconv.FormatFloat(c.fontSize, 'g', -1, 64), c.fontFace))
}

func (c *vectorCanvas) line(a, b r2.Vec, width float64, color string) {
	c.s.Line(px(a.X), px(a.Y), px(b.X), px(b.Y),
		fmt.Sprintf("stroke:%s;stroke-width:%s", palette.Hex(color), strconv.FormatFloat(width, 'g', -1, 64)))
}

func (c *vectorCanvas) triangle(p [3]r2.Vec, color string) {
	c.s.Polygon(
		[]int{px(p[0].X), px(p[1].X), px(p[2].X)},
		[]int{px(p[0].Y), px(p[1].Y), px(p[2].Y)},
		"fill:"+palette.Hex(color),
	)
}

func (c *vectorCanvas) encode(w io.Writer) error {
	c.s.End()
	_, err := c.buf.WriteTo(w)
	return err
}

func (c *vectorCanvas) release() {
	c.buf = nil
	c.s = nil
}

func px(f float64) int { return int(math.Round(f)) }
