package view

import (
	"fmt"
	"math"
	"strconv"
)

// Canvas is the 2D drawing surface handed to a [Painter]. It follows the
// subset of CanvasRenderingContext2D the paint routine needs.
type Canvas interface {
	BeginPath()
	Arc(x, y, radius, startAngle, endAngle float64)
	SetFillStyle(style string)
	Fill()
	SetLineWidth(width float64)
	SetFont(font string)
	FillText(text string, x, y float64)
}

// PaintNode is the per-node state a renderer passes to its painter: the
// layout position and the color assigned by auto-coloring, if any.
type PaintNode struct {
	ID    string
	X, Y  float64
	Color string
}

// Painter draws one node. globalScale is the renderer's current zoom.
type Painter interface {
	PaintNode(n PaintNode, c Canvas, globalScale float64)
}

// Scripter is implemented by painters that can also be expressed as a
// JavaScript nodeCanvasObject callback for browser renderers.
type Scripter interface {
	Script() string
}

// CirclePainter draws a filled circle with the node id beside it. The label
// font shrinks as the zoom grows so labels keep a constant on-screen size.
type CirclePainter struct {
	Radius      float64
	DefaultFill string // used when the node has no assigned color
	LineWidth   float64
	LabelColor  string
	LabelGap    float64 // distance from the circle edge to the label
	FontSize    float64 // at globalScale 1
	FontFamily  string
}

// DefaultCirclePainter returns the 2D pane's paint routine.
func DefaultCirclePainter() CirclePainter {
	return CirclePainter{
		Radius:      5,
		DefaultFill: "gray",
		LineWidth:   1,
		LabelColor:  "black",
		LabelGap:    5,
		FontSize:    10,
		FontFamily:  "Sans-Serif",
	}
}

// FontSizeAt returns the label size for a zoom level. Non-positive scales
// are treated as 1.
func (p CirclePainter) FontSizeAt(globalScale float64) float64 {
	if globalScale <= 0 || math.IsNaN(globalScale) {
		globalScale = 1
	}
	return p.FontSize / globalScale
}

// PaintNode implements [Painter].
func (p CirclePainter) PaintNode(n PaintNode, c Canvas, globalScale float64) {
	c.BeginPath()
	c.Arc(n.X, n.Y, p.Radius, 0, 2*math.Pi)
	fill := n.Color
	if fill == "" {
		fill = p.DefaultFill
	}
	c.SetFillStyle(fill)
	c.Fill()
	c.SetLineWidth(p.LineWidth)

	size := p.FontSizeAt(globalScale)
	c.SetFont(fmt.Sprintf("%spx %s", num(size), p.FontFamily))
	c.SetFillStyle(p.LabelColor)
	c.FillText(n.ID, n.X+p.Radius+p.LabelGap, n.Y+size/2)
}

// Script implements [Scripter].
func (p CirclePainter) Script() string {
	return fmt.Sprintf(`function (node, ctx, globalScale) {
  var r = %s;
  ctx.beginPath();
  ctx.arc(node.x, node.y, r, 0, 2 * Math.PI, false);
  ctx.fillStyle = node.color || %q;
  ctx.fill();
  ctx.lineWidth = %s;
  var fontSize = %s / (globalScale > 0 ? globalScale : 1);
  ctx.font = fontSize + "px " + %q;
  ctx.fillStyle = %q;
  ctx.fillText(node.id, node.x + r + %s, node.y + fontSize / 2);
}`, num(p.Radius), p.DefaultFill, num(p.LineWidth), num(p.FontSize), p.FontFamily, p.LabelColor, num(p.LabelGap))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
