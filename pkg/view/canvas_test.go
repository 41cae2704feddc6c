package view

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

type call struct {
	op   string
	args string
}

type fakeCanvas struct{ calls []call }

func (c *fakeCanvas) add(op string, args ...any) {
	c.calls = append(c.calls, call{op, fmt.Sprint(args...)})
}
func (c *fakeCanvas) BeginPath()                      { c.add("beginPath") }
func (c *fakeCanvas) Arc(x, y, r, a0, a1 float64)     { c.add("arc", x, " ", y, " ", r, " ", a0, " ", a1) }
func (c *fakeCanvas) SetFillStyle(s string)           { c.add("fillStyle", s) }
func (c *fakeCanvas) Fill()                           { c.add("fill") }
func (c *fakeCanvas) SetLineWidth(w float64)          { c.add("lineWidth", w) }
func (c *fakeCanvas) SetFont(f string)                { c.add("font", f) }
func (c *fakeCanvas) FillText(s string, x, y float64) { c.add("fillText", s, " ", x, " ", y) }

func TestCirclePainter(t *testing.T) {
	tests := []struct {
		name  string
		node  PaintNode
		scale float64
		want  []call
	}{
		{
			name:  "colored",
			node:  PaintNode{ID: "GDPR", X: 10, Y: 20, Color: "#a6cee3"},
			scale: 1,
			want: []call{
				{"beginPath", ""},
				{"arc", fmt.Sprint(10.0, " ", 20.0, " ", 5.0, " ", 0.0, " ", 2*math.Pi)},
				{"fillStyle", "#a6cee3"},
				{"fill", ""},
				{"lineWidth", "1"},
				{"font", "10px Sans-Serif"},
				{"fillStyle", "black"},
				{"fillText", fmt.Sprint("GDPR", " ", 20.0, " ", 25.0)},
			},
		},
		{
			name:  "uncolored zoomed",
			node:  PaintNode{ID: "x"},
			scale: 2,
			want: []call{
				{"beginPath", ""},
				{"arc", fmt.Sprint(0.0, " ", 0.0, " ", 5.0, " ", 0.0, " ", 2*math.Pi)},
				{"fillStyle", "gray"},
				{"fill", ""},
				{"lineWidth", "1"},
				{"font", "5px Sans-Serif"},
				{"fillStyle", "black"},
				{"fillText", fmt.Sprint("x", " ", 10.0, " ", 2.5)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeCanvas{}
			DefaultCirclePainter().PaintNode(tt.node, c, tt.scale)
			if len(c.calls) != len(tt.want) {
				t.Fatalf("calls = %v", c.calls)
			}
			for i, w := range tt.want {
				if c.calls[i] != w {
					t.Errorf("call %d = %v, want %v", i, c.calls[i], w)
				}
			}
		})
	}
}

func TestFontSizeAtGuardsScale(t *testing.T) {
	p := DefaultCirclePainter()
	for _, s := range []float64{0, -1, math.NaN()} {
		if got := p.FontSizeAt(s); got != 10 {
			t.Errorf("FontSizeAt(%v) = %v, want 10", s, got)
		}
	}
	if got := p.FontSizeAt(4); got != 2.5 {
		t.Errorf("FontSizeAt(4) = %v", got)
	}
}

func TestCirclePainterScript(t *testing.T) {
	js := DefaultCirclePainter().Script()
	for _, want := range []string{
		"function (node, ctx, globalScale)",
		"var r = 5;",
		`node.color || "gray"`,
		`"Sans-Serif"`,
		`ctx.fillStyle = "black"`,
		"node.x + r + 5",
		"node.y + fontSize / 2",
	} {
		if !strings.Contains(js, want) {
			t.Errorf("script missing %q:\n%s", want, js)
		}
	}
	var _ Scripter = DefaultCirclePainter()
}
