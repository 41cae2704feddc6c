package nodelink

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/palette"
)

func TestToDOT_Basic(t *testing.T) {
	g := graph.New([]string{"a", "b"}, [2]string{"a", "b"})

	dot := ToDOT(g, Options{})

	for _, want := range []string{
		"digraph G",
		"rankdir=LR",
		`"a" [label="a"`,
		`"b" [label="b"`,
		`"a" -> "b" [label="Relation: a → b"]`,
		`fillcolor="` + palette.Paired[0] + `"`,
		`fillcolor="` + palette.Paired[1] + `"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_Options(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "GDPR", Attrs: map[string]any{"year": 2016.0, "body": "EU"}}},
		Links: []graph.Edge{{Source: "GDPR", Target: "GDPR"}},
	}

	dot := ToDOT(g, Options{RankDir: "TB", Detailed: true, NoColor: true, NoEdgeLabels: true})

	if !strings.Contains(dot, "rankdir=TB") {
		t.Error("rankdir not applied")
	}
	if !strings.Contains(dot, `label="GDPR\nbody: EU\nyear: 2016"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
	if strings.Contains(dot, `fillcolor="#`) {
		t.Error("NoColor still assigns colors")
	}
	if !strings.Contains(dot, `"GDPR" -> "GDPR";`) {
		t.Errorf("edge without label missing:\n%s", dot)
	}
}

func TestToDOT_QuotesIDs(t *testing.T) {
	g := graph.New([]string{`say "hi"`})
	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `"say \"hi\""`) {
		t.Errorf("id not quoted:\n%s", dot)
	}
}

func TestFmtAttrs(t *testing.T) {
	if got := fmtAttrs("x", ""); len(got) != 1 {
		t.Errorf("fmtAttrs() without fill = %v", got)
	}
	if got := fmtAttrs("x", "#fff"); len(got) != 2 || got[1] != `fillcolor="#fff"` {
		t.Errorf("fmtAttrs() with fill = %v", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(graph.New([]string{"a", "b"}, [2]string{"a", "b"}), Options{})
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderPNG(t *testing.T) {
	out, err := RenderPNG(context.Background(), `digraph G { a -> b; }`)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Errorf("RenderPNG() output is not a PNG: %v", err)
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), `not valid DOT {{{`)
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
