package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/palette"
	"github.com/matzehuels/depview/pkg/view"
)

// Options configures node-link diagram rendering.
type Options struct {
	// RankDir is the Graphviz rank direction. Defaults to "LR".
	RankDir string

	// Detailed adds the node's data attributes below its id.
	Detailed bool

	// NoColor disables the auto-assigned fill colors.
	NoColor bool

	// NoEdgeLabels omits the relation labels on edges.
	NoEdgeLabels bool
}

// ToDOT converts g to Graphviz DOT. Node and link labels come from the
// shared pane descriptor so the diagram reads like the interactive views.
func ToDOT(g graph.Graph, opts Options) string {
	d := view.SharedDescriptor()
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = "LR"
	}

	var colors map[string]string
	if !opts.NoColor {
		colors = palette.AutoColor(g.IDs())
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=gray, fontname=\"Sans-Serif\", fontsize=12];\n")
	buf.WriteString("  edge [penwidth=2, arrowsize=0.8, fontname=\"Sans-Serif\", fontsize=9];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := fmtAttrs(fmtLabel(n, d.NodeLabel, opts.Detailed), colors[n.ID])
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Links {
		if opts.NoEdgeLabels {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.Source, e.Target, d.LinkLabel.Text(e))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n graph.Node, l view.NodeLabel, detailed bool) string {
	label := l.Text(n)
	if !detailed || len(n.Attrs) == 0 {
		return label
	}
	parts := make([]string, 0, len(n.Attrs))
	for _, k := range n.SortedAttrKeys() {
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Attrs[k]))
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(label, fill string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if fill != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fill))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element to a zero-origin viewBox with
// matching width and height, so the diagram scales inside the page.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
