// Package dom mounts the view panes against the live browser document.
//
// Under js/wasm the renderers call force-graph and 3d-force-graph directly
// through syscall/js, and the 2D pane paints its nodes with the Go paint
// routine on the browser canvas. Other builds get a document with no
// elements, so every pane mount is the silent no-op.
package dom

import (
	"fmt"

	"github.com/matzehuels/depview/pkg/graph"
)

// Kind selects the force-graph library a renderer targets.
type Kind int

const (
	Kind2D Kind = iota
	Kind3D
)

// Constructor returns the global factory name of the library.
func (k Kind) Constructor() string {
	if k == Kind3D {
		return "ForceGraph3D"
	}
	return "ForceGraph"
}

// toData converts g to the plain {nodes, links} object shape force-graph
// expects, carrying node and link attributes along.
func toData(g graph.Graph) map[string]any {
	nodes := make([]any, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		m := make(map[string]any, len(n.Attrs)+1)
		for k, v := range n.Attrs {
			m[k] = plain(v)
		}
		m["id"] = n.ID
		nodes = append(nodes, m)
	}
	links := make([]any, 0, len(g.Links))
	for _, e := range g.Links {
		m := make(map[string]any, len(e.Attrs)+2)
		for k, v := range e.Attrs {
			m[k] = plain(v)
		}
		m["source"] = e.Source
		m["target"] = e.Target
		links = append(links, m)
	}
	return map[string]any{"nodes": nodes, "links": links}
}

// plain keeps values js.ValueOf accepts and stringifies the rest.
func plain(v any) any {
	switch x := v.(type) {
	case nil, bool, string, float64, int, int64:
		return x
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = plain(e)
		}
		return out
	default:
		return fmt.Sprint(x)
	}
}
