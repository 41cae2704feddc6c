//go:build !js || !wasm

package dom

import (
	"testing"

	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/view"
)

func TestStubMountIsNoop(t *testing.T) {
	page := view.NewPage("", NewBackend(Kind2D), NewBackend(Kind3D))
	page.Mount(Document(), graph.New([]string{"x"}))
	for _, p := range page.Panes {
		if !p.Mounted() || p.Renderer() != nil {
			t.Errorf("%s: mounted=%v renderer=%v", p.Name, p.Mounted(), p.Renderer())
		}
	}
	page.Unmount()
}

func TestToData(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "a", Attrs: map[string]any{"group": 1.0}}, {ID: "b"}},
		Links: []graph.Edge{{Source: "a", Target: "b", Attrs: map[string]any{"kind": "cites"}}},
	}
	d := toData(g)
	nodes := d["nodes"].([]any)
	links := d["links"].([]any)
	if len(nodes) != 2 || len(links) != 1 {
		t.Fatalf("nodes=%d links=%d", len(nodes), len(links))
	}
	n0 := nodes[0].(map[string]any)
	if n0["id"] != "a" || n0["group"] != 1.0 {
		t.Errorf("node = %v", n0)
	}
	l0 := links[0].(map[string]any)
	if l0["source"] != "a" || l0["target"] != "b" || l0["kind"] != "cites" {
		t.Errorf("link = %v", l0)
	}
}

func TestKindConstructor(t *testing.T) {
	if Kind2D.Constructor() != "ForceGraph" || Kind3D.Constructor() != "ForceGraph3D" {
		t.Error("unexpected constructor names")
	}
}
