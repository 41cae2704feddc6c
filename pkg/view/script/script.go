// Package script is the browser-page backend for the view panes.
//
// A renderer built here does not draw anything. It records the
// configuration a pane applies and emits the equivalent JavaScript
// bootstrap, which constructs ForceGraph()(el) or ForceGraph3D()(el) against
// the container once the page loads. The page registers a pagehide handler
// that calls the library's _destructor when present.
package script

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/view"
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

// Registry is the window property holding live instances by renderer id.
const Registry = "__depview"

// Renderer records pane configuration for later emission.
type Renderer struct {
	InstanceID string
	Kind       Kind
	Container  string

	data        graph.Graph
	nodeID      string
	linkSource  string
	linkTarget  string
	nodeLabel   view.NodeLabel
	autoColorBy string
	nodeRelSize float64
	linkWidth   float64
	linkLabel   view.LinkLabel
	arrowLength float64
	arrowRelPos float64
	painter     view.Painter
	disposed    bool
}

func (r *Renderer) SetGraphData(g graph.Graph)                   { r.data = g.Clone() }
func (r *Renderer) SetNodeID(field string)                       { r.nodeID = field }
func (r *Renderer) SetLinkSource(field string)                   { r.linkSource = field }
func (r *Renderer) SetLinkTarget(field string)                   { r.linkTarget = field }
func (r *Renderer) SetNodeLabel(l view.NodeLabel)                { r.nodeLabel = l }
func (r *Renderer) SetNodeAutoColorBy(field string)              { r.autoColorBy = field }
func (r *Renderer) SetNodeRelSize(size float64)                  { r.nodeRelSize = size }
func (r *Renderer) SetLinkWidth(width float64)                   { r.linkWidth = width }
func (r *Renderer) SetLinkLabel(l view.LinkLabel)                { r.linkLabel = l }
func (r *Renderer) SetLinkDirectionalArrowLength(length float64) { r.arrowLength = length }
func (r *Renderer) SetLinkDirectionalArrowRelPos(pos float64)    { r.arrowRelPos = pos }
func (r *Renderer) SetNodeCanvasObject(p view.Painter)           { r.painter = p }

// Dispose marks the renderer released; disposed renderers are not emitted.
func (r *Renderer) Dispose() { r.disposed = true }

// Disposed reports whether Dispose was called.
func (r *Renderer) Disposed() bool { return r.disposed }

// Graph returns the data handed to the renderer.
func (r *Renderer) Graph() graph.Graph { return r.data }

// WriteTo emits the bootstrap block for this renderer.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	if err := r.emit(&b); err != nil {
		return 0, err
	}
	return b.WriteTo(w)
}

// Bundle collects the renderers built for one page.
type Bundle struct {
	mu        sync.Mutex
	renderers []*Renderer
}

// New returns an empty bundle.
func New() *Bundle { return &Bundle{} }

// Backend returns a view backend that adds renderers of kind k to the bundle.
func (b *Bundle) Backend(k Kind) view.Backend {
	return view.BackendFunc(func(el view.Element) view.Renderer {
		r := &Renderer{
			InstanceID: uuid.NewString(),
			Kind:       k,
			Container:  el.ID(),
		}
		b.mu.Lock()
		b.renderers = append(b.renderers, r)
		b.mu.Unlock()
		return r
	})
}

// Renderers returns every renderer built so far, in construction order.
func (b *Bundle) Renderers() []*Renderer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Renderer(nil), b.renderers...)
}

// Script returns the bootstrap for every live renderer plus the shared
// pagehide teardown. An empty bundle yields an empty script.
func (b *Bundle) Script() (string, error) {
	var buf bytes.Buffer
	n := 0
	for _, r := range b.Renderers() {
		if r.disposed {
			continue
		}
		if err := r.emit(&buf); err != nil {
			return "", fmt.Errorf("renderer %s: %w", r.Container, err)
		}
		n++
	}
	if n == 0 {
		return "", nil
	}
	buf.WriteString(teardown)
	return buf.String(), nil
}

const teardown = `window.addEventListener("pagehide", function () {
  var reg = window.` + Registry + ` || {};
  Object.keys(reg).forEach(function (k) {
    var g = reg[k];
    if (g && typeof g._destructor === "function") { g._destructor(); }
    delete reg[k];
  });
});
`
