package view

import "github.com/matzehuels/depview/pkg/graph"

// Element is a container a renderer binds to.
type Element interface {
	ID() string
}

// Document resolves container elements by id.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// Renderer is the configuration surface of a force-directed graph renderer.
// Method names follow the force-graph API they stand in for.
type Renderer interface {
	SetGraphData(g graph.Graph)
	SetNodeID(field string)
	SetLinkSource(field string)
	SetLinkTarget(field string)
	SetNodeLabel(l NodeLabel)
	SetNodeAutoColorBy(field string)
	SetNodeRelSize(size float64)
	SetLinkWidth(width float64)
	SetLinkLabel(l LinkLabel)
	SetLinkDirectionalArrowLength(length float64)
	SetLinkDirectionalArrowRelPos(pos float64)
}

// NodePainter is implemented by renderers that accept a custom per-node
// paint routine.
type NodePainter interface {
	SetNodeCanvasObject(p Painter)
}

// Disposer is implemented by renderers that hold resources needing release.
type Disposer interface {
	Dispose()
}

// Backend constructs renderers bound to a container. A nil Renderer means
// the backend could not construct one; the pane then behaves as if its
// container were missing.
type Backend interface {
	NewRenderer(el Element) Renderer
}

// BackendFunc adapts a function to [Backend].
type BackendFunc func(el Element) Renderer

// NewRenderer calls f(el).
func (f BackendFunc) NewRenderer(el Element) Renderer { return f(el) }

// StaticDocument is a [Document] over a fixed set of container ids, used
// where the page markup is generated rather than live.
type StaticDocument map[string]bool

// NewStaticDocument returns a document containing the given ids.
func NewStaticDocument(ids ...string) StaticDocument {
	d := make(StaticDocument, len(ids))
	for _, id := range ids {
		d[id] = true
	}
	return d
}

// ElementByID implements [Document].
func (d StaticDocument) ElementByID(id string) (Element, bool) {
	if !d[id] {
		return nil, false
	}
	return staticElement(id), true
}

type staticElement string

func (e staticElement) ID() string { return string(e) }
