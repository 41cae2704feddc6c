package view

import "github.com/matzehuels/depview/pkg/graph"

// Container ids the panes bind to.
const (
	Graph2DContainer = "graph"
	Graph3DContainer = "3d-graph"
)

// Pane is one rendering surface bound to its own container.
type Pane struct {
	Name        string // "2d" or "3d"
	Heading     string
	ContainerID string
	Descriptor  Descriptor
	Painter     Painter // optional custom node paint routine
	Style       PaneStyle

	backend  Backend
	renderer Renderer
	mounted  bool
}

// NewGraph2D returns the 2D pane: node size 5 and the circle paint routine.
func NewGraph2D(b Backend) *Pane {
	return &Pane{
		Name:        "2d",
		Heading:     "2D View",
		ContainerID: Graph2DContainer,
		Descriptor:  SharedDescriptor().WithNodeRelSize(5),
		Painter:     DefaultCirclePainter(),
		Style:       pane2DStyle(),
		backend:     b,
	}
}

// NewGraph3D returns the 3D pane: node size 8, default engine drawing.
func NewGraph3D(b Backend) *Pane {
	return &Pane{
		Name:        "3d",
		Heading:     "3D View",
		ContainerID: Graph3DContainer,
		Descriptor:  SharedDescriptor().WithNodeRelSize(8),
		Style:       pane3DStyle(),
		backend:     b,
	}
}

// Mount binds the pane to its container in doc and hands g to a new
// renderer. A missing container, a nil backend or a backend that returns no
// renderer leaves the pane mounted without a renderer. Mounting an already
// mounted pane does nothing.
func (p *Pane) Mount(doc Document, g graph.Graph) {
	if p.mounted {
		return
	}
	p.mounted = true
	if doc == nil || p.backend == nil {
		return
	}
	el, ok := doc.ElementByID(p.ContainerID)
	if !ok {
		return
	}
	r := p.backend.NewRenderer(el)
	if r == nil {
		return
	}
	p.Descriptor.Apply(r, g)
	if np, ok := r.(NodePainter); ok && p.Painter != nil {
		np.SetNodeCanvasObject(p.Painter)
	}
	p.renderer = r
}

// Unmount releases the renderer, calling Dispose once if it has one.
func (p *Pane) Unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false
	r := p.renderer
	p.renderer = nil
	if d, ok := r.(Disposer); ok {
		d.Dispose()
	}
}

// Mounted reports whether the pane is mounted.
func (p *Pane) Mounted() bool { return p.mounted }

// Renderer returns the renderer constructed by the last Mount, or nil.
func (p *Pane) Renderer() Renderer { return p.renderer }
