package view

import (
	"fmt"

	"github.com/matzehuels/depview/pkg/graph"
)

// NodeLabel renders a node's hover label from one of its fields.
type NodeLabel struct {
	Field string
}

// Text returns the label for n. The "id" field yields n.ID exactly.
func (l NodeLabel) Text(n graph.Node) string {
	if l.Field == "" || l.Field == "id" {
		return n.ID
	}
	v, ok := n.Attrs[l.Field]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// LinkLabel renders "<Prefix><source><Separator><target>".
type LinkLabel struct {
	Prefix    string
	Separator string
}

// Text returns the label for e.
func (l LinkLabel) Text(e graph.Edge) string {
	return l.Prefix + e.Source + l.Separator + e.Target
}

// Descriptor is the configuration a pane applies to its renderer.
type Descriptor struct {
	NodeID      string // node identity field
	LinkSource  string // link source field
	LinkTarget  string // link target field
	AutoColorBy string // node field keyed for automatic coloring
	NodeLabel   NodeLabel
	LinkLabel   LinkLabel
	NodeRelSize float64
	LinkWidth   float64
	ArrowLength float64
	ArrowRelPos float64 // 0 = at source, 1 = at target
}

// SharedDescriptor returns the settings common to the 2D and 3D panes.
func SharedDescriptor() Descriptor {
	return Descriptor{
		NodeID:      "id",
		LinkSource:  "source",
		LinkTarget:  "target",
		AutoColorBy: "id",
		NodeLabel:   NodeLabel{Field: "id"},
		LinkLabel:   LinkLabel{Prefix: "Relation: ", Separator: " → "},
		LinkWidth:   2,
		ArrowLength: 5,
		ArrowRelPos: 1,
	}
}

// WithNodeRelSize returns a copy of d with the node size replaced.
func (d Descriptor) WithNodeRelSize(size float64) Descriptor {
	d.NodeRelSize = size
	return d
}

// Apply feeds g to r and performs the configuration calls.
func (d Descriptor) Apply(r Renderer, g graph.Graph) {
	r.SetGraphData(g)
	r.SetNodeID(d.NodeID)
	r.SetLinkSource(d.LinkSource)
	r.SetLinkTarget(d.LinkTarget)
	r.SetNodeLabel(d.NodeLabel)
	r.SetNodeAutoColorBy(d.AutoColorBy)
	r.SetNodeRelSize(d.NodeRelSize)
	r.SetLinkWidth(d.LinkWidth)
	r.SetLinkLabel(d.LinkLabel)
	r.SetLinkDirectionalArrowLength(d.ArrowLength)
	r.SetLinkDirectionalArrowRelPos(d.ArrowRelPos)
}
