package snapshot

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/depview/pkg/graph"
)

// LayoutOptions tunes the Eades spring embedder.
type LayoutOptions struct {
	Updates   int
	Repulsion float64
	Rate      float64
	Theta     float64
	Seed      uint64
}

// DefaultLayoutOptions returns settings that settle small graphs quickly.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{Updates: 100, Repulsion: 1, Rate: 0.05, Theta: 0.2, Seed: 1}
}

// Positions maps node id to its coordinate.
type Positions map[string]r2.Vec

// Layout places every node of g with a force-directed embedding. Links are
// treated as undirected springs; self-loops and links to unknown nodes are
// ignored. The result is deterministic for a given seed.
func Layout(g graph.Graph, opts LayoutOptions) Positions {
	pos := make(Positions, len(g.Nodes))
	switch len(g.Nodes) {
	case 0:
		return pos
	case 1:
		pos[g.Nodes[0].ID] = r2.Vec{}
		return pos
	}

	ug := simple.NewUndirectedGraph()
	ids := make(map[string]int64, len(g.Nodes))
	for i, n := range g.Nodes {
		if _, ok := ids[n.ID]; ok {
			continue
		}
		ids[n.ID] = int64(i)
		ug.AddNode(simple.Node(i))
	}
	for _, e := range g.Links {
		s, ok1 := ids[e.Source]
		t, ok2 := ids[e.Target]
		if !ok1 || !ok2 || s == t {
			continue
		}
		ug.SetEdge(ug.NewEdge(simple.Node(s), simple.Node(t)))
	}

	eades := layout.EadesR2{
		Updates:   opts.Updates,
		Repulsion: opts.Repulsion,
		Rate:      opts.Rate,
		Theta:     opts.Theta,
		Src:       rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15),
	}
	o := layout.NewOptimizerR2(orderedGraph{ug}, eades.Update)
	for o.Update() {
	}
	for id, nid := range ids {
		pos[id] = o.Coord2(nid)
	}
	return pos
}

// Fit maps positions into a width x height box, keeping margin pixels free
// on every side and preserving the aspect ratio of the layout.
func Fit(pos Positions, width, height, margin float64) Positions {
	out := make(Positions, len(pos))
	if len(pos) == 0 {
		return out
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	w, h := width-2*margin, height-2*margin
	spanX, spanY := maxX-minX, maxY-minY
	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = math.Min(w/spanX, h/spanY)
	case spanX > 0:
		scale = w / spanX
	case spanY > 0:
		scale = h / spanY
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	for id, p := range pos {
		out[id] = r2.Vec{
			X: width/2 + (p.X-cx)*scale,
			Y: height/2 + (p.Y-cy)*scale,
		}
	}
	return out
}

// orderedGraph yields nodes in ID order. The embedder seeds positions in the
// order Nodes returns them, and simple graphs iterate a map.
type orderedGraph struct {
	*simple.UndirectedGraph
}

func (g orderedGraph) Nodes() gonumgraph.Nodes {
	return sortedNodes(g.UndirectedGraph.Nodes())
}

func (g orderedGraph) From(id int64) gonumgraph.Nodes {
	return sortedNodes(g.UndirectedGraph.From(id))
}

func sortedNodes(it gonumgraph.Nodes) gonumgraph.Nodes {
	var nodes []gonumgraph.Node
	for it.Next() {
		nodes = append(nodes, it.Node())
	}
	slices.SortFunc(nodes, func(a, b gonumgraph.Node) int { return cmp.Compare(a.ID(), b.ID()) })
	return iterator.NewOrderedNodes(nodes)
}
