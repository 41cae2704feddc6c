package graph

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strconv"

	json "github.com/goccy/go-json"
)

// Node is a graph vertex. ID is its identity and display label.
type Node struct {
	ID    string
	Attrs map[string]any // remaining fields from the data file, never interpreted
}

// Edge is a directed link from Source to Target, both node ids.
type Edge struct {
	Source string
	Target string
	Attrs  map[string]any
}

// Graph is the {nodes, links} dataset consumed by renderers.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Edge `json:"links"`
}

// New builds a graph from plain ids and (source, target) pairs.
func New(ids []string, links ...[2]string) Graph {
	g := Graph{Nodes: make([]Node, 0, len(ids)), Links: make([]Edge, 0, len(links))}
	for _, id := range ids {
		g.Nodes = append(g.Nodes, Node{ID: id})
	}
	for _, l := range links {
		g.Links = append(g.Links, Edge{Source: l[0], Target: l[1]})
	}
	return g
}

// NodeCount returns the number of node records, duplicates included.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of link records, duplicates included.
func (g Graph) EdgeCount() int { return len(g.Links) }

// IDs returns node ids in file order.
func (g Graph) IDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// Node returns the first node with the given id.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Outgoing returns the links whose source is id, in file order.
func (g Graph) Outgoing(id string) []Edge {
	var out []Edge
	for _, e := range g.Links {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a deep copy so callers can hand the data to a renderer that
// mutates it (force-graph rewrites source/target into objects) without
// touching the shared dataset.
func (g Graph) Clone() Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Links: make([]Edge, len(g.Links)),
	}
	for i, n := range g.Nodes {
		out.Nodes[i] = Node{ID: n.ID, Attrs: maps.Clone(n.Attrs)}
	}
	for i, e := range g.Links {
		out.Links[i] = Edge{Source: e.Source, Target: e.Target, Attrs: maps.Clone(e.Attrs)}
	}
	return out
}

// MarshalJSON writes the node as a flat object: attrs plus "id".
func (n Node) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(n.Attrs)+1)
	maps.Copy(m, n.Attrs)
	m["id"] = n.ID
	return json.Marshal(m)
}

// UnmarshalJSON reads "id" and keeps every other field in Attrs.
func (n *Node) UnmarshalJSON(data []byte) error {
	m, err := decodeObject(data)
	if err != nil {
		return err
	}
	n.ID = scalar(m["id"])
	delete(m, "id")
	n.Attrs = nilIfEmpty(m)
	return nil
}

// MarshalJSON writes the link as a flat object: attrs plus source/target.
func (e Edge) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.Attrs)+2)
	maps.Copy(m, e.Attrs)
	m["source"] = e.Source
	m["target"] = e.Target
	return json.Marshal(m)
}

// UnmarshalJSON reads "source" and "target" and keeps the rest in Attrs.
func (e *Edge) UnmarshalJSON(data []byte) error {
	m, err := decodeObject(data)
	if err != nil {
		return err
	}
	e.Source = endpoint(m["source"])
	e.Target = endpoint(m["target"])
	delete(m, "source")
	delete(m, "target")
	e.Attrs = nilIfEmpty(m)
	return nil
}

// endpoint accepts a plain id or an already-resolved {"id": ...} object, the
// shape force-graph leaves behind after it has bound links to nodes.
func endpoint(v any) string {
	if obj, ok := v.(map[string]any); ok {
		return scalar(obj["id"])
	}
	return scalar(v)
}

// decodeObject keeps numbers as [json.Number] so numeric ids survive
// with their original digits.
func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func nilIfEmpty(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}

// SortedAttrKeys returns the attribute keys of n in sorted order.
func (n Node) SortedAttrKeys() []string {
	return slices.Sorted(maps.Keys(n.Attrs))
}
