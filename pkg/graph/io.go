package graph

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// document is the on-disk shape. Edges is only read, as an alias of Links.
type document struct {
	Nodes []Node `json:"nodes"`
	Links []Edge `json:"links"`
	Edges []Edge `json:"edges,omitempty"`
}

// ReadJSON decodes a {nodes, links} document from r.
//
// Nothing beyond JSON syntax is checked. When both "links" and "edges" are
// present, "links" wins. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Graph{}, fmt.Errorf("decode: %w", err)
	}
	links := doc.Links
	if links == nil {
		links = doc.Edges
	}
	if doc.Nodes == nil {
		doc.Nodes = []Node{}
	}
	if links == nil {
		links = []Edge{}
	}
	return Graph{Nodes: doc.Nodes, Links: links}, nil
}

// ImportJSON reads the JSON file at path.
func ImportJSON(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := ReadJSON(f)
	if err != nil {
		return Graph{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// WriteJSON encodes g as indented JSON, always using the "links" key.
func WriteJSON(g Graph, w io.Writer) error {
	out := g
	if out.Nodes == nil {
		out.Nodes = []Node{}
	}
	if out.Links == nil {
		out.Links = []Edge{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal returns the compact JSON encoding of g.
func Marshal(g Graph) ([]byte, error) {
	out := g
	if out.Nodes == nil {
		out.Nodes = []Node{}
	}
	if out.Links == nil {
		out.Links = []Edge{}
	}
	return json.Marshal(out)
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
