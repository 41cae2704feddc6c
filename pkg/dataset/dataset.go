// Package dataset is the single source of the graph shown by every pane.
//
// The bundled dependency_graph.json is compiled into the binary and decoded
// on first use. There is no reload: callers that need different data (tests,
// the --data flag) replace the dataset with [Swap] before mounting anything.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/matzehuels/depview/pkg/graph"
)

//go:embed dependency_graph.json
var bundled []byte

var (
	mu      sync.RWMutex
	current *graph.Graph
	once    sync.Once
	loadErr error
)

// Default returns a copy of the active dataset. The bundled file is decoded
// at most once; a decode failure yields an empty graph and is reported by
// [Err].
func Default() graph.Graph {
	once.Do(func() {
		g, err := graph.ReadJSON(bytes.NewReader(bundled))
		if err != nil {
			loadErr = fmt.Errorf("bundled dataset: %w", err)
			g = graph.Graph{Nodes: []graph.Node{}, Links: []graph.Edge{}}
		}
		mu.Lock()
		if current == nil {
			current = &g
		}
		mu.Unlock()
	})
	mu.RLock()
	defer mu.RUnlock()
	return current.Clone()
}

// Err reports whether decoding the bundled file failed.
func Err() error {
	Default()
	return loadErr
}

// Bundled returns the raw embedded file.
func Bundled() []byte {
	return bytes.Clone(bundled)
}

// Swap replaces the active dataset and returns a function restoring the
// previous one.
func Swap(g graph.Graph) (restore func()) {
	Default()
	mu.Lock()
	prev := current
	c := g.Clone()
	current = &c
	mu.Unlock()
	return func() {
		mu.Lock()
		current = prev
		mu.Unlock()
	}
}

// Load imports the JSON file at path and makes it the active dataset.
func Load(path string) (graph.Graph, error) {
	g, err := graph.ImportJSON(path)
	if err != nil {
		return graph.Graph{}, err
	}
	Swap(g)
	return g.Clone(), nil
}
