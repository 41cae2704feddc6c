//go:build !js || !wasm

package dom

import "github.com/matzehuels/depview/pkg/view"

// Document returns an empty document outside the browser.
func Document() view.Document {
	return view.NewStaticDocument()
}

// NewBackend returns a backend that never constructs a renderer.
func NewBackend(Kind) view.Backend {
	return view.BackendFunc(func(view.Element) view.Renderer { return nil })
}
