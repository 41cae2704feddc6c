//go:build js && wasm

// Command depview-wasm mounts both panes into the hosting page. The page
// must declare the "graph" and "3d-graph" containers and load force-graph
// and 3d-force-graph before this module starts; a missing container simply
// leaves that pane unmounted. Both panes are unmounted on pagehide.
package main

import (
	"syscall/js"

	"github.com/matzehuels/depview/pkg/dataset"
	"github.com/matzehuels/depview/pkg/view"
	"github.com/matzehuels/depview/pkg/view/dom"
)

func main() {
	page := view.NewPage(view.DefaultTitle, dom.NewBackend(dom.Kind2D), dom.NewBackend(dom.Kind3D))
	page.Mount(dom.Document(), dataset.Default())

	unmount := js.FuncOf(func(js.Value, []js.Value) any {
		page.Unmount()
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", unmount)
	select {}
}
