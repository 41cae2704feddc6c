// Package pkg holds the libraries behind depview, a viewer that shows a
// precomputed dependency graph as interactive 2D and 3D force graphs.
//
// # Overview
//
// The dataset is a static {nodes, links} JSON file. Nothing here builds or
// analyzes the graph; layout physics, drawing and camera control in the
// browser belong to force-graph and 3d-force-graph. The packages are
// organized into three areas:
//
//  1. Data: [graph] and [dataset]
//  2. Presentation: [view] and its backends, [palette], [nodelink]
//  3. Delivery: [webpage], [server], [cache], [config]
//
// # Data Flow
//
//	dependency_graph.json (bundled, or --data)
//	         ↓
//	    [dataset] (decode once, hand out copies)
//	         ↓
//	    [view] Page → Pane (2D, 3D) → Descriptor.Apply
//	         ↓
//	    backend: [view/script] (browser page), [view/dom] (wasm),
//	             [view/snapshot] (PNG/SVG)
//
// # Quick Start
//
// Write the page with both panes:
//
//	var buf bytes.Buffer
//	err := webpage.Render(&buf, webpage.OptionsFromConfig(config.Default(), dataset.Default()))
//
// Render the 2D view headlessly:
//
//	err := snapshot.Render(w, dataset.Default(), snapshot.Options{Format: snapshot.SVG})
//
// # Main Packages
//
// [view] - Panes, the shared descriptor, the page layout and the custom node
// paint routine. Renderers are reached through a small setter interface so
// every backend receives the same configuration.
//
// [view/script] - Records renderer configuration and emits the browser
// bootstrap script for the HTML page.
//
// [view/snapshot] - Force layout with gonum and rasterization with gg (PNG)
// or svgo (SVG), reproducing the 2D pane without a browser.
//
// [view/dom] - The js/wasm backend calling the libraries directly.
//
// [nodelink] - Graphviz DOT export and rendering.
//
// [server] - HTTP delivery of the page, the data and the exports.
//
// [cache] - Render artifact cache (memory, file, none).
//
// [errors] - Coded errors shared by the CLI and the server.
//
// [observability] - Render and request hooks.
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/graph
// [dataset]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/dataset
// [view]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/view
// [view/script]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/view/script
// [view/snapshot]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/view/snapshot
// [view/dom]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/view/dom
// [palette]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/palette
// [nodelink]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/nodelink
// [webpage]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/webpage
// [server]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/depview/pkg/observability
package pkg
