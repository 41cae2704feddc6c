// Package view composes the depview page: a header and two graph panes.
//
// The force-directed layout, drawing and camera handling belong to external
// renderer libraries. This package only decides which renderer to construct,
// where to bind it, which data to feed it and how to configure it.
//
// # Panes
//
// A [Pane] owns one container element. [Pane.Mount] looks the container up in
// a [Document]; if it exists, the pane asks its [Backend] for exactly one
// [Renderer] and applies its [Descriptor]. If it does not exist, mounting is a
// silent no-op. [Pane.Unmount] calls Dispose on the renderer when the renderer
// implements [Disposer], and does nothing otherwise.
//
// The 2D and 3D panes share one [Descriptor]; they differ only in node size
// and in the 2D pane's [CirclePainter], installed when the renderer
// implements [NodePainter].
//
// # Backends
//
//   - view/script: emits the browser bootstrap for force-graph / 3d-force-graph
//   - view/snapshot: paints the 2D pane headlessly to PNG or SVG
//   - view/dom: drives the libraries from Go compiled to js/wasm
//
// # Concurrency
//
// Mount and Unmount are synchronous and not safe for concurrent use on the
// same pane. Separate panes share nothing.
package view
