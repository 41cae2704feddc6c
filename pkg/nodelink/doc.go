// Package nodelink exports the dataset as a Graphviz node-link diagram.
//
// [ToDOT] produces DOT text in which every node is labeled with its id and
// filled with the color the browser panes would assign it, and every edge is
// labeled with the shared relation label. [RenderSVG] and [RenderPNG] lay the
// DOT out in-process through go-graphviz, so no system Graphviz install is
// needed.
package nodelink
