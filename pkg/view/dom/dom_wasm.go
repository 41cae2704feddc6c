//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/view"
)

type document struct{ v js.Value }

// Document returns the live browser document.
func Document() view.Document {
	return document{v: js.Global().Get("document")}
}

func (d document) ElementByID(id string) (view.Element, bool) {
	if d.v.IsUndefined() || d.v.IsNull() {
		return nil, false
	}
	el := d.v.Call("getElementById", id)
	if el.IsUndefined() || el.IsNull() {
		return nil, false
	}
	return element{id: id, v: el}, true
}

type element struct {
	id string
	v  js.Value
}

func (e element) ID() string { return e.id }

// NewBackend returns a backend constructing force-graph instances of kind k.
// It yields no renderer when the library is not loaded.
func NewBackend(k Kind) view.Backend {
	return view.BackendFunc(func(el view.Element) view.Renderer {
		e, ok := el.(element)
		if !ok {
			return nil
		}
		factory := js.Global().Get(k.Constructor())
		if factory.Type() != js.TypeFunction {
			return nil
		}
		return &renderer{g: factory.Invoke().Invoke(e.v)}
	})
}

// renderer drives one force-graph instance. Callbacks handed to JavaScript
// are kept so Dispose can release them.
type renderer struct {
	g     js.Value
	funcs []js.Func
}

func (r *renderer) call(method string, args ...any) { r.g.Call(method, args...) }

func (r *renderer) fn(f func(this js.Value, args []js.Value) any) js.Func {
	jf := js.FuncOf(f)
	r.funcs = append(r.funcs, jf)
	return jf
}

func (r *renderer) SetGraphData(g graph.Graph)              { r.call("graphData", toData(g)) }
func (r *renderer) SetNodeID(field string)                  { r.call("nodeId", field) }
func (r *renderer) SetLinkSource(field string)              { r.call("linkSource", field) }
func (r *renderer) SetLinkTarget(field string)              { r.call("linkTarget", field) }
func (r *renderer) SetNodeAutoColorBy(field string)         { r.call("nodeAutoColorBy", field) }
func (r *renderer) SetNodeRelSize(size float64)             { r.call("nodeRelSize", size) }
func (r *renderer) SetLinkWidth(width float64)              { r.call("linkWidth", width) }
func (r *renderer) SetLinkDirectionalArrowLength(l float64) { r.call("linkDirectionalArrowLength", l) }
func (r *renderer) SetLinkDirectionalArrowRelPos(pos float64) {
	r.call("linkDirectionalArrowRelPos", pos)
}

func (r *renderer) SetNodeLabel(l view.NodeLabel) {
	r.call("nodeLabel", r.fn(func(_ js.Value, args []js.Value) any {
		return l.Text(nodeOf(args[0], l.Field))
	}))
}

func (r *renderer) SetLinkLabel(l view.LinkLabel) {
	r.call("linkLabel", r.fn(func(_ js.Value, args []js.Value) any {
		link := args[0]
		return l.Text(graph.Edge{Source: endpoint(link.Get("source")), Target: endpoint(link.Get("target"))})
	}))
}

func (r *renderer) SetNodeCanvasObject(p view.Painter) {
	r.call("nodeCanvasObject", r.fn(func(_ js.Value, args []js.Value) any {
		node, ctx, scale := args[0], args[1], args[2].Float()
		pn := view.PaintNode{
			ID: endpoint(node.Get("id")),
			X:  node.Get("x").Float(),
			Y:  node.Get("y").Float(),
		}
		if c := node.Get("color"); c.Type() == js.TypeString {
			pn.Color = c.String()
		}
		p.PaintNode(pn, canvas{ctx}, scale)
		return nil
	}))
}

// Dispose tears the instance down and releases the callbacks.
func (r *renderer) Dispose() {
	if d := r.g.Get("_destructor"); d.Type() == js.TypeFunction {
		r.g.Call("_destructor")
	}
	for _, f := range r.funcs {
		f.Release()
	}
	r.funcs = nil
}

// nodeOf reads the id and, when set, one extra field of a node object.
func nodeOf(v js.Value, field string) graph.Node {
	n := graph.Node{ID: endpoint(v.Get("id"))}
	if field != "" && field != "id" {
		if f := v.Get(field); !f.IsUndefined() && !f.IsNull() {
			n.Attrs = map[string]any{field: endpoint(f)}
		}
	}
	return n
}

// endpoint resolves an id or a node object to its id.
func endpoint(v js.Value) string {
	switch v.Type() {
	case js.TypeObject:
		return endpoint(v.Get("id"))
	case js.TypeString:
		return v.String()
	case js.TypeUndefined, js.TypeNull:
		return ""
	default:
		return js.Global().Get("String").Invoke(v).String()
	}
}

// canvas adapts a CanvasRenderingContext2D.
type canvas struct{ ctx js.Value }

func (c canvas) BeginPath()                      { c.ctx.Call("beginPath") }
func (c canvas) Arc(x, y, r, a0, a1 float64)     { c.ctx.Call("arc", x, y, r, a0, a1, false) }
func (c canvas) SetFillStyle(style string)       { c.ctx.Set("fillStyle", style) }
func (c canvas) Fill()                           { c.ctx.Call("fill") }
func (c canvas) SetLineWidth(width float64)      { c.ctx.Set("lineWidth", width) }
func (c canvas) SetFont(font string)             { c.ctx.Set("font", font) }
func (c canvas) FillText(s string, x, y float64) { c.ctx.Call("fillText", s, x, y) }
