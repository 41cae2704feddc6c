package script

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/matzehuels/depview/pkg/view"
)

// endpointFn resolves a link endpoint to its id. force-graph replaces the
// endpoint strings with node objects once the simulation starts.
const endpointFn = `function (v) { return v !== null && typeof v === "object" ? v.id : v; }`

func (r *Renderer) emit(b *bytes.Buffer) error {
	data, err := json.Marshal(r.data)
	if err != nil {
		return fmt.Errorf("encode graph data: %w", err)
	}
	data = bytes.ReplaceAll(data, []byte("</"), []byte(`<\/`))
	container, err := jsString(r.Container)
	if err != nil {
		return err
	}
	instance, err := jsString(r.InstanceID)
	if err != nil {
		return err
	}

	fmt.Fprintf(b, "(function () {\n")
	fmt.Fprintf(b, "  var el = document.getElementById(%s);\n", container)
	fmt.Fprintf(b, "  if (!el || typeof %s !== \"function\") { return; }\n", r.Kind.Constructor())
	fmt.Fprintf(b, "  var endpoint = %s;\n", endpointFn)
	fmt.Fprintf(b, "  var graph = %s()(el)\n", r.Kind.Constructor())
	fmt.Fprintf(b, "    .graphData(%s)\n", data)

	for _, c := range []struct {
		method string
		value  string
	}{
		{"nodeId", r.nodeID},
		{"linkSource", r.linkSource},
		{"linkTarget", r.linkTarget},
	} {
		if c.value == "" {
			continue
		}
		s, err := jsString(c.value)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "    .%s(%s)\n", c.method, s)
	}

	label, err := jsString(fieldOrID(r.nodeLabel.Field))
	if err != nil {
		return err
	}
	fmt.Fprintf(b, "    .nodeLabel(%s)\n", label)
	if r.autoColorBy != "" {
		s, err := jsString(r.autoColorBy)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "    .nodeAutoColorBy(%s)\n", s)
	}
	fmt.Fprintf(b, "    .nodeRelSize(%s)\n", num(r.nodeRelSize))
	fmt.Fprintf(b, "    .linkWidth(%s)\n", num(r.linkWidth))

	prefix, err := jsString(r.linkLabel.Prefix)
	if err != nil {
		return err
	}
	sep, err := jsString(r.linkLabel.Separator)
	if err != nil {
		return err
	}
	fmt.Fprintf(b, "    .linkLabel(function (link) { return %s + endpoint(link.source) + %s + endpoint(link.target); })\n", prefix, sep)
	fmt.Fprintf(b, "    .linkDirectionalArrowLength(%s)\n", num(r.arrowLength))
	fmt.Fprintf(b, "    .linkDirectionalArrowRelPos(%s)", num(r.arrowRelPos))

	if s, ok := r.painter.(view.Scripter); ok && r.Kind == Kind2D {
		fmt.Fprintf(b, "\n    .nodeCanvasObject(%s)", s.Script())
	}
	b.WriteString(";\n")
	fmt.Fprintf(b, "  window.%s = window.%s || {};\n", Registry, Registry)
	fmt.Fprintf(b, "  window.%s[%s] = graph;\n", Registry, instance)
	b.WriteString("})();\n")
	return nil
}

func fieldOrID(f string) string {
	if f == "" {
		return "id"
	}
	return f
}

// jsString quotes s as a JavaScript string literal. The JSON encoder escapes
// '<' and '>', so the literal is safe inside a <script> element.
func jsString(s string) (string, error) {
	out, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
