// Package palette assigns colors to graph nodes by key.
//
// The assignment mirrors what force-graph does for nodeAutoColorBy: an
// ordinal scale over the 12-color "Paired" scheme, handing out colors in the
// order keys are first seen and cycling once the scheme is exhausted. Headless
// renderers use it so exported images match the browser panes.
package palette

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Paired is the ColorBrewer "Paired" scheme.
var Paired = []string{
	"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c",
	"#fb9a99", "#e31a1c", "#fdbf6f", "#ff7f00",
	"#cab2d6", "#6a3d9a", "#ffff99", "#b15928",
}

// Default is the fill used when a node has no assigned color.
const Default = "gray"

// named covers the CSS color keywords the paint routine uses.
var named = map[string]string{
	"gray":  "#808080",
	"grey":  "#808080",
	"black": "#000000",
	"white": "#ffffff",
}

// AutoColor maps each distinct key to a color from [Paired].
func AutoColor(keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if _, ok := out[k]; ok {
			continue
		}
		out[k] = Paired[len(out)%len(Paired)]
	}
	return out
}

// Parse converts a hex string or one of a few CSS keywords to a color.
// Unparseable input falls back to [Default].
func Parse(s string) color.Color {
	if hex, ok := named[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		c, _ = colorful.Hex(named[Default])
	}
	return c
}

// Hex normalizes s to "#rrggbb".
func Hex(s string) string {
	c, _ := colorful.MakeColor(Parse(s))
	return c.Hex()
}
