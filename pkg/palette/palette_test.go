package palette

import "testing"

func TestAutoColor(t *testing.T) {
	colors := AutoColor([]string{"A", "B", "A", "C"})

	if len(colors) != 3 {
		t.Fatalf("AutoColor() assigned %d colors, want 3", len(colors))
	}
	if colors["A"] != Paired[0] || colors["B"] != Paired[1] || colors["C"] != Paired[2] {
		t.Errorf("AutoColor() = %v, want first-seen order over Paired", colors)
	}
}

func TestAutoColor_Cycles(t *testing.T) {
	keys := make([]string, len(Paired)+1)
	for i := range keys {
		keys[i] = string(rune('a' + i))
	}
	colors := AutoColor(keys)
	if colors[keys[len(Paired)]] != Paired[0] {
		t.Errorf("key past the scheme = %s, want %s", colors[keys[len(Paired)]], Paired[0])
	}
}

func TestAutoColor_Deterministic(t *testing.T) {
	keys := []string{"x", "y", "z"}
	a, b := AutoColor(keys), AutoColor(keys)
	for _, k := range keys {
		if a[k] != b[k] {
			t.Errorf("AutoColor() not deterministic for %q: %s vs %s", k, a[k], b[k])
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#1f78b4", "#1f78b4"},
		{"gray", "#808080"},
		{"black", "#000000"},
		{"not-a-color", "#808080"},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
