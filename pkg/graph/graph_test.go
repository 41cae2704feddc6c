package graph

import "testing"

func TestNew(t *testing.T) {
	g := New([]string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"})

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if g.Links[1].Source != "B" || g.Links[1].Target != "C" {
		t.Errorf("Links[1] = %+v, want B->C", g.Links[1])
	}
}

func TestNodeLookup(t *testing.T) {
	g := New([]string{"A", "B"})

	if n, ok := g.Node("B"); !ok || n.ID != "B" {
		t.Errorf("Node(B) = %+v, %v", n, ok)
	}
	if _, ok := g.Node("Z"); ok {
		t.Error("Node(Z) found, want missing")
	}
}

func TestOutgoing(t *testing.T) {
	g := New([]string{"A", "B", "C"},
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "C"})

	out := g.Outgoing("A")
	if len(out) != 2 {
		t.Fatalf("Outgoing(A) = %d links, want 2", len(out))
	}
	if out[0].Target != "B" || out[1].Target != "C" {
		t.Errorf("Outgoing(A) = %+v, want file order B, C", out)
	}
	if len(g.Outgoing("C")) != 0 {
		t.Error("Outgoing(C) should be empty")
	}
}

func TestClone(t *testing.T) {
	g := New([]string{"A"}, [2]string{"A", "A"})
	g.Nodes[0].Attrs = map[string]any{"k": "v"}

	c := g.Clone()
	c.Nodes[0].ID = "changed"
	c.Nodes[0].Attrs["k"] = "changed"
	c.Links[0].Target = "changed"

	if g.Nodes[0].ID != "A" || g.Nodes[0].Attrs["k"] != "v" || g.Links[0].Target != "A" {
		t.Errorf("Clone() shares state with original: %+v", g)
	}
}

func TestSortedAttrKeys(t *testing.T) {
	n := Node{ID: "x", Attrs: map[string]any{"b": 1, "a": 2}}
	keys := n.SortedAttrKeys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("SortedAttrKeys() = %v, want [a b]", keys)
	}
}
