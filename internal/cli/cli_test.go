package cli

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"

	"github.com/matzehuels/depview/pkg/observability"
)

const testData = `{
  "nodes": [{"id": "app"}, {"id": "lib"}, {"id": "util"}, {"id": "orphan"}],
  "links": [
    {"source": "app", "target": "lib"},
    {"source": "app", "target": "util"},
    {"source": "lib", "target": "util"},
    {"source": "lib", "target": "missing"}
  ]
}`

// captureOutput redirects status output to w until restore is called.
func captureOutput(w io.Writer) (restore func()) {
	prev := out
	out = w
	return func() { out = prev }
}

func writeTestData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(testData), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command and returns what the command wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	var status bytes.Buffer
	restore := captureOutput(&status)
	defer restore()

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestPageCommandStdout(t *testing.T) {
	data := writeTestData(t)
	got, err := run(t, "page", "--data", data, "-o", "-", "--title", "Test Graph")
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	for _, want := range []string{
		"<header", "Test Graph",
		`id="graph"`, `id="3d-graph"`,
		"ForceGraph()", "ForceGraph3D()",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page output missing %q", want)
		}
	}
}

func TestPageCommandNo3D(t *testing.T) {
	data := writeTestData(t)
	got, err := run(t, "page", "--data", data, "-o", "-", "--no-3d")
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if strings.Contains(got, `id="3d-graph"`) {
		t.Error("3D container should be omitted")
	}
	if !strings.Contains(got, `id="graph"`) {
		t.Error("2D container missing")
	}
}

func TestPageCommandFile(t *testing.T) {
	data := writeTestData(t)
	path := filepath.Join(t.TempDir(), "out", "page.html")
	if _, err := run(t, "page", "--data", data, "-o", path); err != nil {
		t.Fatalf("page: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(b), []byte("<!DOCTYPE html>")) {
		t.Errorf("unexpected page start: %.40q", b)
	}
}

func TestSnapshotCommand(t *testing.T) {
	data := writeTestData(t)
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "g.png")
	if _, err := run(t, "snapshot", "--data", data, "-o", pngPath, "--width", "320", "--height", "200"); err != nil {
		t.Fatalf("snapshot png: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("bounds = %v, want 320x200", b)
	}

	got, err := run(t, "snapshot", "--data", data, "-f", "svg", "-o", "-")
	if err != nil {
		t.Fatalf("snapshot svg: %v", err)
	}
	if !strings.Contains(got, "<svg") || !strings.Contains(got, ">app<") {
		t.Errorf("svg output missing expected content")
	}
}

func TestSnapshotCommandErrors(t *testing.T) {
	data := writeTestData(t)
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"-f", "gif"}},
		{"negative width", []string{"--width=-5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"snapshot", "--data", data, "-o", "-"}, tt.args...)
			if _, err := run(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestExportCommandDOT(t *testing.T) {
	data := writeTestData(t)
	got, err := run(t, "export", "--data", data, "-o", "-", "--rankdir", "TB")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, want := range []string{"digraph", "rankdir=TB", `"app" -> "lib"`} {
		if !strings.Contains(got, want) {
			t.Errorf("dot output missing %q\n%s", want, got)
		}
	}
}

func TestExportCommandBadFormat(t *testing.T) {
	data := writeTestData(t)
	if _, err := run(t, "export", "--data", data, "-f", "pdf", "-o", "-"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestInspectJSON(t *testing.T) {
	data := writeTestData(t)
	got, err := run(t, "inspect", "--data", data, "--json")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var res struct {
		Stats graphStats `json:"stats"`
		Nodes []nodeRow  `json:"nodes"`
	}
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, got)
	}
	if res.Stats.Nodes != 4 || res.Stats.Links != 4 {
		t.Errorf("counts = %d/%d, want 4/4", res.Stats.Nodes, res.Stats.Links)
	}
	if len(res.Nodes) != 4 || res.Nodes[0].ID != "app" {
		t.Errorf("nodes = %+v", res.Nodes)
	}
}

func TestInspectTable(t *testing.T) {
	data := writeTestData(t)
	var status bytes.Buffer
	t.Cleanup(observability.Reset)

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"inspect", "--data", data})
	root.SetOut(io.Discard)

	restore := captureOutput(&status)
	err := root.Execute()
	restore()
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"Dataset", "4 nodes", "Dangling", "orphan", "util"} {
		if !strings.Contains(status.String(), want) {
			t.Errorf("inspect output missing %q", want)
		}
	}
}

func TestConfigFlag(t *testing.T) {
	data := writeTestData(t)
	cfg := filepath.Join(t.TempDir(), "depview.toml")
	body := "title = \"From Config\"\ndata = \"" + filepath.ToSlash(data) + "\"\n\n[panes]\ngraph2d = true\ngraph3d = false\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := run(t, "page", "--config", cfg, "-o", "-")
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if !strings.Contains(got, "From Config") {
		t.Error("title from config not applied")
	}
	if strings.Contains(got, `id="3d-graph"`) {
		t.Error("3D pane should be disabled by config")
	}
}

func TestMissingDataFile(t *testing.T) {
	_, err := run(t, "inspect", "--data", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing data file")
	}
}

func TestComputeStats(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.dataPath = writeTestData(t)
	if err := c.load(); err != nil {
		t.Fatal(err)
	}

	s := computeStats(c.graph)
	if s.Dangling != 1 {
		t.Errorf("Dangling = %d, want 1", s.Dangling)
	}
	if len(s.Isolated) != 1 || s.Isolated[0] != "orphan" {
		t.Errorf("Isolated = %v, want [orphan]", s.Isolated)
	}
	if s.MaxOutDegree != 2 || s.MaxOutNode != "app" {
		t.Errorf("max out = %d (%s), want 2 (app)", s.MaxOutDegree, s.MaxOutNode)
	}
	if s.SelfLoops != 0 {
		t.Errorf("SelfLoops = %d", s.SelfLoops)
	}
}

func TestNodeRowsColors(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.dataPath = writeTestData(t)
	if err := c.load(); err != nil {
		t.Fatal(err)
	}
	rows := nodeRows(c.graph)
	if rows[0].Color != "#a6cee3" || rows[1].Color != "#1f78b4" {
		t.Errorf("colors = %s, %s", rows[0].Color, rows[1].Color)
	}
	if rows[1].Out != 2 || rows[1].In != 1 {
		t.Errorf("lib degrees = out %d in %d, want 2/1", rows[1].Out, rows[1].In)
	}
}
