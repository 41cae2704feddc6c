package server

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"

	"github.com/matzehuels/depview/pkg/buildinfo"
	"github.com/matzehuels/depview/pkg/cache"
	"github.com/matzehuels/depview/pkg/config"
	"github.com/matzehuels/depview/pkg/graph"
)

func testServer(t *testing.T, logs *bytes.Buffer) *httptest.Server {
	t.Helper()
	g := graph.New([]string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"})
	opts := []Option{WithGraph(func() graph.Graph { return g.Clone() })}
	if logs != nil {
		opts = append(opts, WithLogger(log.New(logs)))
	}
	ts := httptest.NewServer(New(config.Default(), opts...).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	return resp, buf.Bytes()
}

func TestRoutes(t *testing.T) {
	ts := testServer(t, nil)

	tests := []struct {
		path        string
		status      int
		contentType string
		contains    string
	}{
		{"/", 200, "text/html", "Regulations Dependency Force-Graph"},
		{"/graph.json", 200, "application/json", `"links"`},
		{"/snapshot.png", 200, "image/png", "PNG"},
		{"/snapshot.svg?width=200&height=100", 200, "image/svg+xml", `width="200"`},
		{"/graph.dot", 200, "text/vnd.graphviz", `"A" -> "B"`},
		{"/graph.svg", 200, "image/svg+xml", "<svg"},
		{"/healthz", 200, "application/json", `"status":"ok"`},
		{"/missing", 404, "application/json", "NOT_FOUND"},
		{"/snapshot.png?width=abc", 400, "application/json", "INVALID_INPUT"},
		{"/snapshot.svg?height=999999", 400, "application/json", "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !bytes.Contains(body, []byte(tt.contains)) {
				t.Errorf("body missing %q", tt.contains)
			}
			if v := resp.Header.Get(VersionHeader); v != buildinfo.Version {
				t.Errorf("%s = %q", VersionHeader, v)
			}
		})
	}
}

func TestGraphJSON(t *testing.T) {
	ts := testServer(t, nil)
	_, body := get(t, ts.URL+"/graph.json")
	g, err := graph.ReadJSON(bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 2 {
		t.Errorf("graph = %d nodes, %d links", g.NodeCount(), g.EdgeCount())
	}
}

func TestHealth(t *testing.T) {
	ts := testServer(t, nil)
	_, body := get(t, ts.URL+"/healthz")
	var h map[string]string
	if err := json.Unmarshal(body, &h); err != nil {
		t.Fatal(err)
	}
	if h["version"] != buildinfo.Short() {
		t.Errorf("version = %q", h["version"])
	}
}

func TestRequestLogging(t *testing.T) {
	var logs bytes.Buffer
	ts := testServer(t, &logs)
	get(t, ts.URL+"/healthz")
	out := logs.String()
	if !strings.Contains(out, "request") || !strings.Contains(out, "/healthz") {
		t.Errorf("log output = %q", out)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Server.ShutdownTimeout = time.Second
	s := New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, _ := get(t, "http://"+ln.Addr().String()+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestRenderCache(t *testing.T) {
	g := graph.New([]string{"A", "B"}, [2]string{"A", "B"})
	c := cache.NewMemoryCache(0)
	ts := httptest.NewServer(New(config.Default(),
		WithGraph(func() graph.Graph { return g.Clone() }),
		WithCache(c),
	).Handler())
	t.Cleanup(ts.Close)

	tests := []struct {
		path string
		want string
	}{
		{"/snapshot.svg?width=300&height=200", "MISS"},
		{"/snapshot.svg?width=300&height=200", "HIT"},
		{"/snapshot.svg?width=301&height=200", "MISS"},
		{"/graph.dot", "MISS"},
		{"/graph.dot", "HIT"},
	}
	var first []byte
	for i, tt := range tests {
		resp, body := get(t, ts.URL+tt.path)
		if got := resp.Header.Get(CacheHeader); got != tt.want {
			t.Errorf("request %d %s: %s = %q, want %q", i, tt.path, CacheHeader, got, tt.want)
		}
		switch i {
		case 0:
			first = body
		case 1:
			if !bytes.Equal(first, body) {
				t.Error("cached body differs from rendered body")
			}
		}
	}
	if c.Len() != 3 {
		t.Errorf("cache entries = %d, want 3", c.Len())
	}
}

func TestRenderCacheDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Cache = cache.BackendNone
	ts := httptest.NewServer(New(cfg).Handler())
	t.Cleanup(ts.Close)

	for range 2 {
		resp, _ := get(t, ts.URL+"/graph.dot")
		if got := resp.Header.Get(CacheHeader); got != "MISS" {
			t.Errorf("%s = %q, want MISS", CacheHeader, got)
		}
	}
}
