package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/matzehuels/depview/pkg/graph"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestArtifactKey(t *testing.T) {
	h := GraphHash(graph.New([]string{"a", "b"}, [2]string{"a", "b"}))
	if len(h) != 64 {
		t.Fatalf("GraphHash length = %d", len(h))
	}
	if other := GraphHash(graph.New([]string{"a", "b"})); other == h {
		t.Error("different graphs should hash differently")
	}

	png := ArtifactKey(h, ArtifactKeyOpts{Kind: "snapshot", Format: "png", Width: 800, Height: 600})
	svg := ArtifactKey(h, ArtifactKeyOpts{Kind: "snapshot", Format: "svg", Width: 800, Height: 600})
	small := ArtifactKey(h, ArtifactKeyOpts{Kind: "snapshot", Format: "png", Width: 400, Height: 600})
	if png == svg || png == small {
		t.Error("different options should produce different keys")
	}
	if again := ArtifactKey(h, ArtifactKeyOpts{Kind: "snapshot", Format: "png", Width: 800, Height: 600}); again != png {
		t.Error("ArtifactKey should be deterministic")
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("empty cache should miss")
	}

	data := []byte("one")
	_ = c.Set(ctx, "a", data, 0)
	data[0] = 'X'
	got, hit, err := c.Get(ctx, "a")
	if err != nil || !hit || string(got) != "one" {
		t.Errorf("Get(a) = %q, %v, %v", got, hit, err)
	}

	_ = c.Set(ctx, "b", []byte("two"), 0)
	_ = c.Set(ctx, "c", []byte("three"), 0)
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("oldest entry should be evicted")
	}

	_ = c.Delete(ctx, "b")
	if _, hit, _ := c.Get(ctx, "b"); hit {
		t.Error("deleted entry should miss")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("fresh entry should hit")
	}
	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if c.Len() != 0 {
		t.Error("expired entry should be dropped on read")
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, hit, err := c.Get(ctx, "key")
	if err != nil || !hit || string(got) != "value" {
		t.Errorf("Get = %q, %v, %v", got, hit, err)
	}

	_ = c.Set(ctx, "old", []byte("x"), time.Nanosecond)
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry should miss")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("deleted entry should miss")
	}
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	calls := 0
	render := func() ([]byte, error) {
		calls++
		return []byte("rendered"), nil
	}

	data, hit, err := Fetch(ctx, c, "k", 0, render)
	if err != nil || hit || string(data) != "rendered" {
		t.Fatalf("first Fetch = %q, %v, %v", data, hit, err)
	}
	data, hit, err = Fetch(ctx, c, "k", 0, render)
	if err != nil || !hit || string(data) != "rendered" {
		t.Fatalf("second Fetch = %q, %v, %v", data, hit, err)
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, _, err := Fetch(ctx, c, "bad", 0, func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("Fetch error = %v, want boom", err)
	}
	if _, hit, _ := c.Get(ctx, "bad"); hit {
		t.Error("failed render should not be stored")
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		kind    string
		want    string
		wantErr bool
	}{
		{"", "*cache.MemoryCache", false},
		{BackendMemory, "*cache.MemoryCache", false},
		{BackendNone, "*cache.NullCache", false},
		{BackendFile, "*cache.FileCache", false},
		{"redis", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			c, err := Open(tt.kind, t.TempDir())
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			defer c.Close()
			if got := fmt.Sprintf("%T", c); got != tt.want {
				t.Errorf("Open(%q) = %s, want %s", tt.kind, got, tt.want)
			}
		})
	}
}
