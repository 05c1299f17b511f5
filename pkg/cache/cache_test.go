package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
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

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// SceneKey should include the config hash
	sk1 := k.SceneKey(SceneKeyOpts{ConfigHash: "abc"})
	sk2 := k.SceneKey(SceneKeyOpts{ConfigHash: "def"})
	if sk1 == sk2 {
		t.Error("Different ConfigHash should produce different scene keys")
	}
	if sk1 != k.SceneKey(SceneKeyOpts{ConfigHash: "abc"}) {
		t.Error("SceneKey should be deterministic")
	}

	// ArtifactKey distinguishes formats
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{VizType: "scene", Format: "svg", Style: "flat"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{VizType: "scene", Format: "json", Style: "flat"})
	if ak1 == ak2 {
		t.Error("Different formats should produce different keys")
	}

	// ArtifactKey distinguishes viz types
	ak3 := k.ArtifactKey("hash123", ArtifactKeyOpts{VizType: "hierarchy", Format: "svg", Style: "flat"})
	if ak1 == ak3 {
		t.Error("Different viz types should produce different keys")
	}

	// ArtifactKey distinguishes styles and flags
	ak4 := k.ArtifactKey("hash123", ArtifactKeyOpts{VizType: "scene", Format: "svg", Style: "outline"})
	if ak1 == ak4 {
		t.Error("Different styles should produce different keys")
	}
	ak5 := k.ArtifactKey("hash123", ArtifactKeyOpts{VizType: "scene", Format: "svg", Style: "flat", ShowEdges: true})
	if ak1 == ak5 {
		t.Error("ShowEdges should be part of the key")
	}

	// Different scenes never collide
	ak6 := k.ArtifactKey("hash456", ArtifactKeyOpts{VizType: "scene", Format: "svg", Style: "flat"})
	if ak1 == ak6 {
		t.Error("Different scene hashes should produce different keys")
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before set
	_, hit, err := c.Get(ctx, "key1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected miss before Set")
	}

	// Set then get
	want := []byte("cached data")
	if err := c.Set(ctx, "key1", want, time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, hit, err := c.Get(ctx, "key1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}

	// Delete
	if err := c.Delete(ctx, "key1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key1")
	if hit {
		t.Error("expected miss after Delete")
	}

	// Deleting a missing key is fine
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of missing key should not error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Already-expired entry reads as a miss
	if err := c.Set(ctx, "key", []byte("data"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should be a miss")
	}

	// Zero TTL means no expiry
	if err := c.Set(ctx, "forever", []byte("data"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "forever")
	if !hit {
		t.Error("zero TTL entry should not expire")
	}
}
