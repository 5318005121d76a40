package cache

import (
	"context"
	"testing"
	"time"
)

// backendsUnderTest returns the cache implementations that need no
// external service.
func backendsUnderTest(t *testing.T) map[string]Cache {
	t.Helper()

	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	return map[string]Cache{
		"memory": NewMemoryCache(),
		"file":   fc,
	}
}

func TestCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()

	for name, c := range backendsUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer c.Close()

			if _, ok, err := c.Get(ctx, "absent"); err != nil || ok {
				t.Errorf("Get(absent) = ok=%v err=%v, want miss", ok, err)
			}

			if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			data, ok, err := c.Get(ctx, "k")
			if err != nil || !ok || string(data) != "v" {
				t.Errorf("Get(k) = %q ok=%v err=%v, want v", data, ok, err)
			}

			if err := c.Delete(ctx, "k"); err != nil {
				t.Fatalf("Delete() error: %v", err)
			}
			if _, ok, _ := c.Get(ctx, "k"); ok {
				t.Error("Get after Delete still hits")
			}
			if err := c.Delete(ctx, "k"); err != nil {
				t.Errorf("Delete(absent) error: %v", err)
			}
		})
	}
}

func TestCache_Expiry(t *testing.T) {
	ctx := context.Background()

	for name, c := range backendsUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer c.Close()

			if err := c.Set(ctx, "k", []byte("v"), -time.Second); err == nil {
				// Negative TTL means no expiry: entry must survive.
				if _, ok, _ := c.Get(ctx, "k"); !ok {
					t.Error("entry with no expiry reported as miss")
				}
			}

			if err := c.Set(ctx, "gone", []byte("v"), time.Nanosecond); err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			time.Sleep(5 * time.Millisecond)
			if _, ok, _ := c.Get(ctx, "gone"); ok {
				t.Error("expired entry still hits")
			}
		})
	}
}

func TestNullCache_NeverStores(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache returned a hit")
	}
}

func TestFileCache_Clear(t *testing.T) {
	ctx := context.Background()
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}

	_ = fc.Set(ctx, "a", []byte("1"), time.Minute)
	_ = fc.Set(ctx, "b", []byte("2"), time.Minute)

	if err := fc.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, ok, _ := fc.Get(ctx, "a"); ok {
		t.Error("entry survived Clear()")
	}
}

func TestHash_StableAndDistinct(t *testing.T) {
	if Hash([]byte("x")) != Hash([]byte("x")) {
		t.Error("same input hashed differently")
	}
	if Hash([]byte("x")) == Hash([]byte("y")) {
		t.Error("different inputs collided")
	}
	if len(Hash(nil)) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(Hash(nil)))
	}
}

func TestKeys(t *testing.T) {
	if got := PartitionKey("abc", "bfs"); got != "partition:bfs:abc" {
		t.Errorf("PartitionKey() = %q", got)
	}
	if got := RenderKey("abc", "svg"); got != "render:svg:abc" {
		t.Errorf("RenderKey() = %q", got)
	}
}
