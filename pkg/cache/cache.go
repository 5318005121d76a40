// Package cache stores derived analysis results (partitions, rendered
// diagrams) keyed by content hash.
//
// The pure algorithm packages never touch the cache; it exists so the CLI
// and the HTTP API can skip recomputing or re-rendering a graph they have
// already seen. Graphs themselves are never persisted, only derived
// artifacts.
//
// Backends:
//   - [MemoryCache]: per-process, for tests and single runs
//   - [FileCache]: on-disk, for CLI usage across invocations
//   - [RedisCache]: shared, for multi-instance API deployments
//   - [MongoCache]: shared, when an existing Mongo deployment is available
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// DefaultTTL is the expiry applied when callers pass a zero TTL to Set.
const DefaultTTL = 24 * time.Hour

// Cache is the storage interface shared by all backends.
// Implementations must treat a missing key as (nil, false, nil), not as an
// error.
type Cache interface {
	// Get retrieves the value for key. The second return reports whether
	// the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key with the given TTL. A zero TTL applies
	// DefaultTTL; a negative TTL stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash returns the hex SHA-256 digest of data. All cache keys are built
// from hashes so arbitrary graph content maps to safe, fixed-length keys.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// PartitionKey builds the cache key for a computed partition.
func PartitionKey(graphHash, engine string) string {
	return fmt.Sprintf("partition:%s:%s", engine, graphHash)
}

// RenderKey builds the cache key for a rendered artifact.
func RenderKey(graphHash, format string) string {
	return fmt.Sprintf("render:%s:%s", format, graphHash)
}

// effectiveTTL normalizes the TTL contract shared by backends.
func effectiveTTL(ttl time.Duration) time.Duration {
	if ttl == 0 {
		return DefaultTTL
	}
	return ttl
}
