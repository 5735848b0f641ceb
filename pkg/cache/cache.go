package cache

import (
	"context"
	"time"
)

// Cache stores serialized query results keyed by string. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys for graph query results. Keys incorporate a
// content hash of the graph, so editing the graph file invalidates every
// cached result for it.
type Keyer interface {
	// PathKey keys a shortest-path query result.
	PathKey(graphHash, rootID, targetID string, maxDepth int) string

	// WalkKey keys a random-walk query result. Any walk options beyond the
	// core parameters go into extra so differing options never collide.
	WalkKey(graphHash, startID string, maxLength, attempts int, seed int64, extra ...any) string

	// StatsKey keys a graph statistics summary.
	StatsKey(graphHash string) string
}

// DefaultKeyer hashes query parameters into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PathKey generates a key for shortest-path results.
func (k *DefaultKeyer) PathKey(graphHash, rootID, targetID string, maxDepth int) string {
	return hashKey("path", graphHash, rootID, targetID, maxDepth)
}

// WalkKey generates a key for random-walk results.
func (k *DefaultKeyer) WalkKey(graphHash, startID string, maxLength, attempts int, seed int64, extra ...any) string {
	parts := append([]any{graphHash, startID, maxLength, attempts, seed}, extra...)
	return hashKey("walk", parts...)
}

// StatsKey generates a key for statistics summaries.
func (k *DefaultKeyer) StatsKey(graphHash string) string {
	return hashKey("stats", graphHash)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
