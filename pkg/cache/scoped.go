package cache

// ScopedKeyer wraps a Keyer with a prefix so several graphs or tools can
// share one cache backend without key collisions.
//
// Example usage:
//
//	// Per-project keys when one Redis instance serves many repos
//	projectKeyer := NewScopedKeyer(NewDefaultKeyer(), "project:kb42:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PathKey generates a prefixed key for shortest-path results.
func (k *ScopedKeyer) PathKey(graphHash, rootID, targetID string, maxDepth int) string {
	return k.prefix + k.inner.PathKey(graphHash, rootID, targetID, maxDepth)
}

// WalkKey generates a prefixed key for random-walk results.
func (k *ScopedKeyer) WalkKey(graphHash, startID string, maxLength, attempts int, seed int64, extra ...any) string {
	return k.prefix + k.inner.WalkKey(graphHash, startID, maxLength, attempts, seed, extra...)
}

// StatsKey generates a prefixed key for statistics summaries.
func (k *ScopedKeyer) StatsKey(graphHash string) string {
	return k.prefix + k.inner.StatsKey(graphHash)
}
