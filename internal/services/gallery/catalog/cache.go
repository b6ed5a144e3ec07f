package catalog

import (
	"context"
	"sync"
	"time"
)

// SnapshotCache keeps the last successful catalog for a fixed TTL. A
// non-positive TTL disables caching and every Load reaches the source.
type SnapshotCache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	snapshot Catalog
	loadedAt time.Time
	valid    bool
}

// NewSnapshotCache wraps source.
func NewSnapshotCache(source Source, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{source: source, ttl: ttl, now: time.Now}
}

// Load returns the cached catalog while it is fresh, otherwise loads from
// the source. Failed or cancelled loads are not cached.
func (c *SnapshotCache) Load(ctx context.Context) (Catalog, error) {
	if c.ttl <= 0 {
		return c.source.Load(ctx)
	}

	c.mu.Lock()
	if c.valid && c.now().Sub(c.loadedAt) < c.ttl {
		snapshot := c.snapshot
		c.mu.Unlock()
		return snapshot, nil
	}
	c.mu.Unlock()

	catalog, err := c.source.Load(ctx)
	if err != nil {
		return Catalog{}, err
	}

	c.mu.Lock()
	c.snapshot = catalog
	c.loadedAt = c.now()
	c.valid = true
	c.mu.Unlock()
	return catalog, nil
}

// Invalidate drops the cached snapshot.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.snapshot = Catalog{}
	c.mu.Unlock()
}
