// Package cache provides the single-entry TTL cache that sits in front of
// the inventory snapshot read. It is injected rather than ambient so tests
// control time.
package cache

import (
	"sync"
	"time"

	"github.com/adsigel/wknd-works/models"
)

// DefaultTTL is used when no TTL is configured.
const DefaultTTL = 5 * time.Minute

// SnapshotCache holds at most one inventory snapshot for a fixed TTL.
type SnapshotCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   func() time.Time
	records []models.InventoryRecord
	setAt   time.Time
	filled  bool
}

// New returns a cache with the given TTL. A non-positive TTL falls back to
// DefaultTTL.
func New(ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SnapshotCache{ttl: ttl, clock: time.Now}
}

// WithClock overrides the cache's clock. Used by tests.
func (c *SnapshotCache) WithClock(clock func() time.Time) *SnapshotCache {
	c.clock = clock
	return c
}

// Get returns the cached snapshot if one is present and fresh.
func (c *SnapshotCache) Get() ([]models.InventoryRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.filled || c.clock().Sub(c.setAt) > c.ttl {
		return nil, false
	}
	return c.records, true
}

// Set stores a snapshot, restarting the TTL.
func (c *SnapshotCache) Set(records []models.InventoryRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = records
	c.setAt = c.clock()
	c.filled = true
}

// Invalidate drops the cached snapshot.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.filled = false
}
