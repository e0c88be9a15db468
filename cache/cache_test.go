package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adsigel/wknd-works/models"
)

func TestCacheReturnsFreshEntry(t *testing.T) {
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	c := New(5 * time.Minute).WithClock(func() time.Time { return now })

	_, ok := c.Get()
	assert.False(t, ok)

	records := []models.InventoryRecord{{ID: "a", Quantity: 3}}
	c.Set(records)

	got, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, records, got)
}

func TestCacheExpires(t *testing.T) {
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	c := New(5 * time.Minute).WithClock(func() time.Time { return now })

	c.Set([]models.InventoryRecord{{ID: "a"}})

	now = now.Add(5 * time.Minute)
	_, ok := c.Get()
	assert.True(t, ok, "entry at exactly the TTL is still fresh")

	now = now.Add(time.Second)
	_, ok = c.Get()
	assert.False(t, ok, "entry past the TTL must expire")
}

func TestCacheInvalidate(t *testing.T) {
	c := New(5 * time.Minute)
	c.Set([]models.InventoryRecord{{ID: "a"}})
	c.Invalidate()
	_, ok := c.Get()
	assert.False(t, ok)
}

func TestCacheDefaultTTL(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultTTL, c.ttl)
}
