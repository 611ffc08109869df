// Package seriescache provides an in-process TTL cache for fetched
// time-series data. Entries older than the configured TTL are treated as
// misses; there is no persistence across restarts.
package seriescache

import (
	"sync"
	"time"

	"github.com/bwhitfield/marketlens/internal/models"
)

// DefaultTTL bounds how long a fetched series is served without going back to
// the provider. Historical bars settle quickly, so minutes is plenty.
const DefaultTTL = 10 * time.Minute

type entry struct {
	series    *models.TimeSeries
	fetchedAt time.Time
}

// Cache is a TTL-bounded map from (ticker, range) to time-series. Safe for
// concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache with the given entry lifetime. A non-positive ttl
// disables caching: every Get is a miss and Put is a no-op.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached series for key if present and fresh.
func (c *Cache) Get(key string) (*models.TimeSeries, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) > c.ttl {
		c.mu.Lock()
		// Recheck under the write lock; another caller may have refreshed it.
		if cur, ok := c.entries[key]; ok && c.now().Sub(cur.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.series, true
}

// Put stores a series under key, stamped with the current time.
func (c *Cache) Put(key string, series *models.TimeSeries) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry{series: series, fetchedAt: c.now()}
	c.mu.Unlock()
}

// Len returns the number of entries currently held, fresh or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// WithClock overrides the cache's clock. Test hook.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}
