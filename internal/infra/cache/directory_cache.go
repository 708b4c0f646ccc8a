// Package cache provides in-process caches backing read-heavy endpoints.
package cache

import (
	"sync"
	"time"

	"vault/internal/domain/entity"
	"vault/internal/domain/service"
)

// directoryCache is a single-slot TTL cache for the public directory
// snapshot. A generation counter is bumped on every invalidation so a
// writer holding a stale snapshot loses the race instead of resurrecting
// dropped data.
type directoryCache struct {
	mu      sync.Mutex
	entries []*entity.DirectoryEntry
	setAt   time.Time
	gen     uint64
	ttl     time.Duration

	now func() time.Time
}

// NewDirectoryCache creates a directory cache with the given entry lifetime.
func NewDirectoryCache(ttl time.Duration) service.DirectoryCache {
	return &directoryCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Read returns the cached snapshot and the current generation token.
func (c *directoryCache) Read() ([]*entity.DirectoryEntry, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		return nil, c.gen, false
	}
	if c.now().Sub(c.setAt) >= c.ttl {
		// Expired entries are dropped eagerly so a later Write from the
		// same generation can still land.
		c.entries = nil

		return nil, c.gen, false
	}

	return c.entries, c.gen, true
}

// Write installs a snapshot built after a Read that returned gen. The
// write is discarded when an invalidation moved the generation in between.
func (c *directoryCache) Write(entries []*entity.DirectoryEntry, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}

	c.entries = entries
	c.setAt = c.now()

	return true
}

// Invalidate drops the cached snapshot and advances the generation.
func (c *directoryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.gen++
}
