package ratelimiter

import (
	"sync"
	"time"
)

type cacheEntry struct {
	state     bucketState
	expiresAt time.Time
}

// ttlCache holds per-source bucket state and drops idle entries so the map
// cannot grow without bound.
type ttlCache struct {
	entries map[string]cacheEntry
	ttl     time.Duration
	mu      sync.RWMutex
}

func newTTLCache(ttl time.Duration) *ttlCache {
	c := &ttlCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
	go c.cleanupLoop()
	return c
}

func (c *ttlCache) get(key string) (bucketState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return bucketState{}, false
	}
	return entry.state, true
}

func (c *ttlCache) set(key string, state bucketState) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		state:     state,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *ttlCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()

		c.mu.Lock()
		for key, entry := range c.entries {
			if now.After(entry.expiresAt) {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}
