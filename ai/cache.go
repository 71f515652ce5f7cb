package ai

import (
	"strings"
	"sync"
	"time"
)

// maxCacheEntries bounds the response cache; past it, the oldest-inserted
// entry is evicted.
const maxCacheEntries = 100

type cacheEntry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

// responseCache is the in-memory response cache shared by all domain
// services through the Core. Entries expire by TTL but stay physically
// stored until evicted or read past expiry. Insertion order is tracked
// for eviction; re-setting an existing key keeps its original position.
type responseCache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	order      []string
	defaultTTL time.Duration
	enabled    bool
	now        func() time.Time
	metrics    *metrics
}

func newResponseCache(defaultTTL time.Duration, enabled bool, now func() time.Time, m *metrics) *responseCache {
	return &responseCache{
		entries:    make(map[string]cacheEntry),
		defaultTTL: defaultTTL,
		enabled:    enabled && defaultTTL > 0,
		now:        now,
		metrics:    m,
	}
}

// Get returns the cached value only when present and not expired; any
// other outcome counts as a miss.
func (c *responseCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		c.metrics.recordMiss()
		return nil, false
	}

	entry, ok := c.entries[key]
	if !ok {
		c.metrics.recordMiss()
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > entry.ttl {
		c.removeLocked(key)
		c.metrics.recordMiss()
		return nil, false
	}

	c.metrics.recordHit()
	return entry.value, true
}

// Set stores with the instance default TTL.
func (c *responseCache) Set(key string, value any) {
	c.SetTTL(key, value, c.defaultTTL)
}

func (c *responseCache) SetTTL(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return
	}

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{value: value, storedAt: c.now(), ttl: ttl}

	if len(c.entries) > maxCacheEntries {
		c.removeLocked(c.order[0])
	}
}

// Clear drops everything, or only keys containing the given substring.
func (c *responseCache) Clear(pattern string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pattern == "" {
		c.entries = make(map[string]cacheEntry)
		c.order = c.order[:0]
		return
	}
	for _, key := range append([]string(nil), c.order...) {
		if strings.Contains(key, pattern) {
			c.removeLocked(key)
		}
	}
}

func (c *responseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *responseCache) removeLocked(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
