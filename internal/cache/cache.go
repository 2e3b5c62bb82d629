// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/culinarium/internal/metrics"
)

// cleanupInterval is how often the background sweep removes expired entries.
// Get also evicts lazily, so the sweep only bounds memory for keys that are
// never read again.
const cleanupInterval = 5 * time.Minute

// Config holds cache construction settings, typically taken from
// config.CacheConfig.
type Config struct {
	Enabled    bool
	TTL        time.Duration
	MaxEntries int
}

// Entry represents a cached item with expiration
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
	StoredAt  time.Time
}

// Cache provides a thread-safe in-memory read cache with TTL expiry, a
// bounded entry count, and generation-based invalidation.
//
// The generation counter is folded into every key produced by Key. Bumping
// the generation after a write makes all previously issued keys unreachable
// at once, so a query that runs after a mutation can never observe a
// pre-mutation cache entry. Stale entries age out through TTL expiry and
// the size bound rather than being deleted eagerly.
//
// A disabled Cache (Config.Enabled=false) accepts all calls and caches
// nothing, so callers never need an enabled check.
type Cache struct {
	name       string
	mu         sync.RWMutex
	entries    map[string]Entry
	ttl        time.Duration
	maxEntries int
	enabled    bool
	generation atomic.Uint64
	stats      Stats
	stop       chan struct{}
	stopOnce   sync.Once
}

// Stats tracks cache performance metrics
type Stats struct {
	mu          sync.RWMutex
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a thread-safe in-memory cache with automatic expiration.
//
// The name labels this cache in Prometheus metrics (cache_hits_total etc.)
// and should be stable, e.g. "search". A background goroutine sweeps
// expired entries every five minutes; call Close to stop it.
//
// Example:
//
//	c := cache.New("search", cache.Config{Enabled: true, TTL: 30 * time.Second, MaxEntries: 1024})
//	defer c.Close()
//
//	key := c.Key("ingredients", params)
//	if data, ok := c.Get(key); ok {
//	    return data.(*models.SearchResponse), nil
//	}
func New(name string, cfg Config) *Cache {
	if !cfg.Enabled {
		return &Cache{name: name, enabled: false}
	}

	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 1024
	}

	c := &Cache{
		name:       name,
		entries:    make(map[string]Entry),
		ttl:        cfg.TTL,
		maxEntries: cfg.MaxEntries,
		enabled:    true,
		stats: Stats{
			LastCleanup: time.Now(),
		},
		stop: make(chan struct{}),
	}

	go c.cleanupLoop()

	return c
}

// Key builds a cache key from a query variant name, its parameters, and
// the current store generation. Identical parameters produce identical
// keys within a generation; any generation bump changes every key.
func (c *Cache) Key(variant string, params interface{}) string {
	return fmt.Sprintf("%s:g%d:%s", variant, c.generation.Load(), hashParams(params))
}

// Generation returns the current store generation.
func (c *Cache) Generation() uint64 {
	return c.generation.Load()
}

// BumpGeneration invalidates every outstanding cache key in O(1).
// Called after each successful recipe or catalog mutation.
func (c *Cache) BumpGeneration() {
	c.generation.Add(1)
}

// Get retrieves a value from the cache by key.
//
// Returns (nil, false) if the key doesn't exist or the entry has expired;
// an expired entry is deleted on the spot and counted as a miss plus an
// eviction. A disabled cache always returns (nil, false) without touching
// statistics or metrics.
func (c *Cache) Get(key string) (interface{}, bool) {
	if !c.enabled {
		return nil, false
	}

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		size := len(c.entries)
		c.mu.Unlock()
		c.recordMiss()
		c.recordEviction()
		c.setTotalKeys(size)
		return nil, false
	}

	c.recordHit()
	return entry.Data, true
}

// Set stores a value with the default TTL. When the cache is at its entry
// bound, the oldest entry is evicted first. No-op on a disabled cache.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value in the cache with a custom TTL
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	if !c.enabled {
		return
	}

	now := time.Now()

	c.mu.Lock()
	if _, exists := c.entries[key]; !exists {
		for len(c.entries) >= c.maxEntries {
			c.evictOldestLocked()
		}
	}
	c.entries[key] = Entry{
		Data:      value,
		ExpiresAt: now.Add(ttl),
		StoredAt:  now,
	}
	size := len(c.entries)
	c.mu.Unlock()

	c.setTotalKeys(size)
}

// evictOldestLocked removes the entry with the earliest StoredAt.
// Caller must hold c.mu.
func (c *Cache) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		first     = true
	)
	for key, entry := range c.entries {
		if first || entry.StoredAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.StoredAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
		c.recordEviction()
	}
}

// Delete removes a specific cache entry by key. Safe to call with keys
// that do not exist.
func (c *Cache) Delete(key string) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	size := len(c.entries)
	c.mu.Unlock()

	if existed {
		c.recordEviction()
	}
	c.setTotalKeys(size)
}

// Clear removes all entries from the cache in a single operation.
func (c *Cache) Clear() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = 0
	c.stats.mu.Unlock()

	metrics.SetCacheSize(c.name, 0)
}

// Close stops the background cleanup goroutine. Idempotent.
func (c *Cache) Close() {
	if !c.enabled {
		return
	}
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

// Enabled reports whether this cache stores anything at all.
func (c *Cache) Enabled() bool {
	return c.enabled
}

// GetStats returns a snapshot of current cache performance statistics.
func (c *Cache) GetStats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:        c.stats.Hits,
		Misses:      c.stats.Misses,
		Evictions:   c.stats.Evictions,
		TotalKeys:   c.stats.TotalKeys,
		LastCleanup: c.stats.LastCleanup,
	}
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// cleanupLoop periodically removes expired entries until Close is called
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes all expired entries
func (c *Cache) cleanup() {
	now := time.Now()
	c.mu.Lock()
	evictions := int64(0)
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evictions++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = int64(size)
	c.stats.LastCleanup = now
	c.stats.mu.Unlock()

	for i := int64(0); i < evictions; i++ {
		metrics.RecordCacheEviction(c.name)
	}
	metrics.SetCacheSize(c.name, size)
}

// recordHit increments the hit counter
func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
	metrics.RecordCacheHit(c.name)
}

// recordMiss increments the miss counter
func (c *Cache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
	metrics.RecordCacheMiss(c.name)
}

// recordEviction increments the eviction counter
func (c *Cache) recordEviction() {
	c.stats.mu.Lock()
	c.stats.Evictions++
	c.stats.mu.Unlock()
	metrics.RecordCacheEviction(c.name)
}

// setTotalKeys records the current entry count
func (c *Cache) setTotalKeys(size int) {
	c.stats.mu.Lock()
	c.stats.TotalKeys = int64(size)
	c.stats.mu.Unlock()
	metrics.SetCacheSize(c.name, size)
}

// hashParams serializes params and hashes them into a compact key segment
func hashParams(params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		// Fallback to a plain string rendering
		return fmt.Sprintf("%v", params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:16])
}
