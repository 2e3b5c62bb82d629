// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

/*
Package cache provides the thread-safe in-memory result cache used by the
search endpoint.

The cache combines three mechanisms:

  - TTL expiry: every entry carries an absolute deadline; reads evict
    expired entries lazily and a background sweep bounds memory for keys
    that are never read again
  - Size bound: once MaxEntries is reached, the oldest entry is evicted
    to make room
  - Generation-based invalidation: Key folds a monotonic generation
    counter into every key, so bumping the generation after a mutation
    invalidates every outstanding key in O(1) without touching the map

The generation scheme is what makes read-your-writes hold for search: a
query issued after any recipe or ingredient mutation hashes to a key no
pre-mutation entry can occupy.

Hit, miss, and eviction counts are exported through the metrics package
under the cache's name label.

Usage:

	c := cache.New("search", cache.Config{Enabled: true, TTL: 30 * time.Second, MaxEntries: 1024})
	defer c.Close()

	key := c.Key("ingredients", params)
	if v, ok := c.Get(key); ok {
	    return v.(*models.SearchResponse)
	}
	resp := runQuery(params)
	c.Set(key, resp)

A cache constructed with Enabled=false accepts all calls and stores
nothing, so callers need no conditional paths.
*/
package cache
