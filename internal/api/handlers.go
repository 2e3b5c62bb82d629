// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/culinarium/internal/cache"
	"github.com/tomtom215/culinarium/internal/catalog"
	"github.com/tomtom215/culinarium/internal/config"
	"github.com/tomtom215/culinarium/internal/events"
	"github.com/tomtom215/culinarium/internal/middleware"
	"github.com/tomtom215/culinarium/internal/recipe"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, cache plumbing (this file)
//   - handlers_helpers.go: Shared response/parsing helpers
//   - handlers_health.go: Health and readiness endpoints
//   - handlers_catalog.go: Ingredient catalog endpoints
//   - handlers_recipes.go: Recipe lifecycle endpoints
//   - handlers_composition.go: Per-recipe ingredient/field endpoints
//   - handlers_search.go: The six-variant search endpoint
type Handler struct {
	catalog   *catalog.Store
	recipes   *recipe.Store
	bus       *events.Bus
	router    *events.Router // optional, reported by /health when present
	db        *badger.DB
	config    *config.Config
	cache     *cache.Cache
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates an API handler wired to both stores.
//
// The event bus is used by the recipe delete handler to publish
// recipe.deleted; pass nil to run without the deletion-cascade hook
// (tests do). The events router, when provided, only feeds the health
// report. The badger handle is used for readiness pings, never for data
// access; all data access goes through the stores.
//
// Example:
//
//	handler := api.NewHandler(catalogStore, recipeStore, bus, router, db, cfg)
//	chiRouter := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg))
//	http.ListenAndServe(cfg.Server.Addr(), chiRouter.SetupChi())
func NewHandler(catalogStore *catalog.Store, recipeStore *recipe.Store, bus *events.Bus, router *events.Router, db *badger.DB, cfg *config.Config) *Handler {
	cacheCfg := cache.Config{Enabled: true, TTL: 30 * time.Second, MaxEntries: 1024}
	if cfg != nil {
		cacheCfg = cache.Config{
			Enabled:    cfg.Cache.Enabled,
			TTL:        cfg.Cache.TTL,
			MaxEntries: cfg.Cache.MaxEntries,
		}
	}

	return &Handler{
		catalog:   catalogStore,
		recipes:   recipeStore,
		bus:       bus,
		router:    router,
		db:        db,
		config:    cfg,
		cache:     cache.New("search", cacheCfg),
		perfMon:   middleware.NewPerformanceMonitor(1000), // Keep last 1000 requests
		startTime: time.Now(),
	}
}

// invalidateSearchCache bumps the cache generation after a successful
// mutation. Old entries become unreachable immediately and age out via
// TTL; a search issued after any write therefore never observes the
// pre-write result set.
func (h *Handler) invalidateSearchCache() {
	if h.cache != nil {
		h.cache.BumpGeneration()
	}
}

// ClearCache drops all cached search results. Invalidation normally goes
// through invalidateSearchCache; this exists for operational use.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
	}
}

// Close releases the handler's cache resources.
func (h *Handler) Close() {
	if h.cache != nil {
		h.cache.Close()
	}
}

// GetCacheStats returns search cache performance statistics
func (h *Handler) GetCacheStats() cache.Stats {
	if h.cache != nil {
		return h.cache.GetStats()
	}
	return cache.Stats{}
}

// GetPerformanceStats returns performance monitoring statistics
func (h *Handler) GetPerformanceStats() []middleware.EndpointStats {
	if h.perfMon != nil {
		return h.perfMon.GetStats()
	}
	return nil
}
