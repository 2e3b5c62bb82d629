// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

// Package middleware provides chi-compatible HTTP middleware shared by the
// API layer: request ID propagation, structured request logging, Prometheus
// instrumentation, gzip compression, and an in-process performance monitor.
//
// All middleware uses the standard func(http.Handler) http.Handler shape so
// it composes with chi's r.Use(). The conventional global stack, outermost
// first:
//
//	r.Use(middleware.RequestID)          // X-Request-ID + logging context
//	r.Use(middleware.RequestLogger)      // one zerolog line per request
//	r.Use(middleware.PrometheusMetrics)  // counters + histograms
//	r.Use(middleware.Compression)        // gzip when accepted
//
// Metric and performance labels use the chi route pattern (for example
// "/api/v1/recipes/{id}") rather than the raw URL path, so per-recipe and
// per-ingredient IDs never inflate label cardinality.
//
// The PerformanceMonitor keeps a bounded sliding window of recent request
// timings with per-endpoint percentiles. It complements Prometheus: the
// window can be inspected through the health surface without a scrape.
package middleware
