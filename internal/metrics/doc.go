// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the application with the Prometheus client library,
exposing metrics for monitoring performance, errors, and system health.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Badger store operation performance (catalog and recipe stores)
  - Search engine query statistics
  - Cache hit/miss rates
  - Event bus publish and handler throughput
  - Badger value log garbage collection

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Store Metrics:
  - store_operation_duration_seconds: Operation execution time (histogram)
    Labels: store (catalog, recipe), operation (create, get, edit, delete, ...)
  - store_operation_errors_total: Failed operations (counter)
    Labels: store, operation, error_type
  - store_records: Record count per store (gauge)
    Labels: store

Search Metrics:
  - search_queries_total: Search engine queries (counter)
    Labels: variant
  - search_query_duration_seconds: Query latency (histogram)
    Labels: variant
  - search_result_count: Result set sizes (histogram)

Cache Metrics:
  - cache_hits_total / cache_misses_total / cache_evictions_total (counters)
    Labels: cache_type
  - cache_entries: Current entry count (gauge)
    Labels: cache_type

Event Metrics:
  - events_published_total: Events published to the bus (counter)
    Labels: topic
  - events_handled_total: Handler executions (counter)
    Labels: handler, result
  - event_handling_duration_seconds: Handler latency (histogram)
  - events_parse_failed_total: Undecodable bus messages (counter)

Badger Metrics:
  - badger_gc_runs_total: Value log GC attempts (counter)
    Labels: result (reclaimed, noop, error)
  - badger_lsm_size_bytes / badger_vlog_size_bytes: On-disk sizes (gauges)

# Usage Example

Recording API metrics from middleware:

	start := time.Now()
	next.ServeHTTP(wrapped, r)
	metrics.RecordAPIRequest(r.Method, r.URL.Path, strconv.Itoa(wrapped.statusCode), time.Since(start))

Recording store operations from a handler:

	start := time.Now()
	rec, err := h.recipes.Create(ctx, owner, req)
	metrics.RecordStoreOperation("recipe", "create", time.Since(start), err)

# Cardinality Management

To prevent high cardinality:
  - Store errors are classified onto the fixed error taxonomy
    (not_found, not_authorized, conflict, validation, invariant, other)
    rather than labeled with raw error strings
  - Endpoint labels use route patterns, not raw URLs with IDs
  - User identifiers never appear as label values

# Thread Safety

All metric recording functions are safe for concurrent use. The Prometheus
client library handles synchronization internally.

# See Also

  - internal/api: HTTP middleware with metrics integration
  - internal/cache: Cache metrics recording
  - internal/events: Event bus metrics recording
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics
