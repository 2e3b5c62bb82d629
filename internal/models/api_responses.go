// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability and caching information.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"id": "7f9c...", "title": "Carbonara", ...},
//	  "metadata": {
//	    "timestamp": "2026-08-25T12:00:00Z",
//	    "query_time_ms": 3
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "recipe needs a link or a description",
//	    "details": {"field": "link"}
//	  },
//	  "metadata": {"timestamp": "2026-08-25T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance tracking.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Store/query execution time in milliseconds (0 if cached)
//   - Cached: Whether response was served from the search cache (omitted if false)
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
// Provides consistent error format across all API endpoints for better client handling.
//
// Error codes map one-to-one onto the domain sentinels plus transport-level
// failures:
//   - VALIDATION_ERROR: ErrValidation (or a malformed request body)
//   - NOT_FOUND: ErrNotFound
//   - NOT_OWNER: ErrNotAuthorized
//   - DUPLICATE_TITLE: ErrConflict
//   - INVARIANT_VIOLATION: ErrInvariant
//   - UNAUTHORIZED: missing X-User-ID on a route that requires a principal
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SearchResponse wraps search results. Recipes are ordered by descending
// match count for ingredient-based queries; title-only queries carry no
// ranking and preserve store order.
type SearchResponse struct {
	Recipes []Recipe `json:"recipes"`
	Total   int      `json:"total"`
}
