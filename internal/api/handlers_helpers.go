// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/culinarium/internal/logging"
	"github.com/tomtom215/culinarium/internal/models"
	"github.com/tomtom215/culinarium/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
// This includes newlines, carriage returns, tabs, and other control characters that could
// allow attackers to forge log entries or corrupt log files.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		// Replace control characters (0x00-0x1F and 0x7F) with a safe representation
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		// Sanitize error output to prevent log injection attacks
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondAPIError sends an error response preserving structured details,
// used for validation failures where the field breakdown matters.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: apiErr,
	})
}

// respondDomainError maps a store error onto the wire. Client-caused
// errors (4xx) surface the store's message, which names the offending
// identifier or rule without leaking internals. Anything unrecognized is
// a 500 with the detail kept server-side.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := domainStatus(err)
	if status >= http.StatusInternalServerError {
		logging.CtxErr(r.Context(), err).Str("code", code).Msg("Unhandled store error")
		respondError(w, status, code, "Internal server error", nil)
		return
	}
	respondError(w, status, code, err.Error(), nil)
}

// respondData sends a success envelope with query timing metadata.
func respondData(w http.ResponseWriter, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
// The returned error uses the VALIDATION_ERROR code consistent with other API errors.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeRequest decodes and validates a JSON request body into v.
// On failure it writes the error response and returns false; handlers
// just return.
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "Invalid JSON body", err)
		return false
	}

	if apiErr := validateRequest(v); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return false
	}

	return true
}

// requireMethod validates HTTP method and returns true if valid, false if error was sent
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodBlocked, "Method not allowed", nil)
		return false
	}
	return true
}

// requestUser extracts the acting principal seeded by the RequireUser
// middleware. Handlers call this rather than reading the header so that
// direct (non-router) callers get the same 401 behavior.
func requestUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := logging.UserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "X-User-ID header is required", nil)
		return "", false
	}
	return userID, true
}

// getIntParam extracts an integer query parameter with a default value
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// parseCommaSeparated parses a comma-separated string into a slice
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	parts := strings.Split(value, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// pageSlice applies limit/offset windowing to a listing. A zero or
// negative limit means no bound.
func pageSlice[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// pageParams reads the opt-in pagination parameters. Listings return
// everything unless the client sends limit or offset; a bare offset uses
// the configured default page size so the window is never unbounded from
// the middle of the set.
func (h *Handler) pageParams(r *http.Request) (limit, offset int, paged bool) {
	q := r.URL.Query()
	if !q.Has("limit") && !q.Has("offset") {
		return 0, 0, false
	}

	defaultLimit := 20
	if h.config != nil && h.config.API.DefaultPageSize > 0 {
		defaultLimit = h.config.API.DefaultPageSize
	}

	limit = getIntParam(r, "limit", defaultLimit)
	offset = getIntParam(r, "offset", 0)
	return limit, offset, true
}

// maxSearchResults returns the configured cap on search result payloads.
func (h *Handler) maxSearchResults() int {
	if h.config != nil && h.config.API.MaxSearchResults > 0 {
		return h.config.API.MaxSearchResults
	}
	return 100
}
