// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/culinarium/internal/models"
)

// API error codes. Each domain sentinel maps to exactly one code and one
// status; clients can switch on the code without parsing messages.
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeNotOwner      = "NOT_OWNER"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeDuplicate     = "DUPLICATE_TITLE"
	ErrCodeInvariant     = "INVARIANT_VIOLATION"
	ErrCodeRateLimited   = "RATE_LIMIT_EXCEEDED"
	ErrCodeMethodBlocked = "METHOD_NOT_ALLOWED"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// domainStatus resolves a store error to its HTTP status and API error
// code using errors.Is, so wrapped sentinels match no matter how much
// context the store added.
func domainStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest, ErrCodeValidation
	case errors.Is(err, models.ErrNotAuthorized):
		return http.StatusForbidden, ErrCodeNotOwner
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict, ErrCodeDuplicate
	case errors.Is(err, models.ErrInvariant):
		return http.StatusUnprocessableEntity, ErrCodeInvariant
	default:
		return http.StatusInternalServerError, ErrCodeInternal
	}
}
