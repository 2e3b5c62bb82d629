// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library in a thread-safe
// singleton with user-friendly error messages that translate into the
// application's API error format. It validates request SHAPE only; the
// domain rules (title uniqueness, ownership, the link-or-description
// invariant) are enforced by the core stores so that non-HTTP callers get
// identical semantics.
//
// # Quick Start
//
//	type CreateRecipeRequest struct {
//	    Title       string `validate:"required,min=1,max=200"`
//	    Link        string `validate:"omitempty,url"`
//	    Description string `validate:"max=10000"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    var req CreateRecipeRequest
//	    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	        // handle decode error
//	    }
//
//	    if verr := validation.ValidateStruct(&req); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	        return
//	    }
//
//	    // proceed with valid request
//	}
//
// # Common Validation Tags
//
// String validations:
//   - required: Field must not be empty
//   - min=n: Minimum length n characters
//   - max=n: Maximum length n characters
//   - url: Valid URL format (recipe links and image references)
//   - uuid4: Valid UUID (recipe and ingredient identifiers)
//
// Numeric validations:
//   - gte=n, lte=n, gt=n, lt=n: Range bounds (scale factors, quantities)
//
// Enum validations:
//   - oneof=a b c: Must be one of the specified values
//
// # Error Types
//
// ValidationError represents a single field validation failure with
// accessors for the field name, failed tag, tag parameter, offending
// value, and a human-readable message. RequestValidationError aggregates
// them and converts to the API error format via ToAPIError.
//
// # API Error Integration
//
// ToAPIError produces errors matching the application format:
//
//	// Single field error
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Title is required",
//	    "details": {"field": "Title", "tag": "required", "value": ""}
//	}
//
//	// Multiple field errors
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Title: Title is required; Link: Link must be a valid URL",
//	    "details": {
//	        "fields": [
//	            {"field": "Title", "tag": "required", "message": "..."},
//	            {"field": "Link", "tag": "url", "message": "..."}
//	        ]
//	    }
//	}
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use:
//
//	validate := validation.GetValidator()  // Thread-safe
//	err := validation.ValidateStruct(&req) // Thread-safe
//
// # See Also
//
//   - internal/api: Request handlers using validation
//   - github.com/go-playground/validator/v10: Underlying library
package validation
