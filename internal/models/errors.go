// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package models

import "errors"

// Domain error sentinels shared by the catalog and recipe stores.
//
// Store operations wrap these with fmt.Errorf("...: %w", ...) so callers
// get context in the message while still matching the kind with errors.Is.
// The API layer maps each kind to exactly one HTTP status (see
// internal/api). Every operation either fully applies or returns exactly
// one of these; there is no transient-failure class and nothing is retried
// internally.
var (
	// ErrNotFound indicates a referenced recipe or ingredient identifier
	// does not exist in the relevant store.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized indicates the requesting user is not the owner of
	// the recipe targeted by an owner-gated mutation.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrConflict indicates an (owner, title) pair is already taken.
	ErrConflict = errors.New("already exists")

	// ErrValidation indicates malformed input: empty required text, a
	// malformed URL, a non-positive scale factor, an empty query set, a
	// negative quantity, or a malformed ingredient text line.
	ErrValidation = errors.New("invalid input")

	// ErrInvariant indicates an operation would leave a recipe with
	// neither link nor description. The recipe is left unchanged.
	ErrInvariant = errors.New("invariant violation")
)
