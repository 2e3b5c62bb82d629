// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

/*
Package models defines data structures for the Culinarium application.

This package contains all data models used throughout the application: the
recipe and ingredient records persisted by the stores, the API request and
response structures, and the domain error sentinels every store operation
reports through. It is the single source of truth for data structure
definitions.

Key Components:

  - Ingredient: Catalog entry (name, quantity, unit), also embedded by value inside recipes
  - Recipe: Core record owning an ordered list of embedded Ingredient copies
  - APIResponse / APIError: Standardized API response wrapper
  - Domain sentinels: ErrNotFound, ErrNotAuthorized, ErrConflict, ErrValidation, ErrInvariant

Model Categories:

 1. Store Models:
    - Ingredient: Catalog document, keyed by UUID
    - Recipe: Recipe document with embedded ingredient snapshots

 2. API Request/Response Models:
    - APIResponse: Standard response wrapper
    - APIError: Error details
    - Metadata: Response metadata (timestamp, query time, cache flag)
    - Request DTOs: CreateIngredientRequest, CreateRecipeRequest, etc.

 3. Domain Errors:
    - Five sentinel errors matched with errors.Is across store and API layers

Embedded-Copy Semantics:

A Recipe embeds value snapshots of Ingredient records, not references.
Attaching an ingredient copies the catalog record as it exists at attach
time; later catalog edits never alter what a recipe displays. Two recipes
may therefore carry embedded ingredients with the same identifier, and
duplicate catalog entries with identical name/quantity/unit are legitimate.

Thread Safety:

All models are plain data structures with no internal synchronization.
They are safe for concurrent reads; the stores hand out independent copies
so callers never share mutable state.

JSON Marshaling:

All models carry snake_case struct tags and are serialized with
goccy/go-json. Optional string fields use omitempty; absent is encoded as
the empty string at the store layer.

See Also:

  - internal/catalog: Ingredient catalog store
  - internal/recipe: Recipe store, mutations, and the search engine
  - internal/api: HTTP handlers returning these models
*/
package models
