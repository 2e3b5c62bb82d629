// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

/*
Package recipe implements the recipe store: the owner-gated record
lifecycle, the embedded-ingredient mutations, and the search engine that
ranks recipes by ingredient overlap.

Store Layout (BadgerDB):

	recipe:<id>                 -> recipe document (goccy/go-json)
	recipe_title:<owner>:<title> -> recipe id (uniqueness + exact lookup)
	recipe_owner:<owner>:<id>   -> recipe id (per-owner listing)

Index keys are written and removed in the same transaction as the primary
document, so a reader never observes a half-indexed recipe.

Owner Gating and Atomicity:

Every mutation resolves the recipe (models.ErrNotFound), checks that the
caller equals the owner (models.ErrNotAuthorized), and applies its effect
inside one read-write transaction. Badger's snapshot isolation aborts a
commit whose read set was overwritten concurrently; the store retries a
bounded number of times, so check-then-act sequences such as the
link/description invariant guard are serializable per recipe. Two
concurrent removals racing on a recipe that holds both fields can never
strip it down to neither.

Embedded Copies:

Attaching an ingredient embeds a value snapshot of the catalog record,
keyed by the catalog identifier. Attachment is idempotent per identifier;
detaching checks the embedded list, not the catalog. Later catalog edits
or deletes never alter an embedded snapshot.

Search Engine:

The six query variants share one parameterized engine: an optional
case-insensitive title-substring predicate, an optional ingredient-name
overlap predicate, and an optional candidate-ID scope. Ingredient-based
variants rank by match count descending (stable, so ties keep scan
order); title-only variants preserve scan order. An empty ingredient set
or a blank title is models.ErrValidation; an empty candidate-ID scope
short-circuits to an empty result without touching the store.

Scaling is a view-time transform: ScaleIngredients returns multiplied
copies and never writes, so concurrent viewers can apply different
factors against the same canonical record.
*/
package recipe
