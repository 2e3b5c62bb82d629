// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package models

import (
	"strings"
	"time"
)

// Ingredient represents one catalog entry: a named quantity of something.
//
// Catalog entries are created standalone and attached to recipes by value:
// the recipe embeds a snapshot of the record at attach time, keyed by the
// same identifier. Editing or deleting the catalog entry afterwards never
// changes an embedded snapshot.
//
// Key Fields:
//   - ID: UUID, assigned at creation; embedded copies keep the same ID so
//     recipe-side membership checks and detaches work by catalog identifier
//   - Name: case-folded to lowercase at creation and on every edit
//   - Quantity: non-negative; units are free text and never interpreted
//
// There is no uniqueness constraint on (name, quantity, unit) - duplicate
// entries are legitimate because recipes copy rather than share them.
type Ingredient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeIngredientName trims surrounding whitespace and lowercases a
// raw ingredient name. Returns the empty string for whitespace-only input.
func NormalizeIngredientName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
