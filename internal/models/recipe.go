// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package models

import (
	"time"
)

// Recipe is the core record: a titled, user-owned document carrying an
// ordered list of embedded ingredient snapshots and up to three optional
// presentation fields (image, link, description).
//
// Invariants maintained by the recipe store:
//   - (Owner, Title) is unique across all recipes.
//   - At least one of Link or Description is non-empty at all times after
//     creation. The reachable presence states are {link-only,
//     description-only, both}; "neither" is rejected, never stored.
//   - Ingredients holds at most one entry per ingredient ID.
//   - Every mutation requires the caller to equal Owner.
//
// Empty string means "absent" for Image, Link, and Description.
//
// IsCopy is set on a recipe produced by a copy operation, and also flipped
// on the source recipe at copy time, marking it as "has been copied".
type Recipe struct {
	ID          string       `json:"id"`
	Owner       string       `json:"owner"`
	Title       string       `json:"title"`
	Ingredients []Ingredient `json:"ingredients"`
	Image       string       `json:"image,omitempty"`
	Link        string       `json:"link,omitempty"`
	Description string       `json:"description,omitempty"`
	IsCopy      bool         `json:"is_copy"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// HasIngredient reports whether an embedded ingredient with the given
// identifier is present.
func (r *Recipe) HasIngredient(id string) bool {
	for i := range r.Ingredients {
		if r.Ingredients[i].ID == id {
			return true
		}
	}
	return false
}

// CloneIngredients returns an independent copy of the embedded ingredient
// list. Mutating the returned slice never affects the recipe.
func (r *Recipe) CloneIngredients() []Ingredient {
	if r.Ingredients == nil {
		return []Ingredient{}
	}
	out := make([]Ingredient, len(r.Ingredients))
	copy(out, r.Ingredients)
	return out
}

// Clone returns a deep copy of the recipe. The embedded ingredient list is
// duplicated so the clone and the original never alias.
func (r *Recipe) Clone() Recipe {
	c := *r
	c.Ingredients = r.CloneIngredients()
	return c
}
