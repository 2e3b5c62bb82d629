// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package models

// Request DTOs for the HTTP surface. Shape validation (required fields,
// URL format, number ranges) runs through internal/validation before a
// handler touches the stores; the stores re-check every domain rule so
// non-HTTP callers get identical semantics.

// CreateIngredientRequest creates a catalog ingredient.
type CreateIngredientRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"`
}

// UpdateIngredientRequest partially edits a catalog ingredient. Empty
// name/unit and nil quantity mean "leave unchanged"; sending nothing is a
// no-op, not an error.
type UpdateIngredientRequest struct {
	Name     string   `json:"name,omitempty"`
	Quantity *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit     string   `json:"unit,omitempty"`
}

// CreateRecipeRequest creates a recipe owned by the requesting user. At
// least one of Link or Description must be non-empty; the store enforces
// this and the URL shape of Link.
type CreateRecipeRequest struct {
	Title       string `json:"title" validate:"required"`
	Link        string `json:"link,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

// AttachIngredientRequest attaches a catalog ingredient to a recipe by
// identifier.
type AttachIngredientRequest struct {
	IngredientID string `json:"ingredient_id" validate:"required"`
}

// ParseIngredientsRequest replaces a recipe's ingredient list with entries
// parsed from newline-delimited "quantity,unit,name" text. Blank text is
// legal and clears the list.
type ParseIngredientsRequest struct {
	Text string `json:"text"`
}

// SetLinkRequest sets a recipe's link.
type SetLinkRequest struct {
	Link string `json:"link" validate:"required,url"`
}

// SetDescriptionRequest sets a recipe's description.
type SetDescriptionRequest struct {
	Description string `json:"description" validate:"required"`
}

// SetImageRequest sets a recipe's image reference.
type SetImageRequest struct {
	Image string `json:"image" validate:"required"`
}

// SetCopyFlagRequest sets a recipe's IsCopy flag. Pointer so that an
// explicit false is distinguishable from a missing field.
type SetCopyFlagRequest struct {
	IsCopy *bool `json:"is_copy" validate:"required"`
}
