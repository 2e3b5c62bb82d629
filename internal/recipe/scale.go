// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package recipe

import (
	"context"
	"fmt"
	"math"

	"github.com/tomtom215/culinarium/internal/models"
)

// ScaleIngredients returns the recipe's embedded ingredients with every
// quantity multiplied by factor. The result is a fresh, non-persisted
// list: the stored recipe is never mutated, so any number of viewers can
// scale the same recipe to different factors concurrently without
// corrupting the canonical record.
//
// The factor must be a positive finite number; zero, negative, NaN, and
// infinite factors are ErrValidation.
func (s *Store) ScaleIngredients(ctx context.Context, recipeID string, factor float64) ([]models.Ingredient, error) {
	rec, err := s.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("scale factor must be a positive finite number, got %v: %w", factor, models.ErrValidation)
	}

	out := rec.CloneIngredients()
	for i := range out {
		out[i].Quantity *= factor
	}
	return out, nil
}
