// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package recipe

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/culinarium/internal/models"
)

// ParseIngredients parses newline-delimited "quantity,unit,name" text and
// REPLACES the recipe's entire embedded ingredient list with the parsed
// set. This is a replace, not an append: whatever was attached before is
// gone afterwards.
//
// Every line is validated before anything is written, so a malformed line
// anywhere in the text fails the whole call with ErrValidation and leaves
// the recipe untouched. Parsed entries are embedded-only snapshots with
// fresh IDs; they are not inserted into the ingredient catalog.
func (s *Store) ParseIngredients(ctx context.Context, requestedBy, recipeID, text string) (models.Recipe, error) {
	parsed, err := parseIngredientLines(text)
	if err != nil {
		return models.Recipe{}, err
	}

	return s.mutate(ctx, requestedBy, recipeID, func(rec *models.Recipe) (bool, error) {
		rec.Ingredients = parsed
		return true, nil
	})
}

// parseIngredientLines converts the mini-format into ingredient records.
// Lines are split on newlines (CR tolerated), blank lines are skipped,
// and each remaining line must hold exactly three comma-separated fields:
// a non-negative numeric quantity, a unit (may be empty), and a non-empty
// name. Names are lowercased the same way the catalog lowercases them.
func parseIngredientLines(text string) ([]models.Ingredient, error) {
	now := time.Now().UTC()
	out := []models.Ingredient{}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected quantity,unit,name but got %d field(s): %w", i+1, len(fields), models.ErrValidation)
		}

		quantityText := strings.TrimSpace(fields[0])
		unit := strings.TrimSpace(fields[1])
		name := models.NormalizeIngredientName(fields[2])

		quantity, err := strconv.ParseFloat(quantityText, 64)
		if err != nil || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
			return nil, fmt.Errorf("line %d: quantity %q is not a number: %w", i+1, quantityText, models.ErrValidation)
		}
		if quantity < 0 {
			return nil, fmt.Errorf("line %d: quantity must not be negative: %w", i+1, models.ErrValidation)
		}
		if name == "" {
			return nil, fmt.Errorf("line %d: ingredient name must not be empty: %w", i+1, models.ErrValidation)
		}

		out = append(out, models.Ingredient{
			ID:        uuid.NewString(),
			Name:      name,
			Quantity:  quantity,
			Unit:      unit,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return out, nil
}
