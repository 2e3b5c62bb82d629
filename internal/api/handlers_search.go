// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/culinarium/internal/metrics"
	"github.com/tomtom215/culinarium/internal/models"
)

// Search variant labels. Used as the Prometheus variant label and as the
// cache key namespace, so they must stay stable.
const (
	variantIngredients            = "ingredients"
	variantTitle                  = "title"
	variantIngredientsTitle       = "ingredients_title"
	variantIngredientsWithin      = "ingredients_within"
	variantTitleWithin            = "title_within"
	variantIngredientsTitleWithin = "ingredients_title_within"
)

// searchVariant names the engine variant selected by parameter presence.
func searchVariant(hasIngredients, hasTitle, hasWithin bool) string {
	switch {
	case hasIngredients && hasTitle && hasWithin:
		return variantIngredientsTitleWithin
	case hasIngredients && hasTitle:
		return variantIngredientsTitle
	case hasIngredients && hasWithin:
		return variantIngredientsWithin
	case hasTitle && hasWithin:
		return variantTitleWithin
	case hasIngredients:
		return variantIngredients
	default:
		return variantTitle
	}
}

// searchParams is the cache key payload. Scoped distinguishes "within
// absent" from "within present but empty", which select different
// variants but would otherwise hash identically.
type searchParams struct {
	Names  []string `json:"names,omitempty"`
	Title  string   `json:"title,omitempty"`
	Within []string `json:"within,omitempty"`
	Scoped bool     `json:"scoped,omitempty"`
}

// SearchRecipes handles GET /api/v1/search/recipes.
//
// Dispatches on which of ingredients/title/within are present:
//
//	ingredients=a,b            recipes containing any of the names,
//	                           ranked by how many they contain
//	title=t                    case-insensitive substring match, unranked
//	within=id1,id2             restricts either/both to the given recipes
//
// Presence is checked with url.Values.Has, so "within=" scopes the query
// to an explicit empty set and returns an empty result. At least one of
// ingredients/title is required. Results are capped at the configured
// maximum; Total always reports the uncapped match count.
func (h *Handler) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	hasIngredients := q.Has("ingredients")
	hasTitle := q.Has("title")
	hasWithin := q.Has("within")

	if !hasIngredients && !hasTitle {
		respondError(w, http.StatusBadRequest, ErrCodeValidation,
			"at least one of ingredients or title is required", nil)
		return
	}

	names := parseCommaSeparated(q.Get("ingredients"))
	title := q.Get("title")
	within := parseCommaSeparated(q.Get("within"))

	variant := searchVariant(hasIngredients, hasTitle, hasWithin)
	key := h.cache.Key(variant, searchParams{
		Names:  names,
		Title:  title,
		Within: within,
		Scoped: hasWithin,
	})

	if cached, ok := h.cache.Get(key); ok {
		if resp, isResp := cached.(*models.SearchResponse); isResp {
			respondJSON(w, http.StatusOK, &models.APIResponse{
				Status: "success",
				Data:   resp,
				Metadata: models.Metadata{
					Timestamp: time.Now(),
					Cached:    true,
				},
			})
			return
		}
	}

	start := time.Now()
	recs, err := h.runSearch(r.Context(), variant, names, title, within)
	duration := time.Since(start)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	metrics.RecordSearchQuery(variant, duration, len(recs))

	total := len(recs)
	if limit := h.maxSearchResults(); len(recs) > limit {
		recs = recs[:limit]
	}

	resp := &models.SearchResponse{Recipes: recs, Total: total}
	h.cache.Set(key, resp)

	respondData(w, http.StatusOK, resp, start)
}

// runSearch invokes the store query matching the variant.
func (h *Handler) runSearch(ctx context.Context, variant string, names []string, title string, within []string) ([]models.Recipe, error) {
	switch variant {
	case variantIngredients:
		return h.recipes.FindByIngredients(ctx, names)
	case variantTitle:
		return h.recipes.Search(ctx, title)
	case variantIngredientsTitle:
		return h.recipes.FilterByIngredientsAndTitle(ctx, names, title)
	case variantIngredientsWithin:
		return h.recipes.FindByIngredientsWithin(ctx, names, within)
	case variantTitleWithin:
		return h.recipes.SearchWithin(ctx, title, within)
	default:
		return h.recipes.FilterByIngredientsAndTitleWithin(ctx, names, title, within)
	}
}
