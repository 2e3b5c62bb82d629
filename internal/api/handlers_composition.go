// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/culinarium/internal/logging"
	"github.com/tomtom215/culinarium/internal/metrics"
	"github.com/tomtom215/culinarium/internal/models"
)

// This file contains the per-recipe composition endpoints: the embedded
// ingredient list and the optional link/description/image/copy-flag
// fields. All mutations are owner-gated by the store and answer with the
// full updated recipe, so clients never need a follow-up GET.

// AttachIngredient handles POST /api/v1/recipes/{id}/ingredients.
//
// Copies the referenced catalog ingredient into the recipe. Attaching an
// identifier that is already embedded is a no-op, not an error.
func (h *Handler) AttachIngredient(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	var req models.AttachIngredientRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	rec, err := h.recipes.AddIngredient(r.Context(), user, id, req.IngredientID)
	metrics.RecordStoreOperation("recipes", "attach_ingredient", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	logging.Ctx(r.Context()).Debug().
		Str("recipe_id", id).
		Str("ingredient_id", req.IngredientID).
		Msg("Ingredient attached")

	respondData(w, http.StatusOK, rec, start)
}

// DetachIngredient handles DELETE /api/v1/recipes/{id}/ingredients/{ingredientID}.
//
// Detaching an identifier that is not embedded is a 404.
func (h *Handler) DetachIngredient(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	ingredientID := r.PathValue("ingredientID")

	start := time.Now()
	rec, err := h.recipes.RemoveIngredient(r.Context(), user, id, ingredientID)
	metrics.RecordStoreOperation("recipes", "detach_ingredient", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	respondData(w, http.StatusOK, rec, start)
}

// ReplaceIngredients handles PUT /api/v1/recipes/{id}/ingredients.
//
// Parses newline-delimited "quantity,unit,name" text and atomically
// replaces the recipe's ingredient list with the parsed entries. Any
// malformed line rejects the whole request and leaves the recipe
// unchanged.
func (h *Handler) ReplaceIngredients(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	var req models.ParseIngredientsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	rec, err := h.recipes.ParseIngredients(r.Context(), user, id, req.Text)
	metrics.RecordStoreOperation("recipes", "parse_ingredients", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	logging.Ctx(r.Context()).Debug().
		Str("recipe_id", id).
		Int("ingredients", len(rec.Ingredients)).
		Msg("Ingredient list replaced from text")

	respondData(w, http.StatusOK, rec, start)
}

// RecipeIngredients handles GET /api/v1/recipes/{id}/ingredients.
//
// Returns the embedded ingredient list with every quantity multiplied by
// ?scale= (default 1). Scaling is a read-side view; the stored recipe is
// never modified. A non-positive or non-finite factor is a 400.
func (h *Handler) RecipeIngredients(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	id := r.PathValue("id")

	scale := 1.0
	if v := r.URL.Query().Get("scale"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrCodeValidation, "scale must be a number", err)
			return
		}
		scale = parsed
	}

	start := time.Now()
	ingredients, err := h.recipes.ScaleIngredients(r.Context(), id, scale)
	metrics.RecordStoreOperation("recipes", "scale_ingredients", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, ingredients, start)
}

// SetRecipeLink handles PUT /api/v1/recipes/{id}/link.
func (h *Handler) SetRecipeLink(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	var req models.SetLinkRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	rec, err := h.recipes.SetLink(r.Context(), user, id, req.Link)
	metrics.RecordStoreOperation("recipes", "set_link", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	respondData(w, http.StatusOK, rec, start)
}

// RemoveRecipeLink handles DELETE /api/v1/recipes/{id}/link.
//
// Removing the link while the description is empty would leave the
// recipe without either slot and is a 422; the recipe stays as it was.
func (h *Handler) RemoveRecipeLink(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	start := time.Now()
	rec, err := h.recipes.RemoveLink(r.Context(), user, id)
	metrics.RecordStoreOperation("recipes", "remove_link", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	respondData(w, http.StatusOK, rec, start)
}

// SetRecipeDescription handles PUT /api/v1/recipes/{id}/description.
func (h *Handler) SetRecipeDescription(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	var req models.SetDescriptionRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	rec, err := h.recipes.SetDescription(r.Context(), user, id, req.Description)
	metrics.RecordStoreOperation("recipes", "set_description", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	respondData(w, http.StatusOK, rec, start)
}

// RemoveRecipeDescription handles DELETE /api/v1/recipes/{id}/description.
//
// Subject to the same two-slot rule as RemoveRecipeLink: 422 when the
// link is also empty.
func (h *Handler) RemoveRecipeDescription(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	start := time.Now()
	rec, err := h.recipes.RemoveDescription(r.Context(), user, id)
	metrics.RecordStoreOperation("recipes", "remove_description", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	respondData(w, http.StatusOK, rec, start)
}

// SetRecipeImage handles PUT /api/v1/recipes/{id}/image.
func (h *Handler) SetRecipeImage(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	var req models.SetImageRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	rec, err := h.recipes.SetImage(r.Context(), user, id, req.Image)
	metrics.RecordStoreOperation("recipes", "set_image", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	respondData(w, http.StatusOK, rec, start)
}

// RemoveRecipeImage handles DELETE /api/v1/recipes/{id}/image.
// The image slot is optional, so clearing it never violates an
// invariant; clearing an already-empty slot is a no-op.
func (h *Handler) RemoveRecipeImage(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	start := time.Now()
	rec, err := h.recipes.DeleteImage(r.Context(), user, id)
	metrics.RecordStoreOperation("recipes", "delete_image", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	respondData(w, http.StatusOK, rec, start)
}

// SetRecipeCopyFlag handles PUT /api/v1/recipes/{id}/copyflag.
//
// Sets the IsCopy marker to the exact boolean in the body. The field is
// a pointer in the request type so a missing value is a 400 rather than
// silently defaulting to false.
func (h *Handler) SetRecipeCopyFlag(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	var req models.SetCopyFlagRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	rec, err := h.recipes.SetCopyFlag(r.Context(), user, id, *req.IsCopy)
	metrics.RecordStoreOperation("recipes", "set_copyflag", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	respondData(w, http.StatusOK, rec, start)
}
