// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/culinarium/internal/events"
	"github.com/tomtom215/culinarium/internal/logging"
	"github.com/tomtom215/culinarium/internal/metrics"
	"github.com/tomtom215/culinarium/internal/models"
)

// CreateRecipe handles POST /api/v1/recipes.
//
// The authenticated principal becomes the owner. The store enforces the
// per-owner title uniqueness (409) and the link-or-description rule
// (400); a malformed link URL is also a 400.
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	owner, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req models.CreateRecipeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	rec, err := h.recipes.Create(r.Context(), owner, req.Title, req.Link, req.Description)
	metrics.RecordStoreOperation("recipes", "create", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	logging.Ctx(r.Context()).Info().
		Str("recipe_id", rec.ID).
		Str("title", sanitizeLogValue(rec.Title)).
		Msg("Recipe created")

	respondData(w, http.StatusCreated, rec, start)
}

// ListRecipes handles GET /api/v1/recipes.
//
// ?owner= lists that user's recipes in store order. Adding &title= turns
// the listing into an exact-title fetch of a single recipe (404 when the
// owner has no recipe under that title). Owner is required; there is no
// cross-owner listing.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	owner := q.Get("owner")
	if owner == "" {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "owner query parameter is required", nil)
		return
	}

	start := time.Now()

	if q.Has("title") {
		rec, err := h.recipes.GetByTitle(r.Context(), owner, q.Get("title"))
		metrics.RecordStoreOperation("recipes", "get_by_title", time.Since(start), err)
		if err != nil {
			respondDomainError(w, r, err)
			return
		}
		respondData(w, http.StatusOK, rec, start)
		return
	}

	recs, err := h.recipes.ListByOwner(r.Context(), owner)
	metrics.RecordStoreOperation("recipes", "list_by_owner", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	if limit, offset, paged := h.pageParams(r); paged {
		recs = pageSlice(recs, limit, offset)
	}

	respondData(w, http.StatusOK, recs, start)
}

// GetRecipe handles GET /api/v1/recipes/{id}.
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	id := r.PathValue("id")

	start := time.Now()
	rec, err := h.recipes.Get(r.Context(), id)
	metrics.RecordStoreOperation("recipes", "get", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, rec, start)
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}.
//
// Owner-gated. On success the response carries the deleted recipe and a
// recipe.deleted event is published for collection cleanup subscribers.
// The delete is durable before the publish; a publish failure is logged
// and does not fail the request.
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	start := time.Now()
	rec, err := h.recipes.Delete(r.Context(), user, id)
	metrics.RecordStoreOperation("recipes", "delete", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()

	if h.bus != nil {
		if err := h.bus.PublishRecipeDeleted(r.Context(), events.NewRecipeDeleted(rec)); err != nil {
			logging.CtxErr(r.Context(), err).
				Str("recipe_id", rec.ID).
				Msg("Failed to publish recipe.deleted")
		}
	}

	logging.Ctx(r.Context()).Info().
		Str("recipe_id", rec.ID).
		Str("title", sanitizeLogValue(rec.Title)).
		Msg("Recipe deleted")

	respondData(w, http.StatusOK, rec, start)
}

// CopyRecipe handles POST /api/v1/recipes/{id}/copy.
//
// Clones the source recipe into the caller's namespace with IsCopy set
// and a fresh identifier. The caller needs no relationship to the source
// owner; a duplicate title in the caller's own namespace is a 409.
func (h *Handler) CopyRecipe(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")

	start := time.Now()
	rec, err := h.recipes.Copy(r.Context(), user, id)
	metrics.RecordStoreOperation("recipes", "copy", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	logging.Ctx(r.Context()).Info().
		Str("recipe_id", rec.ID).
		Str("source_id", id).
		Msg("Recipe copied")

	respondData(w, http.StatusCreated, rec, start)
}
