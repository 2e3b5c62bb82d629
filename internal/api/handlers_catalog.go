// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/culinarium/internal/logging"
	"github.com/tomtom215/culinarium/internal/metrics"
	"github.com/tomtom215/culinarium/internal/models"
)

// CreateIngredient handles POST /api/v1/ingredients.
//
// Creates a catalog ingredient from a JSON body. The name is normalized
// by the store; several entries may share one name (say, flour in grams
// and flour in cups), which is what ListByName is for.
func (h *Handler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if _, ok := requestUser(w, r); !ok {
		return
	}

	var req models.CreateIngredientRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	ing, err := h.catalog.Create(r.Context(), req.Name, req.Quantity, req.Unit)
	metrics.RecordStoreOperation("ingredients", "create", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	logging.Ctx(r.Context()).Debug().
		Str("ingredient_id", ing.ID).
		Str("name", sanitizeLogValue(ing.Name)).
		Msg("Ingredient created")

	respondData(w, http.StatusCreated, ing, start)
}

// ListIngredients handles GET /api/v1/ingredients.
//
// Without parameters the full catalog is returned in normalized-name
// order. ?name= filters to exact normalized-name matches. limit/offset
// window the result when present.
func (h *Handler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	start := time.Now()

	var (
		items []models.Ingredient
		err   error
		op    = "list"
	)
	if r.URL.Query().Has("name") {
		op = "list_by_name"
		items, err = h.catalog.ListByName(r.Context(), r.URL.Query().Get("name"))
	} else {
		items, err = h.catalog.List(r.Context())
	}
	metrics.RecordStoreOperation("ingredients", op, time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	if limit, offset, paged := h.pageParams(r); paged {
		items = pageSlice(items, limit, offset)
	}

	respondData(w, http.StatusOK, items, start)
}

// UpdateIngredient handles PATCH /api/v1/ingredients/{id}.
//
// Partial edit: absent fields keep their values, so a body of {} is a
// valid no-op. The edit touches only the catalog row; ingredient copies
// already embedded in recipes are snapshots and stay as they were.
func (h *Handler) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPatch) {
		return
	}
	if _, ok := requestUser(w, r); !ok {
		return
	}

	id := r.PathValue("id")

	var req models.UpdateIngredientRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	start := time.Now()
	ing, err := h.catalog.Edit(r.Context(), id, req.Name, req.Quantity, req.Unit)
	metrics.RecordStoreOperation("ingredients", "edit", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	respondData(w, http.StatusOK, ing, start)
}

// DeleteIngredient handles DELETE /api/v1/ingredients/{id}.
//
// Removes the catalog entry. Recipes keep their embedded copies; only
// future attaches lose this ingredient as a source.
func (h *Handler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}
	if _, ok := requestUser(w, r); !ok {
		return
	}

	id := r.PathValue("id")

	start := time.Now()
	err := h.catalog.Delete(r.Context(), id)
	metrics.RecordStoreOperation("ingredients", "delete", time.Since(start), err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.invalidateSearchCache()
	logging.Ctx(r.Context()).Debug().Str("ingredient_id", id).Msg("Ingredient deleted")

	respondData(w, http.StatusOK, map[string]interface{}{
		"id":      id,
		"deleted": true,
	}, start)
}
