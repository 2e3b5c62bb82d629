// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/tomtom215/culinarium/internal/models"
)

func TestCreateRecipe(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h.CreateRecipe, http.MethodPost, "/api/v1/recipes", "alice",
		models.CreateRecipeRequest{
			Title:       "Sourdough",
			Link:        "https://example.com/sourdough",
			Description: "slow ferment",
		}, nil)

	env := decodeEnvelope(t, rec, http.StatusCreated)

	var got models.Recipe
	decodeData(t, env, &got)

	if got.ID == "" {
		t.Error("Expected generated recipe ID")
	}
	if got.Owner != "alice" {
		t.Errorf("owner = %q, want alice", got.Owner)
	}
	if got.Title != "Sourdough" {
		t.Errorf("title = %q, want Sourdough", got.Title)
	}
	if got.IsCopy {
		t.Error("fresh recipe must not be flagged as a copy")
	}
	if got.Ingredients == nil {
		t.Error("Expected empty ingredient list, not null")
	}
}

func TestCreateRecipe_RequiresUser(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h.CreateRecipe, http.MethodPost, "/api/v1/recipes", "",
		models.CreateRecipeRequest{Title: "Sourdough", Description: "x"}, nil)

	expectErrorCode(t, rec, http.StatusUnauthorized, ErrCodeUnauthorized)
}

func TestCreateRecipe_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       models.CreateRecipeRequest
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing title",
			body:       models.CreateRecipeRequest{Description: "x"},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeValidation,
		},
		{
			name:       "neither link nor description",
			body:       models.CreateRecipeRequest{Title: "Sourdough"},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeValidation,
		},
		{
			name:       "malformed link",
			body:       models.CreateRecipeRequest{Title: "Sourdough", Link: "not-a-url"},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			rec := doJSON(t, h.CreateRecipe, http.MethodPost, "/api/v1/recipes", "alice", tt.body, nil)
			expectErrorCode(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestCreateRecipe_DuplicateTitle(t *testing.T) {
	h := newTestHandler(t)
	mustCreateRecipe(t, h, "alice", "Sourdough", "", "v1")

	rec := doJSON(t, h.CreateRecipe, http.MethodPost, "/api/v1/recipes", "alice",
		models.CreateRecipeRequest{Title: "Sourdough", Description: "v2"}, nil)
	expectErrorCode(t, rec, http.StatusConflict, ErrCodeDuplicate)

	// Same title under a different owner is fine.
	rec = doJSON(t, h.CreateRecipe, http.MethodPost, "/api/v1/recipes", "bob",
		models.CreateRecipeRequest{Title: "Sourdough", Description: "bob's"}, nil)
	decodeEnvelope(t, rec, http.StatusCreated)
}

func TestListRecipes(t *testing.T) {
	h := newTestHandler(t)

	mustCreateRecipe(t, h, "alice", "Bread", "", "a")
	mustCreateRecipe(t, h, "alice", "Soup", "", "b")
	mustCreateRecipe(t, h, "bob", "Stew", "", "c")

	rec := doJSON(t, h.ListRecipes, http.MethodGet, "/api/v1/recipes?owner=alice", "", nil, nil)
	env := decodeEnvelope(t, rec, http.StatusOK)

	var recs []models.Recipe
	decodeData(t, env, &recs)

	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}
	for _, r := range recs {
		if r.Owner != "alice" {
			t.Errorf("owner = %q, want alice", r.Owner)
		}
	}
}

func TestListRecipes_OwnerRequired(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h.ListRecipes, http.MethodGet, "/api/v1/recipes", "", nil, nil)
	expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeValidation)
}

func TestListRecipes_EmptyOwnerList(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h.ListRecipes, http.MethodGet, "/api/v1/recipes?owner=nobody", "", nil, nil)
	env := decodeEnvelope(t, rec, http.StatusOK)

	var recs []models.Recipe
	decodeData(t, env, &recs)

	if recs == nil {
		t.Error("Expected empty list, not null")
	}
	if len(recs) != 0 {
		t.Errorf("len(recs) = %d, want 0", len(recs))
	}
}

func TestListRecipes_ByTitle(t *testing.T) {
	h := newTestHandler(t)

	seeded := mustCreateRecipe(t, h, "alice", "Bread", "", "a")
	mustCreateRecipe(t, h, "alice", "Soup", "", "b")

	rec := doJSON(t, h.ListRecipes, http.MethodGet, "/api/v1/recipes?owner=alice&title=Bread", "", nil, nil)
	env := decodeEnvelope(t, rec, http.StatusOK)

	var got models.Recipe
	decodeData(t, env, &got)

	if got.ID != seeded.ID {
		t.Errorf("recipe ID = %q, want %q", got.ID, seeded.ID)
	}

	rec = doJSON(t, h.ListRecipes, http.MethodGet, "/api/v1/recipes?owner=alice&title=Cake", "", nil, nil)
	expectErrorCode(t, rec, http.StatusNotFound, ErrCodeNotFound)
}

func TestGetRecipe(t *testing.T) {
	h := newTestHandler(t)
	seeded := mustCreateRecipe(t, h, "alice", "Bread", "https://example.com/bread", "loaf")

	rec := doJSON(t, h.GetRecipe, http.MethodGet, "/api/v1/recipes/"+seeded.ID, "", nil,
		map[string]string{"id": seeded.ID})

	env := decodeEnvelope(t, rec, http.StatusOK)

	var got models.Recipe
	decodeData(t, env, &got)

	if got.ID != seeded.ID {
		t.Errorf("recipe ID = %q, want %q", got.ID, seeded.ID)
	}
	if got.Link != "https://example.com/bread" {
		t.Errorf("link = %q, want seeded link", got.Link)
	}
}

func TestGetRecipe_NotFound(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h.GetRecipe, http.MethodGet, "/api/v1/recipes/missing", "", nil,
		map[string]string{"id": "missing"})
	expectErrorCode(t, rec, http.StatusNotFound, ErrCodeNotFound)
}

func TestDeleteRecipe(t *testing.T) {
	h := newTestHandler(t)
	seeded := mustCreateRecipe(t, h, "alice", "Bread", "", "loaf")

	rec := doJSON(t, h.DeleteRecipe, http.MethodDelete, "/api/v1/recipes/"+seeded.ID, "alice",
		nil, map[string]string{"id": seeded.ID})

	env := decodeEnvelope(t, rec, http.StatusOK)

	var got models.Recipe
	decodeData(t, env, &got)
	if got.ID != seeded.ID {
		t.Errorf("deleted recipe ID = %q, want %q", got.ID, seeded.ID)
	}

	rec = doJSON(t, h.GetRecipe, http.MethodGet, "/api/v1/recipes/"+seeded.ID, "", nil,
		map[string]string{"id": seeded.ID})
	expectErrorCode(t, rec, http.StatusNotFound, ErrCodeNotFound)
}

func TestDeleteRecipe_NotOwner(t *testing.T) {
	h := newTestHandler(t)
	seeded := mustCreateRecipe(t, h, "alice", "Bread", "", "loaf")

	rec := doJSON(t, h.DeleteRecipe, http.MethodDelete, "/api/v1/recipes/"+seeded.ID, "mallory",
		nil, map[string]string{"id": seeded.ID})
	expectErrorCode(t, rec, http.StatusForbidden, ErrCodeNotOwner)

	// Still there.
	rec = doJSON(t, h.GetRecipe, http.MethodGet, "/api/v1/recipes/"+seeded.ID, "", nil,
		map[string]string{"id": seeded.ID})
	decodeEnvelope(t, rec, http.StatusOK)
}

func TestDeleteRecipe_TitleFreedForReuse(t *testing.T) {
	h := newTestHandler(t)
	seeded := mustCreateRecipe(t, h, "alice", "Bread", "", "v1")

	rec := doJSON(t, h.DeleteRecipe, http.MethodDelete, "/api/v1/recipes/"+seeded.ID, "alice",
		nil, map[string]string{"id": seeded.ID})
	decodeEnvelope(t, rec, http.StatusOK)

	rec = doJSON(t, h.CreateRecipe, http.MethodPost, "/api/v1/recipes", "alice",
		models.CreateRecipeRequest{Title: "Bread", Description: "v2"}, nil)
	decodeEnvelope(t, rec, http.StatusCreated)
}

func TestCopyRecipe(t *testing.T) {
	h := newTestHandler(t)

	ing := mustCreateIngredient(t, h, "flour", 500, "g")
	source := mustCreateRecipe(t, h, "alice", "Bread", "", "loaf")
	if _, err := h.recipes.AddIngredient(context.Background(), "alice", source.ID, ing.ID); err != nil {
		t.Fatalf("attach ingredient: %v", err)
	}

	rec := doJSON(t, h.CopyRecipe, http.MethodPost, "/api/v1/recipes/"+source.ID+"/copy", "bob",
		nil, map[string]string{"id": source.ID})

	env := decodeEnvelope(t, rec, http.StatusCreated)

	var clone models.Recipe
	decodeData(t, env, &clone)

	if clone.ID == source.ID {
		t.Error("clone must get a fresh ID")
	}
	if clone.Owner != "bob" {
		t.Errorf("clone owner = %q, want bob", clone.Owner)
	}
	if !clone.IsCopy {
		t.Error("clone must be flagged as a copy")
	}
	if len(clone.Ingredients) != 1 {
		t.Errorf("clone ingredient count = %d, want 1", len(clone.Ingredients))
	}

	// The source is marked as copied too.
	got, err := h.recipes.Get(context.Background(), source.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.IsCopy {
		t.Error("source must be flagged after being copied")
	}
}

func TestCopyRecipe_Errors(t *testing.T) {
	h := newTestHandler(t)
	source := mustCreateRecipe(t, h, "alice", "Bread", "", "loaf")
	mustCreateRecipe(t, h, "bob", "Bread", "", "bob's own")

	tests := []struct {
		name       string
		id         string
		user       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown source",
			id:         "missing",
			user:       "bob",
			wantStatus: http.StatusNotFound,
			wantCode:   ErrCodeNotFound,
		},
		{
			name:       "title collision in caller namespace",
			id:         source.ID,
			user:       "bob",
			wantStatus: http.StatusConflict,
			wantCode:   ErrCodeDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h.CopyRecipe, http.MethodPost, "/api/v1/recipes/"+tt.id+"/copy", tt.user,
				nil, map[string]string{"id": tt.id})
			expectErrorCode(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}
