// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/culinarium/internal/models"
)

func TestCreateIngredient(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h.CreateIngredient, http.MethodPost, "/api/v1/ingredients", "alice",
		models.CreateIngredientRequest{Name: "  Flour ", Quantity: 500, Unit: "g"}, nil)

	env := decodeEnvelope(t, rec, http.StatusCreated)
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}

	var ing models.Ingredient
	decodeData(t, env, &ing)

	if ing.ID == "" {
		t.Error("Expected generated ingredient ID")
	}
	if ing.Name != "flour" {
		t.Errorf("name = %q, want normalized flour", ing.Name)
	}
	if ing.Quantity != 500 {
		t.Errorf("quantity = %v, want 500", ing.Quantity)
	}
	if ing.Unit != "g" {
		t.Errorf("unit = %q, want g", ing.Unit)
	}
}

func TestCreateIngredient_RequiresUser(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h.CreateIngredient, http.MethodPost, "/api/v1/ingredients", "",
		models.CreateIngredientRequest{Name: "flour"}, nil)

	expectErrorCode(t, rec, http.StatusUnauthorized, ErrCodeUnauthorized)
}

func TestCreateIngredient_Validation(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{
			name: "missing name",
			body: models.CreateIngredientRequest{Quantity: 1, Unit: "g"},
		},
		{
			name: "negative quantity",
			body: models.CreateIngredientRequest{Name: "flour", Quantity: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			rec := doJSON(t, h.CreateIngredient, http.MethodPost, "/api/v1/ingredients", "alice", tt.body, nil)
			expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeValidation)
		})
	}
}

func TestCreateIngredient_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	req := newRawRequest(t, http.MethodPost, "/api/v1/ingredients", "alice", "{not json")
	rec := runHandler(h.CreateIngredient, req)

	expectErrorCode(t, rec, http.StatusBadRequest, ErrCodeValidation)
}

func TestListIngredients(t *testing.T) {
	h := newTestHandler(t)

	mustCreateIngredient(t, h, "flour", 500, "g")
	mustCreateIngredient(t, h, "sugar", 200, "g")
	mustCreateIngredient(t, h, "butter", 100, "g")

	rec := doJSON(t, h.ListIngredients, http.MethodGet, "/api/v1/ingredients", "", nil, nil)
	env := decodeEnvelope(t, rec, http.StatusOK)

	var items []models.Ingredient
	decodeData(t, env, &items)

	if len(items) != 3 {
		t.Errorf("len(items) = %d, want 3", len(items))
	}
}

func TestListIngredients_ByName(t *testing.T) {
	h := newTestHandler(t)

	mustCreateIngredient(t, h, "flour", 500, "g")
	mustCreateIngredient(t, h, "flour", 2, "cups")
	mustCreateIngredient(t, h, "sugar", 200, "g")

	rec := doJSON(t, h.ListIngredients, http.MethodGet, "/api/v1/ingredients?name=Flour", "", nil, nil)
	env := decodeEnvelope(t, rec, http.StatusOK)

	var items []models.Ingredient
	decodeData(t, env, &items)

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2 flour entries", len(items))
	}
	for _, ing := range items {
		if ing.Name != "flour" {
			t.Errorf("filtered name = %q, want flour", ing.Name)
		}
	}
}

func TestListIngredients_Pagination(t *testing.T) {
	h := newTestHandler(t)

	for _, name := range []string{"basil", "cumin", "dill", "fennel", "ginger"} {
		mustCreateIngredient(t, h, name, 1, "tsp")
	}

	tests := []struct {
		name    string
		query   string
		wantLen int
	}{
		{"no paging returns all", "", 5},
		{"limit only", "?limit=2", 2},
		{"limit and offset", "?limit=2&offset=4", 1},
		{"offset past end", "?limit=2&offset=10", 0},
		{"offset alone uses default page size", "?offset=3", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h.ListIngredients, http.MethodGet, "/api/v1/ingredients"+tt.query, "", nil, nil)
			env := decodeEnvelope(t, rec, http.StatusOK)

			var items []models.Ingredient
			decodeData(t, env, &items)

			if len(items) != tt.wantLen {
				t.Errorf("len(items) = %d, want %d", len(items), tt.wantLen)
			}
		})
	}
}

func TestUpdateIngredient(t *testing.T) {
	h := newTestHandler(t)
	seeded := mustCreateIngredient(t, h, "flour", 500, "g")

	quantity := 750.0
	rec := doJSON(t, h.UpdateIngredient, http.MethodPatch, "/api/v1/ingredients/"+seeded.ID, "alice",
		models.UpdateIngredientRequest{Name: "Bread Flour", Quantity: &quantity}, map[string]string{"id": seeded.ID})

	env := decodeEnvelope(t, rec, http.StatusOK)

	var ing models.Ingredient
	decodeData(t, env, &ing)

	if ing.Name != "bread flour" {
		t.Errorf("name = %q, want bread flour", ing.Name)
	}
	if ing.Quantity != 750 {
		t.Errorf("quantity = %v, want 750", ing.Quantity)
	}
	if ing.Unit != "g" {
		t.Errorf("unit = %q, want unchanged g", ing.Unit)
	}
}

func TestUpdateIngredient_EmptyBodyIsNoOp(t *testing.T) {
	h := newTestHandler(t)
	seeded := mustCreateIngredient(t, h, "flour", 500, "g")

	rec := doJSON(t, h.UpdateIngredient, http.MethodPatch, "/api/v1/ingredients/"+seeded.ID, "alice",
		models.UpdateIngredientRequest{}, map[string]string{"id": seeded.ID})

	env := decodeEnvelope(t, rec, http.StatusOK)

	var ing models.Ingredient
	decodeData(t, env, &ing)

	if ing.Name != "flour" || ing.Quantity != 500 || ing.Unit != "g" {
		t.Errorf("no-op edit changed the ingredient: %+v", ing)
	}
}

func TestUpdateIngredient_Errors(t *testing.T) {
	h := newTestHandler(t)
	seeded := mustCreateIngredient(t, h, "flour", 500, "g")

	negative := -1.0
	tests := []struct {
		name       string
		id         string
		body       models.UpdateIngredientRequest
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown id",
			id:         "missing-id",
			body:       models.UpdateIngredientRequest{Name: "salt"},
			wantStatus: http.StatusNotFound,
			wantCode:   ErrCodeNotFound,
		},
		{
			name:       "negative quantity",
			id:         seeded.ID,
			body:       models.UpdateIngredientRequest{Quantity: &negative},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h.UpdateIngredient, http.MethodPatch, "/api/v1/ingredients/"+tt.id, "alice",
				tt.body, map[string]string{"id": tt.id})
			expectErrorCode(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestDeleteIngredient(t *testing.T) {
	h := newTestHandler(t)
	seeded := mustCreateIngredient(t, h, "flour", 500, "g")

	rec := doJSON(t, h.DeleteIngredient, http.MethodDelete, "/api/v1/ingredients/"+seeded.ID, "alice",
		nil, map[string]string{"id": seeded.ID})

	env := decodeEnvelope(t, rec, http.StatusOK)

	var result map[string]interface{}
	decodeData(t, env, &result)

	if result["deleted"] != true {
		t.Errorf("deleted = %v, want true", result["deleted"])
	}
	if result["id"] != seeded.ID {
		t.Errorf("id = %v, want %q", result["id"], seeded.ID)
	}

	rec = doJSON(t, h.DeleteIngredient, http.MethodDelete, "/api/v1/ingredients/"+seeded.ID, "alice",
		nil, map[string]string{"id": seeded.ID})
	expectErrorCode(t, rec, http.StatusNotFound, ErrCodeNotFound)
}

func TestDeleteIngredient_KeepsRecipeSnapshot(t *testing.T) {
	h := newTestHandler(t)

	seeded := mustCreateIngredient(t, h, "flour", 500, "g")
	recipe := mustCreateRecipe(t, h, "alice", "Bread", "", "basic loaf")
	if _, err := h.recipes.AddIngredient(context.Background(), "alice", recipe.ID, seeded.ID); err != nil {
		t.Fatalf("attach ingredient: %v", err)
	}

	rec := doJSON(t, h.DeleteIngredient, http.MethodDelete, "/api/v1/ingredients/"+seeded.ID, "alice",
		nil, map[string]string{"id": seeded.ID})
	decodeEnvelope(t, rec, http.StatusOK)

	got, err := h.recipes.Get(context.Background(), recipe.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Ingredients) != 1 {
		t.Fatalf("recipe ingredient count = %d, want snapshot kept", len(got.Ingredients))
	}
	if !strings.EqualFold(got.Ingredients[0].Name, "flour") {
		t.Errorf("snapshot name = %q, want flour", got.Ingredients[0].Name)
	}
}
