// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/culinarium/internal/catalog"
	"github.com/tomtom215/culinarium/internal/models"
)

// attachNamed creates catalog entries for the given names and attaches
// them all to the recipe.
func attachNamed(t *testing.T, store *Store, cat *catalog.Store, owner, recipeID string, names ...string) {
	t.Helper()
	ctx := context.Background()
	for _, name := range names {
		ing, err := cat.Create(ctx, name, 1, "piece")
		if err != nil {
			t.Fatalf("catalog Create(%q) returned unexpected error: %v", name, err)
		}
		if _, err := store.AddIngredient(ctx, owner, recipeID, ing.ID); err != nil {
			t.Fatalf("AddIngredient(%q) returned unexpected error: %v", name, err)
		}
	}
}

func TestFindByIngredients_Ranking(t *testing.T) {
	store, cat := newTestStores(t)
	ctx := context.Background()

	breakfast := mustCreateRecipe(t, store, "alice", "Full Breakfast", "", "fry everything")
	attachNamed(t, store, cat, "alice", breakfast.ID, "eggs", "bacon", "toast")

	omelette := mustCreateRecipe(t, store, "alice", "Omelette", "", "whisk")
	attachNamed(t, store, cat, "alice", omelette.ID, "eggs")

	salad := mustCreateRecipe(t, store, "alice", "Salad", "", "toss")
	attachNamed(t, store, cat, "alice", salad.ID, "lettuce")

	got, err := store.FindByIngredients(ctx, []string{"eggs", "bacon"})
	if err != nil {
		t.Fatalf("FindByIngredients() returned unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(got))
	}
	if got[0].ID != breakfast.ID {
		t.Errorf("Expected the two-ingredient match first, got %q", got[0].Title)
	}
	if got[1].ID != omelette.ID {
		t.Errorf("Expected the one-ingredient match second, got %q", got[1].Title)
	}
}

func TestFindByIngredients_CaseInsensitive(t *testing.T) {
	store, cat := newTestStores(t)
	ctx := context.Background()

	rec := mustCreateRecipe(t, store, "alice", "Omelette", "", "whisk")
	attachNamed(t, store, cat, "alice", rec.ID, "Eggs")

	got, err := store.FindByIngredients(ctx, []string{"  EGGS  "})
	if err != nil {
		t.Fatalf("FindByIngredients() returned unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(got))
	}
	if got[0].ID != rec.ID {
		t.Errorf("Expected %q, got %q", rec.Title, got[0].Title)
	}
}

func TestFindByIngredients_NoOverlapExcluded(t *testing.T) {
	store, cat := newTestStores(t)
	ctx := context.Background()

	rec := mustCreateRecipe(t, store, "alice", "Salad", "", "toss")
	attachNamed(t, store, cat, "alice", rec.ID, "lettuce")

	got, err := store.FindByIngredients(ctx, []string{"eggs"})
	if err != nil {
		t.Fatalf("FindByIngredients() returned unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no results, got %d", len(got))
	}
}

func TestFindByIngredients_EmptySet(t *testing.T) {
	store, _ := newTestStores(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		names []string
	}{
		{"nil slice", nil},
		{"empty slice", []string{}},
		{"whitespace only", []string{"   ", "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.FindByIngredients(ctx, tt.names); !errors.Is(err, models.ErrValidation) {
				t.Errorf("FindByIngredients(%v) error = %v, want ErrValidation", tt.names, err)
			}
		})
	}
}

func TestSearch_TitleSubstring(t *testing.T) {
	store, _ := newTestStores(t)
	ctx := context.Background()

	cake := mustCreateRecipe(t, store, "alice", "Chocolate Cake", "", "bake")
	mustCreateRecipe(t, store, "alice", "Pancakes", "", "flip")
	mustCreateRecipe(t, store, "bob", "Carrot Cake", "", "grate")

	got, err := store.Search(ctx, "CAKE")
	if err != nil {
		t.Fatalf("Search() returned unexpected error: %v", err)
	}
	// "Cake" appears in all three titles, across owners.
	if len(got) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(got))
	}

	got, err = store.Search(ctx, "chocolate")
	if err != nil {
		t.Fatalf("Search() returned unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != cake.ID {
		t.Errorf("Expected only %q, got %d results", cake.Title, len(got))
	}

	if _, err := store.Search(ctx, "   "); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Search() blank title error = %v, want ErrValidation", err)
	}
}

func TestFindByIngredientsWithin(t *testing.T) {
	store, cat := newTestStores(t)
	ctx := context.Background()

	inScope := mustCreateRecipe(t, store, "alice", "Omelette", "", "whisk")
	attachNamed(t, store, cat, "alice", inScope.ID, "eggs")

	outOfScope := mustCreateRecipe(t, store, "alice", "Scramble", "", "stir")
	attachNamed(t, store, cat, "alice", outOfScope.ID, "eggs")

	// Scope limits the pool; duplicates and unknown IDs are tolerated.
	got, err := store.FindByIngredientsWithin(ctx, []string{"eggs"},
		[]string{inScope.ID, inScope.ID, "no-such-recipe"})
	if err != nil {
		t.Fatalf("FindByIngredientsWithin() returned unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(got))
	}
	if got[0].ID != inScope.ID {
		t.Errorf("Expected %q, got %q", inScope.Title, got[0].Title)
	}
}

func TestFindByIngredientsWithin_EmptyScope(t *testing.T) {
	store, cat := newTestStores(t)
	ctx := context.Background()

	rec := mustCreateRecipe(t, store, "alice", "Omelette", "", "whisk")
	attachNamed(t, store, cat, "alice", rec.ID, "eggs")

	// An empty candidate list is a valid query with an empty answer.
	got, err := store.FindByIngredientsWithin(ctx, []string{"eggs"}, []string{})
	if err != nil {
		t.Fatalf("FindByIngredientsWithin() returned unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty result for empty scope, got %d", len(got))
	}

	// The name set is still validated first.
	if _, err := store.FindByIngredientsWithin(ctx, nil, []string{}); !errors.Is(err, models.ErrValidation) {
		t.Errorf("FindByIngredientsWithin() empty names error = %v, want ErrValidation", err)
	}
}

func TestSearchWithin(t *testing.T) {
	store, _ := newTestStores(t)
	ctx := context.Background()

	mustCreateRecipe(t, store, "alice", "Chocolate Cake", "", "bake")
	second := mustCreateRecipe(t, store, "bob", "Carrot Cake", "", "grate")

	got, err := store.SearchWithin(ctx, "cake", []string{second.ID})
	if err != nil {
		t.Fatalf("SearchWithin() returned unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != second.ID {
		t.Errorf("Expected only the scoped recipe, got %d results", len(got))
	}

	got, err = store.SearchWithin(ctx, "cake", []string{})
	if err != nil {
		t.Fatalf("SearchWithin() returned unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty result for empty scope, got %d", len(got))
	}
}

func TestFilterByIngredientsAndTitle(t *testing.T) {
	store, cat := newTestStores(t)
	ctx := context.Background()

	eggCake := mustCreateRecipe(t, store, "alice", "Sponge Cake", "", "bake")
	attachNamed(t, store, cat, "alice", eggCake.ID, "eggs", "flour")

	eggToast := mustCreateRecipe(t, store, "alice", "French Toast", "", "soak")
	attachNamed(t, store, cat, "alice", eggToast.ID, "eggs")

	plainCake := mustCreateRecipe(t, store, "alice", "Plain Cake", "", "bake")
	attachNamed(t, store, cat, "alice", plainCake.ID, "flour")

	// Both predicates must hold.
	got, err := store.FilterByIngredientsAndTitle(ctx, []string{"eggs"}, "cake")
	if err != nil {
		t.Fatalf("FilterByIngredientsAndTitle() returned unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != eggCake.ID {
		t.Fatalf("Expected only %q, got %d results", eggCake.Title, len(got))
	}

	// Ranking still applies when both predicates are set.
	got, err = store.FilterByIngredientsAndTitle(ctx, []string{"eggs", "flour"}, "cake")
	if err != nil {
		t.Fatalf("FilterByIngredientsAndTitle() returned unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(got))
	}
	if got[0].ID != eggCake.ID {
		t.Errorf("Expected the two-ingredient match first, got %q", got[0].Title)
	}

	// Each predicate is validated independently.
	if _, err := store.FilterByIngredientsAndTitle(ctx, nil, "cake"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Empty name set error = %v, want ErrValidation", err)
	}
	if _, err := store.FilterByIngredientsAndTitle(ctx, []string{"eggs"}, " "); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Blank title error = %v, want ErrValidation", err)
	}
}

func TestFilterByIngredientsAndTitleWithin(t *testing.T) {
	store, cat := newTestStores(t)
	ctx := context.Background()

	inScope := mustCreateRecipe(t, store, "alice", "Sponge Cake", "", "bake")
	attachNamed(t, store, cat, "alice", inScope.ID, "eggs")

	outOfScope := mustCreateRecipe(t, store, "alice", "Carrot Cake", "", "grate")
	attachNamed(t, store, cat, "alice", outOfScope.ID, "eggs")

	got, err := store.FilterByIngredientsAndTitleWithin(ctx, []string{"eggs"}, "cake", []string{inScope.ID})
	if err != nil {
		t.Fatalf("FilterByIngredientsAndTitleWithin() returned unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != inScope.ID {
		t.Errorf("Expected only the scoped recipe, got %d results", len(got))
	}
}

func TestMatchCount_DuplicateEmbeddedNames(t *testing.T) {
	rec := models.Recipe{
		Ingredients: []models.Ingredient{
			{ID: "a", Name: "egg"},
			{ID: "b", Name: "egg"},
			{ID: "c", Name: "flour"},
		},
	}
	names := map[string]struct{}{"egg": {}}

	// Each embedded entry counts once, even under a shared name.
	if got := matchCount(rec, names); got != 2 {
		t.Errorf("matchCount() = %d, want 2", got)
	}
}
