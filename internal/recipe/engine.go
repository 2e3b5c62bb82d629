// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/culinarium/internal/models"
)

// query parameterizes one engine run: an optional title-substring
// predicate, an optional ingredient-overlap predicate, and an optional
// candidate-ID scope. The six exported variants differ only in which of
// the three are set.
type query struct {
	title    string // lowercased; meaningful only when hasTitle
	hasTitle bool

	names    map[string]struct{} // lowercased target set; only when hasNames
	hasNames bool

	scope  []string // candidate recipe IDs; only when scoped
	scoped bool
}

// FindByIngredients returns every recipe embedding at least one of the
// target ingredient names, ranked by match count descending.
func (s *Store) FindByIngredients(ctx context.Context, names []string) ([]models.Recipe, error) {
	set, err := normalizeNameSet(names)
	if err != nil {
		return nil, err
	}
	return s.runQuery(ctx, query{names: set, hasNames: true})
}

// Search returns every recipe whose title contains the query string,
// case-insensitively. Results carry no ranking and keep store order.
func (s *Store) Search(ctx context.Context, title string) ([]models.Recipe, error) {
	t, err := normalizeTitleQuery(title)
	if err != nil {
		return nil, err
	}
	return s.runQuery(ctx, query{title: t, hasTitle: true})
}

// FindByIngredientsWithin is FindByIngredients restricted to the supplied
// candidate recipe IDs. An empty candidate list yields an empty result,
// not an error; unknown IDs are skipped.
func (s *Store) FindByIngredientsWithin(ctx context.Context, names []string, ids []string) ([]models.Recipe, error) {
	set, err := normalizeNameSet(names)
	if err != nil {
		return nil, err
	}
	return s.runQuery(ctx, query{names: set, hasNames: true, scope: ids, scoped: true})
}

// SearchWithin is Search restricted to the supplied candidate recipe IDs.
func (s *Store) SearchWithin(ctx context.Context, title string, ids []string) ([]models.Recipe, error) {
	t, err := normalizeTitleQuery(title)
	if err != nil {
		return nil, err
	}
	return s.runQuery(ctx, query{title: t, hasTitle: true, scope: ids, scoped: true})
}

// FilterByIngredientsAndTitle returns recipes matching the title
// substring AND embedding at least one target ingredient, ranked by match
// count descending.
func (s *Store) FilterByIngredientsAndTitle(ctx context.Context, names []string, title string) ([]models.Recipe, error) {
	set, err := normalizeNameSet(names)
	if err != nil {
		return nil, err
	}
	t, err := normalizeTitleQuery(title)
	if err != nil {
		return nil, err
	}
	return s.runQuery(ctx, query{title: t, hasTitle: true, names: set, hasNames: true})
}

// FilterByIngredientsAndTitleWithin is FilterByIngredientsAndTitle
// restricted to the supplied candidate recipe IDs.
func (s *Store) FilterByIngredientsAndTitleWithin(ctx context.Context, names []string, title string, ids []string) ([]models.Recipe, error) {
	set, err := normalizeNameSet(names)
	if err != nil {
		return nil, err
	}
	t, err := normalizeTitleQuery(title)
	if err != nil {
		return nil, err
	}
	return s.runQuery(ctx, query{title: t, hasTitle: true, names: set, hasNames: true, scope: ids, scoped: true})
}

// scoredRecipe pairs a candidate with its ingredient match count for the
// ranking sort.
type scoredRecipe struct {
	recipe models.Recipe
	score  int
}

// runQuery scans the candidate scope once, applies the configured
// predicates, and ranks when the ingredient predicate is present.
func (s *Store) runQuery(ctx context.Context, q query) ([]models.Recipe, error) {
	if q.scoped && len(q.scope) == 0 {
		return []models.Recipe{}, nil
	}

	candidates, err := s.loadCandidates(ctx, q)
	if err != nil {
		return nil, err
	}

	matched := make([]scoredRecipe, 0, len(candidates))
	for _, rec := range candidates {
		if q.hasTitle && !strings.Contains(strings.ToLower(rec.Title), q.title) {
			continue
		}

		score := 0
		if q.hasNames {
			score = matchCount(rec, q.names)
			if score == 0 {
				continue
			}
		}

		matched = append(matched, scoredRecipe{recipe: rec, score: score})
	}

	// Stable sort keeps scan order among equal match counts; title-only
	// queries skip ranking entirely.
	if q.hasNames {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].score > matched[j].score
		})
	}

	out := make([]models.Recipe, len(matched))
	for i, m := range matched {
		out[i] = m.recipe
	}
	return out, nil
}

// loadCandidates materializes the candidate pool in one snapshot read:
// either the scoped IDs (deduplicated, unknown IDs skipped) or a full
// prefix scan over the recipe keyspace.
func (s *Store) loadCandidates(ctx context.Context, q query) ([]models.Recipe, error) {
	var out []models.Recipe

	err := s.db.View(func(txn *badger.Txn) error {
		if q.scoped {
			seen := make(map[string]struct{}, len(q.scope))
			for _, id := range q.scope {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}

				rec, err := getRecipeTxn(txn, id)
				if err != nil {
					continue
				}
				out = append(out, rec)
			}
			return nil
		}

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(recipeKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec models.Recipe
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				continue
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	return out, nil
}

// matchCount counts embedded ingredients whose lowercased name is in the
// target set. Each embedded ingredient contributes at most one.
func matchCount(rec models.Recipe, names map[string]struct{}) int {
	count := 0
	for i := range rec.Ingredients {
		if _, ok := names[strings.ToLower(rec.Ingredients[i].Name)]; ok {
			count++
		}
	}
	return count
}

// normalizeNameSet lowercases and trims the target ingredient names into
// a set. An empty input, or one that trims down to nothing, is
// ErrValidation.
func normalizeNameSet(names []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = models.NormalizeIngredientName(n)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("ingredient name set must not be empty: %w", models.ErrValidation)
	}
	return set, nil
}

// normalizeTitleQuery lowercases the title query; a blank query is
// ErrValidation.
func normalizeTitleQuery(title string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return "", fmt.Errorf("search title must not be empty: %w", models.ErrValidation)
	}
	return t, nil
}
