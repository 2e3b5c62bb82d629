// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

// Package catalog implements the ingredient catalog: a flat, process-wide
// repository of ingredient records created independently of any recipe.
// Recipes attach catalog entries by embedding value copies, so nothing in
// this package ever cascades into the recipe store.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/culinarium/internal/models"
)

// Key prefix for BadgerDB storage. The catalog shares a badger instance
// with the recipe store but no transaction ever spans both prefixes.
const ingredientKeyPrefix = "ingredient:"

// maxTxnRetries bounds retries of update transactions that abort with
// badger.ErrConflict under snapshot isolation.
const maxTxnRetries = 3

// Store is the BadgerDB-backed ingredient catalog.
//
// There is no ownership concept and no uniqueness constraint: duplicate
// entries with identical name/quantity/unit may legitimately coexist
// because recipes copy entries rather than share them.
type Store struct {
	db *badger.DB
}

// NewStore creates a catalog store on the given badger instance.
func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new ingredient. The name is trimmed and lowercased;
// a whitespace-only name or a negative quantity is rejected with
// models.ErrValidation.
func (s *Store) Create(ctx context.Context, name string, quantity float64, unit string) (models.Ingredient, error) {
	normalized := models.NormalizeIngredientName(name)
	if normalized == "" {
		return models.Ingredient{}, fmt.Errorf("ingredient name must not be empty: %w", models.ErrValidation)
	}
	if quantity < 0 {
		return models.Ingredient{}, fmt.Errorf("ingredient quantity must not be negative: %w", models.ErrValidation)
	}

	now := time.Now().UTC()
	ing := models.Ingredient{
		ID:        uuid.NewString(),
		Name:      normalized,
		Quantity:  quantity,
		Unit:      unit,
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(ing)
	if err != nil {
		return models.Ingredient{}, fmt.Errorf("marshal ingredient: %w", err)
	}

	err = s.update(ctx, func(txn *badger.Txn) error {
		return txn.Set([]byte(ingredientKeyPrefix+ing.ID), data)
	})
	if err != nil {
		return models.Ingredient{}, err
	}

	return ing, nil
}

// Get retrieves an ingredient by ID.
func (s *Store) Get(ctx context.Context, id string) (models.Ingredient, error) {
	var ing models.Ingredient

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(ingredientKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("ingredient %q: %w", id, models.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("get ingredient: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &ing)
		})
	})
	if err != nil {
		return models.Ingredient{}, err
	}

	return ing, nil
}

// Edit applies a partial update. An empty newName or newUnit and a nil
// newQuantity leave the corresponding field unchanged; supplying nothing
// is a no-op success. A supplied name is trimmed and lowercased; a
// whitespace-only name counts as omitted rather than as blanking.
func (s *Store) Edit(ctx context.Context, id string, newName string, newQuantity *float64, newUnit string) (models.Ingredient, error) {
	if newQuantity != nil && *newQuantity < 0 {
		return models.Ingredient{}, fmt.Errorf("ingredient quantity must not be negative: %w", models.ErrValidation)
	}

	var ing models.Ingredient

	err := s.update(ctx, func(txn *badger.Txn) error {
		key := []byte(ingredientKeyPrefix + id)
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("ingredient %q: %w", id, models.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("get ingredient: %w", err)
		}

		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &ing)
		}); err != nil {
			return fmt.Errorf("unmarshal ingredient: %w", err)
		}

		changed := false
		if normalized := models.NormalizeIngredientName(newName); normalized != "" {
			ing.Name = normalized
			changed = true
		}
		if newQuantity != nil {
			ing.Quantity = *newQuantity
			changed = true
		}
		if newUnit != "" {
			ing.Unit = newUnit
			changed = true
		}
		if !changed {
			return nil
		}

		ing.UpdatedAt = time.Now().UTC()
		data, err := json.Marshal(ing)
		if err != nil {
			return fmt.Errorf("marshal ingredient: %w", err)
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return models.Ingredient{}, err
	}

	return ing, nil
}

// Delete removes an ingredient by ID. Recipes that embedded a copy are
// untouched; embedded copies are independent of the catalog entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.update(ctx, func(txn *badger.Txn) error {
		key := []byte(ingredientKeyPrefix + id)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("ingredient %q: %w", id, models.ErrNotFound)
		} else if err != nil {
			return fmt.Errorf("get ingredient: %w", err)
		}
		return txn.Delete(key)
	})
}

// List returns every catalog entry in store order.
func (s *Store) List(ctx context.Context) ([]models.Ingredient, error) {
	var out []models.Ingredient

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ingredientKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var ing models.Ingredient
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &ing)
			})
			if err != nil {
				continue
			}
			out = append(out, ing)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}

	if out == nil {
		out = []models.Ingredient{}
	}
	return out, nil
}

// ListByName returns every catalog entry whose stored (lowercased) name
// equals the lowercased query name. Duplicates are expected.
func (s *Store) ListByName(ctx context.Context, name string) ([]models.Ingredient, error) {
	normalized := models.NormalizeIngredientName(name)

	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Ingredient, 0, len(all))
	for _, ing := range all {
		if ing.Name == normalized {
			out = append(out, ing)
		}
	}
	return out, nil
}

// Count returns the number of catalog entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ingredientKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})

	return count, err
}

// update runs fn inside a read-write transaction, retrying a bounded
// number of times when badger aborts the commit with ErrConflict.
func (s *Store) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("transaction conflict after %d attempts: %w", maxTxnRetries, err)
}
