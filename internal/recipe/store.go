// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package recipe

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/culinarium/internal/models"
)

// Key prefixes for BadgerDB storage.
const (
	recipeKeyPrefix      = "recipe:"
	recipeTitleKeyPrefix = "recipe_title:"
	recipeOwnerKeyPrefix = "recipe_owner:"
)

// maxTxnRetries bounds retries of update transactions that abort with
// badger.ErrConflict under snapshot isolation.
const maxTxnRetries = 3

// IngredientSource resolves catalog ingredients for attachment. Satisfied
// by *catalog.Store; injected so the recipe store never reaches into the
// catalog's keyspace and tests can substitute a stub.
type IngredientSource interface {
	Get(ctx context.Context, id string) (models.Ingredient, error)
}

// Store is the BadgerDB-backed recipe store.
type Store struct {
	db          *badger.DB
	ingredients IngredientSource

	// gen increments on every successful write; the search cache keys
	// entries by generation so post-write queries never see stale results.
	gen atomic.Uint64
}

// NewStore creates a recipe store on the given badger instance.
func NewStore(db *badger.DB, ingredients IngredientSource) *Store {
	return &Store{db: db, ingredients: ingredients}
}

// Generation returns a counter that increases on every successful write.
func (s *Store) Generation() uint64 {
	return s.gen.Load()
}

// Create inserts a new recipe owned by owner. At least one of link and
// description must be non-empty, a non-empty link must be a well-formed
// http(s) URL, and (owner, title) must not already be taken.
func (s *Store) Create(ctx context.Context, owner, title, link, description string) (models.Recipe, error) {
	if strings.TrimSpace(owner) == "" {
		return models.Recipe{}, fmt.Errorf("recipe owner must not be empty: %w", models.ErrValidation)
	}
	if strings.TrimSpace(title) == "" {
		return models.Recipe{}, fmt.Errorf("recipe title must not be empty: %w", models.ErrValidation)
	}
	if link == "" && description == "" {
		return models.Recipe{}, fmt.Errorf("recipe needs a link or a description: %w", models.ErrValidation)
	}
	if link != "" {
		if err := validateLink(link); err != nil {
			return models.Recipe{}, err
		}
	}

	now := time.Now().UTC()
	rec := models.Recipe{
		ID:          uuid.NewString(),
		Owner:       owner,
		Title:       title,
		Ingredients: []models.Ingredient{},
		Link:        link,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("marshal recipe: %w", err)
	}

	err = s.update(ctx, func(txn *badger.Txn) error {
		tKey := titleKey(owner, title)
		if _, err := txn.Get(tKey); err == nil {
			return fmt.Errorf("recipe %q already exists for this user: %w", title, models.ErrConflict)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check title: %w", err)
		}

		if err := txn.Set(recipeKey(rec.ID), data); err != nil {
			return fmt.Errorf("set recipe: %w", err)
		}
		if err := txn.Set(tKey, []byte(rec.ID)); err != nil {
			return fmt.Errorf("set title index: %w", err)
		}
		if err := txn.Set(ownerKey(owner, rec.ID), []byte(rec.ID)); err != nil {
			return fmt.Errorf("set owner index: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Recipe{}, err
	}

	return rec, nil
}

// Get retrieves a recipe by ID.
func (s *Store) Get(ctx context.Context, id string) (models.Recipe, error) {
	var rec models.Recipe

	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getRecipeTxn(txn, id)
		return err
	})
	if err != nil {
		return models.Recipe{}, err
	}

	return rec, nil
}

// GetByTitle retrieves the recipe matching the exact (owner, title) pair.
// The match is exact, never a substring; substring search is Search's job.
func (s *Store) GetByTitle(ctx context.Context, owner, title string) (models.Recipe, error) {
	var rec models.Recipe

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(titleKey(owner, title))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("recipe %q for this user: %w", title, models.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("get title index: %w", err)
		}

		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}

		rec, err = getRecipeTxn(txn, id)
		return err
	})
	if err != nil {
		return models.Recipe{}, err
	}

	return rec, nil
}

// ListByOwner returns every recipe owned by owner, in store order.
func (s *Store) ListByOwner(ctx context.Context, owner string) ([]models.Recipe, error) {
	out := []models.Recipe{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(recipeOwnerKeyPrefix + owner + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var id string
			if err := it.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				continue
			}

			rec, err := getRecipeTxn(txn, id)
			if err != nil {
				continue
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	return out, nil
}

// Delete removes a recipe and its index keys. Owner-gated. The deleted
// record is returned so the orchestration layer can publish the deletion
// event that collection holders cascade on; this store knows nothing
// about collections.
func (s *Store) Delete(ctx context.Context, requestedBy, id string) (models.Recipe, error) {
	var rec models.Recipe

	err := s.update(ctx, func(txn *badger.Txn) error {
		var err error
		rec, err = getRecipeTxn(txn, id)
		if err != nil {
			return err
		}
		if rec.Owner != requestedBy {
			return fmt.Errorf("recipe %q: %w", id, models.ErrNotAuthorized)
		}

		if err := txn.Delete(recipeKey(id)); err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		if err := txn.Delete(titleKey(rec.Owner, rec.Title)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete title index: %w", err)
		}
		if err := txn.Delete(ownerKey(rec.Owner, id)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete owner index: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Recipe{}, err
	}

	return rec, nil
}

// Count returns the number of recipes in the store.
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(recipeKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})

	return count, err
}

func recipeKey(id string) []byte {
	return []byte(recipeKeyPrefix + id)
}

// titleKey builds the (owner, title) uniqueness key. The title goes in the
// last segment so embedded separators cannot collide with another owner's
// keyspace; owners are opaque identifiers without ':'.
func titleKey(owner, title string) []byte {
	return []byte(recipeTitleKeyPrefix + owner + ":" + title)
}

func ownerKey(owner, id string) []byte {
	return []byte(recipeOwnerKeyPrefix + owner + ":" + id)
}

// getRecipeTxn loads a recipe inside an open transaction.
func getRecipeTxn(txn *badger.Txn, id string) (models.Recipe, error) {
	var rec models.Recipe

	item, err := txn.Get(recipeKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.Recipe{}, fmt.Errorf("recipe %q: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe: %w", err)
	}

	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	}); err != nil {
		return models.Recipe{}, fmt.Errorf("unmarshal recipe: %w", err)
	}

	return rec, nil
}

// update runs fn inside a read-write transaction, retrying a bounded
// number of times when badger aborts the commit with ErrConflict. The
// write generation is bumped on success.
func (s *Store) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = s.db.Update(fn)
		if err == nil {
			s.gen.Add(1)
			return nil
		}
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("transaction conflict after %d attempts: %w", maxTxnRetries, err)
}

// validateLink checks that link is a well-formed absolute http(s) URL.
func validateLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("malformed link %q: %w", link, models.ErrValidation)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("link %q must be an absolute http(s) URL: %w", link, models.ErrValidation)
	}
	return nil
}
