// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/culinarium/internal/models"
)

// mutate runs an owner-gated read-modify-write on one recipe inside a
// single transaction: resolve (ErrNotFound), check ownership
// (ErrNotAuthorized), apply. When apply reports no change the stored
// record is left untouched, which is how the idempotent no-op operations
// avoid spurious writes.
func (s *Store) mutate(ctx context.Context, requestedBy, id string, apply func(rec *models.Recipe) (bool, error)) (models.Recipe, error) {
	var out models.Recipe

	err := s.update(ctx, func(txn *badger.Txn) error {
		rec, err := getRecipeTxn(txn, id)
		if err != nil {
			return err
		}
		if rec.Owner != requestedBy {
			return fmt.Errorf("recipe %q: %w", id, models.ErrNotAuthorized)
		}

		changed, err := apply(&rec)
		if err != nil {
			return err
		}
		out = rec
		if !changed {
			return nil
		}

		rec.UpdatedAt = time.Now().UTC()
		out = rec

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal recipe: %w", err)
		}
		return txn.Set(recipeKey(id), data)
	})
	if err != nil {
		return models.Recipe{}, err
	}

	return out, nil
}

// AddIngredient embeds a value copy of the catalog ingredient into the
// recipe. Attaching an ingredient that is already embedded (by ID) is an
// idempotent no-op success. An unknown ingredient ID is ErrNotFound,
// reported only after the recipe resolution and owner checks pass.
func (s *Store) AddIngredient(ctx context.Context, requestedBy, recipeID, ingredientID string) (models.Recipe, error) {
	// Resolved up front so the recipe transaction stays single-store; the
	// copy is the catalog record as of just before the write, which is
	// within the staleness the concurrency model allows.
	ing, ingErr := s.ingredients.Get(ctx, ingredientID)

	return s.mutate(ctx, requestedBy, recipeID, func(rec *models.Recipe) (bool, error) {
		if rec.HasIngredient(ingredientID) {
			return false, nil
		}
		if ingErr != nil {
			return false, ingErr
		}
		rec.Ingredients = append(rec.Ingredients, ing)
		return true, nil
	})
}

// RemoveIngredient detaches the embedded ingredient with the given ID.
// The check is against the recipe's embedded list, not the catalog: an
// ingredient that exists in the catalog but was never attached is still
// ErrNotFound here.
func (s *Store) RemoveIngredient(ctx context.Context, requestedBy, recipeID, ingredientID string) (models.Recipe, error) {
	return s.mutate(ctx, requestedBy, recipeID, func(rec *models.Recipe) (bool, error) {
		for i := range rec.Ingredients {
			if rec.Ingredients[i].ID == ingredientID {
				rec.Ingredients = append(rec.Ingredients[:i], rec.Ingredients[i+1:]...)
				return true, nil
			}
		}
		return false, fmt.Errorf("ingredient %q is not attached to recipe %q: %w", ingredientID, recipeID, models.ErrNotFound)
	})
}

// SetLink sets the recipe link. The link must be a well-formed http(s)
// URL; blanking is RemoveLink's job, so an empty link is ErrValidation.
func (s *Store) SetLink(ctx context.Context, requestedBy, recipeID, link string) (models.Recipe, error) {
	if link == "" {
		return models.Recipe{}, fmt.Errorf("link must not be empty: %w", models.ErrValidation)
	}
	if err := validateLink(link); err != nil {
		return models.Recipe{}, err
	}

	return s.mutate(ctx, requestedBy, recipeID, func(rec *models.Recipe) (bool, error) {
		if rec.Link == link {
			return false, nil
		}
		rec.Link = link
		return true, nil
	})
}

// RemoveLink clears the recipe link. Rejected with ErrInvariant when the
// description is empty: a recipe must always keep at least one of link
// and description.
func (s *Store) RemoveLink(ctx context.Context, requestedBy, recipeID string) (models.Recipe, error) {
	return s.mutate(ctx, requestedBy, recipeID, func(rec *models.Recipe) (bool, error) {
		if rec.Description == "" {
			return false, fmt.Errorf("cannot remove link: no description present: %w", models.ErrInvariant)
		}
		if rec.Link == "" {
			return false, nil
		}
		rec.Link = ""
		return true, nil
	})
}

// SetDescription sets the recipe description. Blanking is
// RemoveDescription's job, so an empty description is ErrValidation.
func (s *Store) SetDescription(ctx context.Context, requestedBy, recipeID, description string) (models.Recipe, error) {
	if description == "" {
		return models.Recipe{}, fmt.Errorf("description must not be empty: %w", models.ErrValidation)
	}

	return s.mutate(ctx, requestedBy, recipeID, func(rec *models.Recipe) (bool, error) {
		if rec.Description == description {
			return false, nil
		}
		rec.Description = description
		return true, nil
	})
}

// RemoveDescription clears the recipe description. Rejected with
// ErrInvariant when the link is empty.
func (s *Store) RemoveDescription(ctx context.Context, requestedBy, recipeID string) (models.Recipe, error) {
	return s.mutate(ctx, requestedBy, recipeID, func(rec *models.Recipe) (bool, error) {
		if rec.Link == "" {
			return false, fmt.Errorf("cannot remove description: no link present: %w", models.ErrInvariant)
		}
		if rec.Description == "" {
			return false, nil
		}
		rec.Description = ""
		return true, nil
	})
}

// SetImage sets the recipe image reference.
func (s *Store) SetImage(ctx context.Context, requestedBy, recipeID, image string) (models.Recipe, error) {
	if image == "" {
		return models.Recipe{}, fmt.Errorf("image must not be empty: %w", models.ErrValidation)
	}

	return s.mutate(ctx, requestedBy, recipeID, func(rec *models.Recipe) (bool, error) {
		if rec.Image == image {
			return false, nil
		}
		rec.Image = image
		return true, nil
	})
}

// DeleteImage clears the recipe image. Clearing an already-absent image
// is a no-op success.
func (s *Store) DeleteImage(ctx context.Context, requestedBy, recipeID string) (models.Recipe, error) {
	return s.mutate(ctx, requestedBy, recipeID, func(rec *models.Recipe) (bool, error) {
		if rec.Image == "" {
			return false, nil
		}
		rec.Image = ""
		return true, nil
	})
}

// SetCopyFlag sets the IsCopy flag. Owner-gated but otherwise
// unconditional.
func (s *Store) SetCopyFlag(ctx context.Context, requestedBy, recipeID string, isCopy bool) (models.Recipe, error) {
	return s.mutate(ctx, requestedBy, recipeID, func(rec *models.Recipe) (bool, error) {
		if rec.IsCopy == isCopy {
			return false, nil
		}
		rec.IsCopy = isCopy
		return true, nil
	})
}

// Copy clones the source recipe for requestedBy. Ownership of the source
// is deliberately not required; any caller who can name a recipe may copy
// it. The clone gets a fresh ID, requestedBy as owner, a deep-copied
// ingredient list, and IsCopy set; the source is marked IsCopy in the
// same transaction, so either both records change or neither does. The
// copier hitting their own (owner, title) uniqueness constraint is
// ErrConflict.
func (s *Store) Copy(ctx context.Context, requestedBy, sourceID string) (models.Recipe, error) {
	if strings.TrimSpace(requestedBy) == "" {
		return models.Recipe{}, fmt.Errorf("recipe owner must not be empty: %w", models.ErrValidation)
	}

	var clone models.Recipe

	err := s.update(ctx, func(txn *badger.Txn) error {
		src, err := getRecipeTxn(txn, sourceID)
		if err != nil {
			return err
		}

		tKey := titleKey(requestedBy, src.Title)
		if _, err := txn.Get(tKey); err == nil {
			return fmt.Errorf("recipe %q already exists for this user: %w", src.Title, models.ErrConflict)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check title: %w", err)
		}

		now := time.Now().UTC()

		clone = src.Clone()
		clone.ID = uuid.NewString()
		clone.Owner = requestedBy
		clone.IsCopy = true
		clone.CreatedAt = now
		clone.UpdatedAt = now

		src.IsCopy = true
		src.UpdatedAt = now

		cloneData, err := json.Marshal(clone)
		if err != nil {
			return fmt.Errorf("marshal clone: %w", err)
		}
		srcData, err := json.Marshal(src)
		if err != nil {
			return fmt.Errorf("marshal source: %w", err)
		}

		if err := txn.Set(recipeKey(clone.ID), cloneData); err != nil {
			return fmt.Errorf("set clone: %w", err)
		}
		if err := txn.Set(tKey, []byte(clone.ID)); err != nil {
			return fmt.Errorf("set title index: %w", err)
		}
		if err := txn.Set(ownerKey(requestedBy, clone.ID), []byte(clone.ID)); err != nil {
			return fmt.Errorf("set owner index: %w", err)
		}
		if err := txn.Set(recipeKey(src.ID), srcData); err != nil {
			return fmt.Errorf("set source: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Recipe{}, err
	}

	return clone, nil
}
