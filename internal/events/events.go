// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/culinarium/internal/models"
)

// SchemaVersion is the current event schema version.
// Increment this when making breaking changes to RecipeDeleted.
const SchemaVersion = 1

// Topic constants for the in-process bus.
const (
	// TopicRecipeDeleted carries recipe deletion notifications.
	TopicRecipeDeleted = "recipe.deleted"
	// TopicPoisonQueue receives messages that failed all retries.
	TopicPoisonQueue = "dlq.recipes"
)

// RecipeDeleted is published after a recipe has been removed from the store.
// Subscribers use it to clean up references to the recipe elsewhere, for
// example removing its items from shopping lists.
//
// Schema versioning:
//   - SchemaVersion tracks the event format version
//   - Consumers should handle older schema versions for backward compatibility
//   - Version 1: Initial schema
type RecipeDeleted struct {
	// Schema version for forward/backward compatibility
	SchemaVersion int `json:"schema_version,omitempty"`

	// Identification
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`

	// Deleted recipe
	RecipeID string `json:"recipe_id"`
	Owner    string `json:"owner"`
	Title    string `json:"title"`
	WasCopy  bool   `json:"was_copy,omitempty"`
}

// NewRecipeDeleted creates a deletion event for the given recipe with a
// unique ID, timestamp, and schema version.
func NewRecipeDeleted(rec models.Recipe) *RecipeDeleted {
	return &RecipeDeleted{
		SchemaVersion: SchemaVersion,
		EventID:       uuid.New().String(),
		OccurredAt:    time.Now().UTC(),
		RecipeID:      rec.ID,
		Owner:         rec.Owner,
		Title:         rec.Title,
		WasCopy:       rec.IsCopy,
	}
}

// GetSchemaVersion returns the schema version, defaulting to 1 for legacy events.
func (e *RecipeDeleted) GetSchemaVersion() int {
	if e.SchemaVersion == 0 {
		return 1
	}
	return e.SchemaVersion
}

// EnsureSchemaVersion sets the schema version if not already set.
// Call this when processing events that may not have a version set.
func (e *RecipeDeleted) EnsureSchemaVersion() {
	if e.SchemaVersion == 0 {
		e.SchemaVersion = SchemaVersion
	}
}

// Validate checks required fields and returns an error if validation fails.
func (e *RecipeDeleted) Validate() error {
	if e.EventID == "" {
		return &ValidationError{Field: "event_id", Message: "required"}
	}
	if e.RecipeID == "" {
		return &ValidationError{Field: "recipe_id", Message: "required"}
	}
	if e.Owner == "" {
		return &ValidationError{Field: "owner", Message: "required"}
	}
	if e.Title == "" {
		return &ValidationError{Field: "title", Message: "required"}
	}
	return nil
}

// Topic returns the bus topic for this event.
func (e *RecipeDeleted) Topic() string {
	return TopicRecipeDeleted
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
