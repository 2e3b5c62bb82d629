// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package events

import (
	"testing"
	"time"

	"github.com/tomtom215/culinarium/internal/models"
)

func TestNewRecipeDeleted(t *testing.T) {
	rec := models.Recipe{
		ID:     "recipe-1",
		Owner:  "alice",
		Title:  "Pancakes",
		IsCopy: true,
	}

	event := NewRecipeDeleted(rec)

	if event.EventID == "" {
		t.Error("Expected EventID to be set")
	}
	if event.SchemaVersion != SchemaVersion {
		t.Errorf("Expected SchemaVersion=%d, got %d", SchemaVersion, event.SchemaVersion)
	}
	if event.RecipeID != "recipe-1" {
		t.Errorf("Expected RecipeID=recipe-1, got %s", event.RecipeID)
	}
	if event.Owner != "alice" {
		t.Errorf("Expected Owner=alice, got %s", event.Owner)
	}
	if event.Title != "Pancakes" {
		t.Errorf("Expected Title=Pancakes, got %s", event.Title)
	}
	if !event.WasCopy {
		t.Error("Expected WasCopy=true")
	}
	if event.OccurredAt.IsZero() {
		t.Error("Expected OccurredAt to be set")
	}
	if event.OccurredAt.Location() != time.UTC {
		t.Error("Expected OccurredAt in UTC")
	}
}

func TestNewRecipeDeleted_UniqueEventIDs(t *testing.T) {
	rec := models.Recipe{ID: "recipe-1", Owner: "alice", Title: "Pancakes"}

	e1 := NewRecipeDeleted(rec)
	e2 := NewRecipeDeleted(rec)

	if e1.EventID == e2.EventID {
		t.Error("Expected unique event IDs for separate events")
	}
}

func TestRecipeDeleted_Validate(t *testing.T) {
	tests := []struct {
		name    string
		event   *RecipeDeleted
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid event",
			event: &RecipeDeleted{
				EventID:  "test-id",
				RecipeID: "recipe-1",
				Owner:    "alice",
				Title:    "Pancakes",
			},
			wantErr: false,
		},
		{
			name: "missing event_id",
			event: &RecipeDeleted{
				RecipeID: "recipe-1",
				Owner:    "alice",
				Title:    "Pancakes",
			},
			wantErr: true,
			errMsg:  "event_id: required",
		},
		{
			name: "missing recipe_id",
			event: &RecipeDeleted{
				EventID: "test-id",
				Owner:   "alice",
				Title:   "Pancakes",
			},
			wantErr: true,
			errMsg:  "recipe_id: required",
		},
		{
			name: "missing owner",
			event: &RecipeDeleted{
				EventID:  "test-id",
				RecipeID: "recipe-1",
				Title:    "Pancakes",
			},
			wantErr: true,
			errMsg:  "owner: required",
		},
		{
			name: "missing title",
			event: &RecipeDeleted{
				EventID:  "test-id",
				RecipeID: "recipe-1",
				Owner:    "alice",
			},
			wantErr: true,
			errMsg:  "title: required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				} else if err.Error() != tt.errMsg {
					t.Errorf("Expected error %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestRecipeDeleted_Topic(t *testing.T) {
	event := &RecipeDeleted{EventID: "id", RecipeID: "r", Owner: "o", Title: "t"}
	if got := event.Topic(); got != TopicRecipeDeleted {
		t.Errorf("Topic() = %q, want %q", got, TopicRecipeDeleted)
	}
}

func TestRecipeDeleted_SchemaVersion(t *testing.T) {
	// Legacy event without explicit version defaults to 1
	legacy := &RecipeDeleted{}
	if got := legacy.GetSchemaVersion(); got != 1 {
		t.Errorf("GetSchemaVersion() = %d, want 1 for legacy event", got)
	}

	legacy.EnsureSchemaVersion()
	if legacy.SchemaVersion != SchemaVersion {
		t.Errorf("EnsureSchemaVersion() set %d, want %d", legacy.SchemaVersion, SchemaVersion)
	}

	// Explicit version is preserved
	versioned := &RecipeDeleted{SchemaVersion: 7}
	versioned.EnsureSchemaVersion()
	if versioned.SchemaVersion != 7 {
		t.Errorf("EnsureSchemaVersion() overwrote explicit version: got %d", versioned.SchemaVersion)
	}
	if got := versioned.GetSchemaVersion(); got != 7 {
		t.Errorf("GetSchemaVersion() = %d, want 7", got)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "owner", Message: "required"}
	if got := err.Error(); got != "owner: required" {
		t.Errorf("Error() = %q, want %q", got, "owner: required")
	}
}
