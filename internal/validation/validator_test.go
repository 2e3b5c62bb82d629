// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

// recipeRequest mirrors the shape of API recipe creation requests
type recipeRequest struct {
	Title       string `validate:"required,min=1,max=200"`
	Link        string `validate:"omitempty,url"`
	Description string `validate:"max=10000"`
	Image       string `validate:"omitempty,url"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input recipeRequest
	}{
		{
			name: "all fields",
			input: recipeRequest{
				Title:       "Spaghetti Carbonara",
				Link:        "https://example.com/carbonara",
				Description: "Roman classic with guanciale and pecorino.",
				Image:       "https://example.com/carbonara.jpg",
			},
		},
		{
			name: "link only",
			input: recipeRequest{
				Title: "Shakshuka",
				Link:  "https://example.com/shakshuka",
			},
		},
		{
			name: "description only",
			input: recipeRequest{
				Title:       "Family stew",
				Description: "Simmer everything for three hours.",
			},
		},
		{
			name: "single character title",
			input: recipeRequest{
				Title:       "A",
				Description: "x",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     recipeRequest
		wantField string
		wantTag   string
	}{
		{
			name: "missing required title",
			input: recipeRequest{
				Title: "",
				Link:  "https://example.com/r",
			},
			wantField: "Title",
			wantTag:   "required",
		},
		{
			name: "title too long",
			input: recipeRequest{
				Title: strings.Repeat("x", 201),
				Link:  "https://example.com/r",
			},
			wantField: "Title",
			wantTag:   "max",
		},
		{
			name: "malformed link",
			input: recipeRequest{
				Title: "Pancakes",
				Link:  "not a url",
			},
			wantField: "Link",
			wantTag:   "url",
		},
		{
			name: "malformed image url",
			input: recipeRequest{
				Title: "Pancakes",
				Link:  "https://example.com/r",
				Image: "::::",
			},
			wantField: "Image",
			wantTag:   "url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			errs := err.Errors()
			if len(errs) == 0 {
				t.Fatal("ValidationErrors should contain at least one error")
			}

			found := false
			for _, e := range errs {
				if e.Field() == tt.wantField && e.Tag() == tt.wantTag {
					found = true
					break
				}
			}

			if !found {
				t.Errorf("Expected error on field %s with tag %s, got: %v", tt.wantField, tt.wantTag, errs)
			}
		})
	}
}

// ===================================================================================================
// ToAPIError Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	input := recipeRequest{
		Title: "", // required field missing
		Link:  "https://example.com/r",
	}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}

	if apiErr.Message != "Title is required" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Title is required")
	}

	if apiErr.Details == nil {
		t.Fatal("Expected details to be set")
	}
	if apiErr.Details["field"] != "Title" {
		t.Errorf("Details[field] = %v, want Title", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	input := recipeRequest{
		Title: "",          // required field missing
		Link:  "not a url", // malformed
	}

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}

	if apiErr.Details == nil {
		t.Fatal("Expected details to contain field information")
	}

	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("Expected details to contain 'fields' key")
	}

	// Combined message lists every failed field
	if !strings.Contains(apiErr.Message, "Title") || !strings.Contains(apiErr.Message, "Link") {
		t.Errorf("Message %q should reference both failed fields", apiErr.Message)
	}
}

// ===================================================================================================
// UUID Validation Tests
// ===================================================================================================

type attachRequest struct {
	IngredientID string `validate:"required,uuid4"`
}

func TestUUIDValidation_Valid(t *testing.T) {
	input := attachRequest{IngredientID: "7f9c24e5-2f3a-4b3e-9f6a-8d2c1e5b7a90"}
	if err := ValidateStruct(&input); err != nil {
		t.Errorf("ValidateStruct() returned unexpected error: %v", err)
	}
}

func TestUUIDValidation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"not a uuid", "ingredient-42"},
		{"truncated", "7f9c24e5-2f3a-4b3e"},
		{"wrong version", "7f9c24e5-2f3a-1b3e-9f6a-8d2c1e5b7a90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := attachRequest{IngredientID: tt.id}
			if err := ValidateStruct(&input); err == nil {
				t.Errorf("ValidateStruct() should have returned error for id %q", tt.id)
			}
		})
	}
}

// ===================================================================================================
// Numeric Range Validation Tests
// ===================================================================================================

type scaleRequest struct {
	Factor   float64 `validate:"gt=0"`
	Quantity float64 `validate:"omitempty,gt=0"`
}

func TestRangeValidation_Valid(t *testing.T) {
	tests := []struct {
		name     string
		factor   float64
		quantity float64
	}{
		{"unit factor", 1.0, 0},
		{"fractional factor", 0.5, 2},
		{"large factor", 12, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := scaleRequest{Factor: tt.factor, Quantity: tt.quantity}
			if err := ValidateStruct(&input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestRangeValidation_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
	}{
		{"zero factor", 0},
		{"negative factor", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := scaleRequest{Factor: tt.factor}
			err := ValidateStruct(&input)
			if err == nil {
				t.Fatalf("ValidateStruct() should have returned error for factor %v", tt.factor)
			}

			errs := err.Errors()
			if len(errs) != 1 || errs[0].Field() != "Factor" || errs[0].Tag() != "gt" {
				t.Errorf("expected single gt error on Factor, got %v", errs)
			}
		})
	}
}

// ===================================================================================================
// Oneof Validation Tests
// ===================================================================================================

type unitStruct struct {
	Unit string `validate:"omitempty,oneof=g kg ml l tsp tbsp cup piece"`
}

func TestOneofValidation_Valid(t *testing.T) {
	tests := []struct {
		name string
		unit string
	}{
		{"empty", ""},
		{"grams", "g"},
		{"cups", "cup"},
		{"pieces", "piece"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := unitStruct{Unit: tt.unit}
			if err := ValidateStruct(&input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error for unit %q: %v", tt.unit, err)
			}
		})
	}
}

func TestOneofValidation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		unit string
	}{
		{"unknown unit", "handful"},
		{"partial match", "gx"},
		{"case sensitive", "G"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := unitStruct{Unit: tt.unit}
			if err := ValidateStruct(&input); err == nil {
				t.Errorf("ValidateStruct() should have returned error for unit %q", tt.unit)
			}
		})
	}
}

// ===================================================================================================
// WithRequiredStructEnabled Tests
// ===================================================================================================

type nestedStruct struct {
	Inner innerStruct `validate:"required"`
}

type innerStruct struct {
	Value string `validate:"required"`
}

func TestNestedStructValidation(t *testing.T) {
	valid := nestedStruct{
		Inner: innerStruct{Value: "test"},
	}

	if err := ValidateStruct(&valid); err != nil {
		t.Errorf("ValidateStruct() returned unexpected error for valid nested struct: %v", err)
	}

	invalid := nestedStruct{
		Inner: innerStruct{Value: ""},
	}

	if err := ValidateStruct(&invalid); err == nil {
		t.Error("ValidateStruct() should have returned error for invalid nested struct")
	}
}

// ===================================================================================================
// Error Message Translation Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantMsg string
	}{
		{
			name:    "required",
			input:   &recipeRequest{Title: "", Description: "x"},
			wantMsg: "Title is required",
		},
		{
			name:    "url",
			input:   &recipeRequest{Title: "Pancakes", Link: "not a url"},
			wantMsg: "Link must be a valid URL",
		},
		{
			name:    "uuid4",
			input:   &attachRequest{IngredientID: "nope"},
			wantMsg: "IngredientID must be a valid UUID",
		},
		{
			name:    "gt with param",
			input:   &scaleRequest{Factor: 0},
			wantMsg: "Factor must be greater than 0",
		},
		{
			name:    "max on string",
			input:   &recipeRequest{Title: strings.Repeat("x", 201), Description: "x"},
			wantMsg: "Title must be at most 200 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
