// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package models

// HealthStatus represents the health check response
type HealthStatus struct {
	Status             string  `json:"status"` // "healthy" or "degraded"
	Version            string  `json:"version"`
	DatabaseConnected  bool    `json:"database_connected"`
	EventRouterRunning bool    `json:"event_router_running"`
	RecipeCount        int     `json:"recipe_count"`
	IngredientCount    int     `json:"ingredient_count"`
	Uptime             float64 `json:"uptime_seconds"`
}
