// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"errors"
	"net/http"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/culinarium/internal/models"
)

// version is reported by the health endpoint.
const version = "1.0.0"

// pingStore verifies the badger instance answers a read. A key miss is a
// healthy answer; only a failing transaction counts as down.
func (h *Handler) pingStore() bool {
	if h.db == nil {
		return false
	}
	err := h.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte("!ping"))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	return err == nil
}

// Health handles health check requests.
//
// Reports overall status plus store connectivity, event router state, and
// record counts. Status is "degraded" rather than an error code when the
// store is unreachable; monitoring distinguishes liveness (this endpoint
// answering) from readiness (/ready).
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	dbConnected := h.pingStore()
	routerRunning := h.router != nil && h.router.IsRunning()

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	var recipeCount, ingredientCount int
	if dbConnected {
		if h.recipes != nil {
			if n, err := h.recipes.Count(r.Context()); err == nil {
				recipeCount = n
			}
		}
		if h.catalog != nil {
			if n, err := h.catalog.Count(r.Context()); err == nil {
				ingredientCount = n
			}
		}
	}

	health := models.HealthStatus{
		Status:             status,
		Version:            version,
		DatabaseConnected:  dbConnected,
		EventRouterRunning: routerRunning,
		RecipeCount:        recipeCount,
		IngredientCount:    ingredientCount,
		Uptime:             time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Ready handles readiness probe requests (Kubernetes-style).
// Returns 200 only when the store answers; 503 otherwise, so a load
// balancer stops routing before requests start failing.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	dbConnected := h.pingStore()

	statusCode := http.StatusOK
	status := "ready"
	if !dbConnected {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"database_connected": dbConnected,
			"ready_to_serve":     dbConnected,
			"uptime":             time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
