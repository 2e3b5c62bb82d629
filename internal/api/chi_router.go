// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/culinarium/internal/middleware"
)

// Router assembles the HTTP route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router around the given handler. A nil middleware
// factory falls back to the secure defaults (no CORS origins, 100
// requests per minute per IP).
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
	}
}

// SetupChi configures all HTTP routes using the Chi router.
//
// Handlers read URL parameters with r.PathValue, which Chi v5.1+
// populates natively after route matching; tests can call handlers
// directly after req.SetPathValue without a routing context.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware stack, applied to all routes in order.
	r.Use(middleware.RequestID)        // X-Request-ID header + logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(middleware.RequestLogger)    // Structured request log per response
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// Envelope-consistent fallbacks so clients never see Chi's plain
	// text responses.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodBlocked, "Method not allowed", nil)
	})

	// Health and metrics endpoints with permissive rate limiting:
	// monitoring probes frequently but must not be an abuse vector.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitHealth))
		r.Get("/health", router.handler.Health)
		r.Get("/ready", router.handler.Ready)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	})

	// Versioned API. Mutating routes additionally require the
	// X-User-ID principal via RequireUser.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chimiddleware.Timeout(60 * time.Second))
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.handler.perfMon.Middleware)
		r.Use(middleware.Compression)

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", router.handler.ListIngredients)

			r.Group(func(r chi.Router) {
				r.Use(RequireUser)
				r.Post("/", router.handler.CreateIngredient)
				r.Patch("/{id}", router.handler.UpdateIngredient)
				r.Delete("/{id}", router.handler.DeleteIngredient)
			})
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", router.handler.ListRecipes)
			r.Get("/{id}", router.handler.GetRecipe)
			r.Get("/{id}/ingredients", router.handler.RecipeIngredients)

			r.Group(func(r chi.Router) {
				r.Use(RequireUser)
				r.Post("/", router.handler.CreateRecipe)
				r.Delete("/{id}", router.handler.DeleteRecipe)
				r.Post("/{id}/copy", router.handler.CopyRecipe)

				r.Post("/{id}/ingredients", router.handler.AttachIngredient)
				r.Put("/{id}/ingredients", router.handler.ReplaceIngredients)
				r.Delete("/{id}/ingredients/{ingredientID}", router.handler.DetachIngredient)

				r.Put("/{id}/link", router.handler.SetRecipeLink)
				r.Delete("/{id}/link", router.handler.RemoveRecipeLink)
				r.Put("/{id}/description", router.handler.SetRecipeDescription)
				r.Delete("/{id}/description", router.handler.RemoveRecipeDescription)
				r.Put("/{id}/image", router.handler.SetRecipeImage)
				r.Delete("/{id}/image", router.handler.RemoveRecipeImage)
				r.Put("/{id}/copyflag", router.handler.SetRecipeCopyFlag)
			})
		})

		r.Get("/search/recipes", router.handler.SearchRecipes)
	})

	return r
}
