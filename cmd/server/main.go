// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

// Package main is the entry point for the Culinarium server application.
//
// Culinarium is a self-hosted recipe manager. It keeps a catalog of
// ingredients, lets each user build and share recipes composed from that
// catalog, and answers ingredient and title searches ranked by how many of
// the requested ingredients a recipe uses.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from defaults, config file, and
//     environment variables (Koanf v2)
//  2. Storage: Open the shared BadgerDB instance and build the catalog
//     and recipe stores on top of it
//  3. Events: Create the Watermill in-process bus and the router that
//     consumes recipe lifecycle events
//  4. HTTP API: Chi router with request ID, CORS, rate limiting, and
//     Prometheus instrumentation
//  5. Supervision: suture v4 tree with data, messaging, and API layers
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables with the CULINARIUM_ prefix
//   - Config file (config.yaml, or the file named by CULINARIUM_CONFIG)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (shutdown timeout)
//   - Drains the event router
//   - Closes the event bus and database
//
// # Example Usage
//
// Development with an in-memory database:
//
//	export CULINARIUM_DATABASE_IN_MEMORY=true
//	export CULINARIUM_LOGGING_FORMAT=console
//	./culinarium
//
// Production with persistent storage:
//
//	export CULINARIUM_DATABASE_DIR=/data/culinarium
//	export CULINARIUM_API_CORS_ORIGINS=https://recipes.example.com
//	./culinarium
//
// Docker:
//
//	docker run -d \
//	  -v culinarium-data:/data/culinarium \
//	  -p 8080:8080 \
//	  ghcr.io/tomtom215/culinarium
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/culinarium/internal/api"
	"github.com/tomtom215/culinarium/internal/catalog"
	"github.com/tomtom215/culinarium/internal/config"
	"github.com/tomtom215/culinarium/internal/events"
	"github.com/tomtom215/culinarium/internal/logging"
	"github.com/tomtom215/culinarium/internal/recipe"
	"github.com/tomtom215/culinarium/internal/supervisor"
	"github.com/tomtom215/culinarium/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Culinarium with supervisor tree")
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("db_dir", cfg.Database.Dir).
		Bool("in_memory", cfg.Database.InMemory).
		Msg("Configuration loaded")

	// One Badger instance backs both stores; each uses its own key prefixes.
	db, err := openBadger(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	catalogStore := catalog.NewStore(db)
	recipeStore := recipe.NewStore(db, catalogStore)

	// Event bus carries recipe lifecycle events between the API layer and
	// the consumers registered on the router.
	wmLogger := watermill.NewSlogLogger(logging.NewSlogLogger())
	bus := events.NewBus(events.BusConfig{BufferSize: cfg.Events.BufferSize}, wmLogger)
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	eventRouter, err := events.NewRouter(nil, bus.Publisher(), wmLogger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create event router")
	}
	events.RegisterRecipeDeletedHandler(
		eventRouter,
		"recipe-deletion-log",
		bus.Subscriber(),
		events.NewDeletionLogger(),
	)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog wants slog, so bridge zerolog through the adapter
	slogLogger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(catalogStore, recipeStore, bus, eventRouter, db, cfg)
	defer handler.Close()

	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	// Data layer: Badger value log GC and storage gauges
	gcService := services.NewBadgerGCService(db, cfg.Database.GCInterval, cfg.Database.GCDiscardRatio)
	gcService.TrackRecords("recipes", recipeStore)
	gcService.TrackRecords("ingredients", catalogStore)
	tree.AddDataService(gcService)

	// Messaging layer: Watermill event router
	tree.AddMessagingService(services.NewEventRouterService(eventRouter))

	// API layer: HTTP server
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Culinarium stopped gracefully")
}

// openBadger opens the shared Badger instance.
func openBadger(cfg *config.DatabaseConfig) (*badger.DB, error) {
	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	return badger.Open(opts.WithLogger(badgerLogger{logging.WithComponent("badger")}))
}

// badgerLogger adapts zerolog to badger.Logger. Badger's INFO output is
// table-compaction chatter, so it lands at debug level.
type badgerLogger struct {
	log zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(strings.TrimSpace(format), args...)
}
