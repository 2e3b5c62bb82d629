// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

// Package logging provides centralized zerolog-based structured logging for Culinarium.
//
// This package implements a unified logging layer using zerolog, providing
// zero-allocation structured JSON logging for production and human-readable
// console output for development.
//
// # Overview
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output format for production (machine-parseable)
//   - Console output format for development (human-readable)
//   - Context-aware logging with request ID and user ID propagation
//   - slog adapter for Suture v4 integration
//
// # Quick Start
//
//	import "github.com/tomtom215/culinarium/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Caller: false,
//	})
//
//	// Log messages with structured fields
//	logging.Info().Str("owner", "alice").Msg("Recipe created")
//	logging.Error().Err(err).Int("code", 500).Msg("Request failed")
//
//	// Context-aware logging
//	logging.Ctx(ctx).Info().Str("recipe_id", id).Msg("Processing")
//
// # Configuration
//
// Logging is configured through the application config (CULINARIUM_LOGGING_LEVEL,
// CULINARIUM_LOGGING_FORMAT environment variables) or programmatically:
//
//	logging.Init(logging.Config{
//	    Level:     "debug",    // trace, debug, info, warn, error, fatal
//	    Format:    "console",  // json or console
//	    Caller:    true,       // Include caller info
//	    Timestamp: true,       // Include timestamps
//	    Output:    os.Stderr,  // Output writer
//	})
//
// # Structured Logging Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Use structured fields instead of string formatting:
//
//	// Good - structured, searchable, efficient
//	logging.Info().
//	    Str("owner", owner).
//	    Int("count", recipeCount).
//	    Dur("elapsed", duration).
//	    Msg("Recipes indexed")
//
//	// Avoid - unstructured, harder to parse
//	logging.Info().Msgf("Indexed %d recipes for %s in %v", recipeCount, owner, duration)
//
// # Component Loggers
//
// Create component-specific loggers with default fields:
//
//	eventsLogger := logging.WithComponent("events")
//	eventsLogger.Info().Msg("Router started")
//	eventsLogger.Error().Err(err).Msg("Handler failed")
//
// # Context-Aware Logging
//
// The API middleware stores the request ID and acting user in the request
// context. Handlers and stores log through the context to carry those fields:
//
//	logger := logging.Ctx(ctx)
//	logger.Info().Msg("Processing request")
//	// Output: {"level":"info","request_id":"...","user_id":"alice","message":"Processing request"}
//
// # slog Adapter
//
// The package provides an slog adapter for libraries that require slog.Logger:
//
//	slogLogger := logging.NewSlogLogger()
//	// Use slogLogger with Suture or other slog-compatible libraries
//
// # Output Formats
//
// JSON Format (Production):
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","message":"Server starting","port":8080}
//
// Console Format (Development):
//
//	10:30:00 INF Server starting port=8080
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger
// is protected by sync.RWMutex for configuration changes.
//
// # Testing
//
// Create test loggers that capture output:
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Msg("test message")
//	output := buf.String()
//
// # See Also
//
//   - github.com/rs/zerolog: Underlying logging library
//   - internal/api: Request ID middleware that populates logging context
package logging
