// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

// Package events provides the in-process recipe event bus built on Watermill.
//
// Recipe deletion has side effects beyond the recipe store: other parts of a
// kitchen system (shopping lists, meal plans) hold references to recipes and
// need to drop them when the recipe disappears. This package decouples those
// consumers from the delete path. The API layer publishes a RecipeDeleted
// event after a successful delete; subscribers react asynchronously.
//
// # Architecture
//
//	┌──────────────┐  publish   ┌─────────────────┐  subscribe  ┌────────────────────┐
//	│  API delete  │ ─────────► │  gochannel Bus   │ ──────────► │  Router + handlers │
//	│   handler    │            │ (recipe.deleted) │             │  (cascade cleanup) │
//	└──────────────┘            └─────────────────┘             └────────────────────┘
//	                                                                      │ failures
//	                                                                      ▼
//	                                                               dlq.recipes
//
// Transport is Watermill's gochannel Pub/Sub: the bus lives entirely inside
// the process, with no broker dependency. Handlers run under a Watermill
// Router configured with panic recovery, exponential backoff retry, and a
// poison queue topic for messages that exhaust their retries.
//
// # Key Components
//
//   - RecipeDeleted: versioned event payload with Validate()
//   - Serializer: JSON encoding/decoding (validates before marshal)
//   - Bus: gochannel publisher/subscriber with PublishRecipeDeleted
//   - Router: Watermill router with Recoverer, Retry, and PoisonQueue middleware
//   - RegisterRecipeDeletedHandler: typed handler registration with metrics
//
// # Usage Example
//
//	bus := events.NewBus(events.DefaultBusConfig(), nil)
//	defer bus.Close()
//
//	router, err := events.NewRouter(nil, bus.Publisher(), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	events.RegisterRecipeDeletedHandler(router, "deletion_logger",
//	    bus.Subscriber(), events.NewDeletionLogger())
//
//	<-router.RunAsync(ctx)
//
//	// After a successful core delete:
//	event := events.NewRecipeDeleted(deleted)
//	if err := bus.PublishRecipeDeleted(ctx, event); err != nil {
//	    logging.Err(err).Msg("publish recipe.deleted")
//	}
//
// # Delivery Semantics
//
// gochannel is at-most-once across process restarts (nothing is persisted)
// and at-least-once within a running process (handler errors are retried).
// Handlers must therefore tolerate redelivery; the deletion cascade is
// naturally idempotent since removing an already-removed reference is a
// no-op for consumers.
//
// # Shutdown
//
// The Router runs as a supervised service; cancellation of its run context
// stops message processing, and Close() waits up to CloseTimeout for
// in-flight handlers.
package events
