// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/culinarium/internal/logging"
	"github.com/tomtom215/culinarium/internal/metrics"
)

// RecipeDeletedHandler processes recipe deletion events.
// Returning an error triggers the router's retry logic; wrap unrecoverable
// errors with NewPermanentError so operators can tell them apart in the DLQ.
type RecipeDeletedHandler func(ctx context.Context, event *RecipeDeleted) error

// RegisterRecipeDeletedHandler wires a typed handler into the router.
// The wrapper deserializes the payload, records handler metrics, and maps
// malformed payloads to permanent errors.
//
// This is the integration point for consumers that react to recipe removal,
// such as purging the recipe's items from shopping lists.
func RegisterRecipeDeletedHandler(
	r *Router,
	name string,
	subscriber message.Subscriber,
	fn RecipeDeletedHandler,
) *message.Handler {
	return r.AddConsumerHandler(name, TopicRecipeDeleted, subscriber, func(msg *message.Message) error {
		start := time.Now()

		var event RecipeDeleted
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			metrics.RecordEventParseFailed()
			return NewPermanentError("parse recipe.deleted payload", err)
		}
		event.EnsureSchemaVersion()

		ctx := context.Background()
		if msgCtx := msg.Context(); msgCtx != nil {
			ctx = msgCtx
		}

		err := fn(ctx, &event)
		metrics.RecordEventHandled(name, time.Since(start), err)
		if err != nil {
			return fmt.Errorf("handle %s: %w", TopicRecipeDeleted, err)
		}
		return nil
	})
}

// NewDeletionLogger returns the consumer Culinarium registers by default.
// It records every deletion in the structured log so the cascade path is
// exercised even with no external subscribers attached.
func NewDeletionLogger() RecipeDeletedHandler {
	log := logging.WithComponent("events")
	return func(_ context.Context, event *RecipeDeleted) error {
		log.Info().
			Str("event_id", event.EventID).
			Str("recipe_id", event.RecipeID).
			Str("owner", event.Owner).
			Str("title", event.Title).
			Bool("was_copy", event.WasCopy).
			Time("occurred_at", event.OccurredAt).
			Msg("recipe deleted")
		return nil
	}
}
