// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/culinarium/internal/metrics"
)

// BusConfig holds configuration for the in-process event bus.
type BusConfig struct {
	// BufferSize is the output channel buffer per subscriber.
	// Publishing blocks once a subscriber's buffer is full.
	BufferSize int64
}

// DefaultBusConfig returns production defaults for the Bus.
func DefaultBusConfig() BusConfig {
	return BusConfig{
		BufferSize: 256,
	}
}

// Bus is the in-process event bus built on Watermill's gochannel Pub/Sub.
// It carries recipe lifecycle events between the API layer and registered
// consumers within a single process. Messages are not persisted; a consumer
// must be subscribed before the publish to receive it.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger watermill.LoggerAdapter

	mu     sync.RWMutex
	closed bool
}

// NewBus creates an in-process event bus.
func NewBus(cfg BusConfig, logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NewStdLogger(false, false)
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBusConfig().BufferSize
	}

	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: cfg.BufferSize,
	}, logger)

	return &Bus{
		pubsub: pubsub,
		logger: logger,
	}
}

// Publish sends a message to the specified topic.
// The message context is set from ctx so handlers can observe cancellation
// and request-scoped values.
func (b *Bus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return fmt.Errorf("bus is closed")
	}
	b.mu.RUnlock()

	msg.SetContext(ctx)

	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	metrics.RecordEventPublished(topic)
	return nil
}

// PublishRecipeDeleted serializes and publishes a recipe deletion event.
// This is a convenience method that handles serialization.
func (b *Bus) PublishRecipeDeleted(ctx context.Context, event *RecipeDeleted) error {
	data, err := SerializeEvent(event)
	if err != nil {
		return fmt.Errorf("serialize event: %w", err)
	}

	msg := message.NewMessage(event.EventID, data)
	msg.Metadata.Set("recipe_id", event.RecipeID)
	msg.Metadata.Set("owner", event.Owner)

	return b.Publish(ctx, event.Topic(), msg)
}

// Subscriber returns the bus as a Watermill Subscriber for router handlers.
func (b *Bus) Subscriber() message.Subscriber {
	return b.pubsub
}

// Publisher returns the bus as a Watermill Publisher.
// This is useful for passing to Watermill components that require
// the native message.Publisher interface (e.g., poison queue middleware).
func (b *Bus) Publisher() message.Publisher {
	return b.pubsub
}

// Close gracefully shuts down the bus. Subsequent publishes fail.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	return b.pubsub.Close()
}
