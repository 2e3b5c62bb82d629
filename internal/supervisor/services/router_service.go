// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package services

import (
	"context"
	"fmt"
)

// EventRouter matches the lifecycle surface of events.Router.
// Run blocks until the context is canceled or the router is closed.
type EventRouter interface {
	Run(ctx context.Context) error
}

// EventRouterService wraps the Watermill event router as a supervised
// service.
//
// Run already honors context cancellation and drains in-flight messages on
// shutdown, so the wrapper only has to translate its return value into
// suture semantics: a router error requests a restart, while a nil return
// after cancellation is a clean stop.
//
// A Watermill router cannot be restarted once closed. If the router keeps
// failing after restarts, the supervisor's backoff takes over.
type EventRouterService struct {
	router EventRouter
	name   string
}

// NewEventRouterService creates a supervised wrapper around router.
func NewEventRouterService(router EventRouter) *EventRouterService {
	return &EventRouterService{
		router: router,
		name:   "event-router",
	}
}

// Serve implements suture.Service.
func (s *EventRouterService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.router.Run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("event router failed: %w", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// Run returned nil while the context is still live: the router
		// was closed externally. Treat it as a clean stop.
		return nil

	case <-ctx.Done():
		// Run observes the context and closes the router itself; wait
		// for it to finish draining before reporting shutdown.
		if err := <-errCh; err != nil {
			return fmt.Errorf("event router shutdown failed: %w", err)
		}
		return ctx.Err()
	}
}

// String implements fmt.Stringer for suture log messages.
func (s *EventRouterService) String() string {
	return s.name
}
