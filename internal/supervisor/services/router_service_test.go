// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/culinarium/internal/events"
)

// The wrapper must accept the concrete router from the events package.
var _ EventRouter = (*events.Router)(nil)

// mockRouter is a test double for the EventRouter interface.
type mockRouter struct {
	runErr  error
	block   bool
	started chan struct{}
}

func newMockRouter() *mockRouter {
	return &mockRouter{started: make(chan struct{}, 1)}
}

func (m *mockRouter) Run(ctx context.Context) error {
	select {
	case m.started <- struct{}{}:
	default:
	}

	if m.runErr != nil {
		return m.runErr
	}
	if m.block {
		<-ctx.Done()
	}
	return nil
}

func TestEventRouterService_Interface(t *testing.T) {
	var _ suture.Service = (*EventRouterService)(nil)
}

func TestNewEventRouterService(t *testing.T) {
	router := newMockRouter()
	svc := NewEventRouterService(router)

	if svc == nil {
		t.Fatal("NewEventRouterService returned nil")
	}
	if svc.router != router {
		t.Error("router not assigned correctly")
	}
	if svc.String() != "event-router" {
		t.Errorf("expected name %q, got %q", "event-router", svc.String())
	}
}

func TestEventRouterService_Serve(t *testing.T) {
	t.Run("returns context error after graceful shutdown", func(t *testing.T) {
		router := newMockRouter()
		router.block = true
		svc := NewEventRouterService(router)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		select {
		case <-router.started:
		case <-time.After(time.Second):
			t.Fatal("router never started")
		}
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Serve did not return after cancel")
		}
	})

	t.Run("propagates router failure", func(t *testing.T) {
		router := newMockRouter()
		router.runErr = errors.New("subscriber closed")
		svc := NewEventRouterService(router)

		err := svc.Serve(context.Background())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "event router failed") {
			t.Errorf("unexpected error: %v", err)
		}
		if !strings.Contains(err.Error(), "subscriber closed") {
			t.Errorf("cause not wrapped: %v", err)
		}
	})

	t.Run("external close is a clean stop", func(t *testing.T) {
		// Run returning nil with a live context means the router was
		// closed deliberately elsewhere. No restart wanted.
		router := newMockRouter()
		svc := NewEventRouterService(router)

		if err := svc.Serve(context.Background()); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}
