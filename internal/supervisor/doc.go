// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

/*
Package supervisor provides process supervision for Culinarium using suture v4.

This package implements a hierarchical supervisor tree that manages the
lifecycle of all long-running services in the application. It provides
Erlang/OTP-style supervision with automatic restart, failure isolation,
and graceful shutdown.

# Overview

The supervisor tree organizes services into three layers for failure isolation:

	RootSupervisor ("culinarium")
	├── DataSupervisor ("data-layer")
	│   └── BadgerGCService
	├── MessagingSupervisor ("messaging-layer")
	│   └── EventRouterService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

This hierarchy ensures that:
  - A crash in the event router doesn't affect request handling
  - A failed Badger maintenance pass doesn't impact API availability
  - Each layer restarts independently with its own failure counting

# Key Features

Automatic Restart:
  - Crashed services are automatically restarted
  - Exponential backoff prevents restart storms
  - Configurable failure thresholds and decay rates

Graceful Shutdown:
  - Context cancellation triggers orderly shutdown
  - Configurable shutdown timeout per service
  - UnstoppedServiceReport for debugging hangs

Structured Logging:
  - Integration with slog for structured events
  - Logs service starts, stops, failures, and restarts
  - Event hooks via the sutureslog adapter

# Usage Example

Basic setup in main.go:

	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddDataService(services.NewBadgerGCService(db, gcInterval, gcRatio))
	tree.AddMessagingService(services.NewEventRouterService(router))
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
	    logger.Error("supervisor stopped with error", "error", err)
	}

# Restart Semantics

A service that returns a non-nil error from Serve is restarted. When a
service fails more than FailureThreshold times (with failures decaying at
FailureDecay per second), the owning supervisor waits FailureBackoff before
attempting further restarts. Returning the context's error after
cancellation signals a clean shutdown and suppresses the restart.

# See Also

  - internal/supervisor/services: suture.Service wrappers for app components
  - github.com/thejerf/suture/v4: Underlying supervision library
*/
package supervisor
