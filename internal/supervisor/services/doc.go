// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

/*
Package services provides suture.Service wrappers for Culinarium components.

This package adapts application components to the suture v4 supervision
model, translating their native lifecycle patterns (ListenAndServe, blocking
Run, periodic tick loops) into suture's context-aware Serve pattern.

# Overview

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The wrappers handle:
  - Lifecycle translation into the Serve pattern
  - Graceful shutdown via context cancellation
  - Error propagation for supervisor restart decisions
  - Service identification via fmt.Stringer

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Badger Maintenance (BadgerGCService):
  - Runs periodic value log garbage collection on the shared database
  - Publishes database size and per-store record count gauges
  - Parks for in-memory instances, which have no value log

Event Router (EventRouterService):
  - Wraps the Watermill router that dispatches recipe lifecycle events
  - Run already honors context cancellation; the wrapper maps its return
    value onto suture restart semantics

# Error Handling

Return values determine supervisor behavior:

	nil       -> service stopped cleanly, no restart
	error     -> service crashed, supervisor restarts it
	ctx.Err() -> shutdown requested, normal termination

# Service Identification

All services implement fmt.Stringer, which suture uses in log messages:

	INFO http-server: starting
	INFO event-router: stopped
	ERROR badger-gc: restarting after failure

# Testing

HTTPServerService and EventRouterService take small interfaces instead of
concrete types, so tests drive them with scripted doubles. BadgerGCService
is tested against a real Badger instance in a temp directory.

# See Also

  - internal/supervisor: SupervisorTree that manages these services
  - github.com/thejerf/suture/v4: Underlying supervision library
*/
package services
