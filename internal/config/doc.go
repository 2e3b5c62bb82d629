// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

/*
Package config provides centralized configuration management for Culinarium.

Configuration is loaded with Koanf v2 in three layers, each overriding the
one before it:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML config file
 3. Environment variables with the CULINARIUM_ prefix

# Config File

The config file path is taken from CULINARIUM_CONFIG when set, otherwise
the first existing file among:

	config.yaml
	config/config.yaml
	/etc/culinarium/config.yaml

A minimal config.yaml:

	server:
	  port: 8080
	database:
	  dir: /data/culinarium
	logging:
	  level: info
	  format: json

# Environment Variables

Every setting can be overridden through the environment. Variable names
follow the section and field names:

Server (ServerConfig):
  - CULINARIUM_SERVER_HOST: Bind address (default: 0.0.0.0)
  - CULINARIUM_SERVER_PORT: Listen port (default: 8080)
  - CULINARIUM_SERVER_READ_TIMEOUT: Request read timeout (default: 15s)
  - CULINARIUM_SERVER_WRITE_TIMEOUT: Response write timeout (default: 30s)
  - CULINARIUM_SERVER_SHUTDOWN_TIMEOUT: Graceful shutdown deadline (default: 10s)

Database (DatabaseConfig):
  - CULINARIUM_DATABASE_DIR: BadgerDB directory (default: /data/culinarium)
  - CULINARIUM_DATABASE_IN_MEMORY: Run without persistence (default: false)
  - CULINARIUM_DATABASE_GC_INTERVAL: Value log GC interval (default: 5m)
  - CULINARIUM_DATABASE_GC_DISCARD_RATIO: GC discard ratio (default: 0.5)

API (APIConfig):
  - CULINARIUM_API_MAX_SEARCH_RESULTS: Cap on search results (default: 100)
  - CULINARIUM_API_DEFAULT_PAGE_SIZE: Default list page size (default: 20)
  - CULINARIUM_API_CORS_ORIGINS: Comma-separated origins (default: *)

Security (SecurityConfig):
  - CULINARIUM_SECURITY_RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - CULINARIUM_SECURITY_RATE_LIMIT_WINDOW: Window length (default: 1m)
  - CULINARIUM_SECURITY_RATE_LIMIT_DISABLED: Disable rate limiting (default: false)

Cache (CacheConfig):
  - CULINARIUM_CACHE_ENABLED: Enable the search cache (default: true)
  - CULINARIUM_CACHE_TTL: Entry time-to-live (default: 30s)
  - CULINARIUM_CACHE_MAX_ENTRIES: Bound on cached entries (default: 1024)

Events (EventsConfig):
  - CULINARIUM_EVENTS_BUFFER_SIZE: Per-subscriber buffer (default: 256)

Logging (LoggingConfig):
  - CULINARIUM_LOGGING_LEVEL: Minimum level (default: info)
  - CULINARIUM_LOGGING_FORMAT: json or console (default: json)
  - CULINARIUM_LOGGING_CALLER: Include caller file:line (default: false)

Unrecognized CULINARIUM_* variables are ignored rather than mapped, so a
typo cannot silently inject values into unrelated settings.

# Usage Example

	import "github.com/tomtom215/culinarium/internal/config"

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Printf("Starting server on %s\n", cfg.Server.Addr())
	fmt.Printf("Database: %s\n", cfg.Database.Dir)

# Validation

LoadWithKoanf validates the merged configuration before returning:

  - Numeric ranges: CULINARIUM_SERVER_PORT (1-65535), page size and search caps
  - Durations: all timeouts and intervals must be positive
  - CULINARIUM_DATABASE_GC_DISCARD_RATIO must be in (0, 1]
  - Rate limit bounds: 1-100000 requests over a 1s-1h window
  - Logging level and format must be recognized values

A validation failure aborts startup with an error naming the offending
environment variable.

# Thread Safety

The Config struct is immutable after LoadWithKoanf() returns, making it
safe for concurrent access from multiple goroutines without synchronization.
*/
package config
