// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root configuration for the Culinarium server.
// Values are loaded in three layers with increasing priority:
// built-in defaults, an optional YAML config file, and environment
// variables with the CULINARIUM_ prefix.
//
// Config is immutable after LoadWithKoanf() and safe for concurrent
// read access from multiple goroutines.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Cache    CacheConfig    `koanf:"cache"`
	Events   EventsConfig   `koanf:"events"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - CULINARIUM_SERVER_HOST: Listen address (default: 0.0.0.0)
//   - CULINARIUM_SERVER_PORT: Listen port (default: 8080)
//   - CULINARIUM_SERVER_READ_TIMEOUT: Request read timeout (default: 15s)
//   - CULINARIUM_SERVER_WRITE_TIMEOUT: Response write timeout (default: 30s)
//   - CULINARIUM_SERVER_SHUTDOWN_TIMEOUT: Graceful shutdown deadline (default: 10s)
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatabaseConfig holds BadgerDB storage settings.
//
// Environment Variables:
//   - CULINARIUM_DATABASE_DIR: BadgerDB data directory (default: /data/culinarium)
//   - CULINARIUM_DATABASE_IN_MEMORY: Run without persistence (default: false)
//   - CULINARIUM_DATABASE_GC_INTERVAL: Value log GC interval (default: 5m)
//   - CULINARIUM_DATABASE_GC_DISCARD_RATIO: Value log GC discard ratio (default: 0.5)
type DatabaseConfig struct {
	Dir      string `koanf:"dir"`
	InMemory bool   `koanf:"in_memory"` // No files on disk; data is lost on restart

	// Value log garbage collection. GC runs every GCInterval and rewrites
	// a log file when at least GCDiscardRatio of it is stale. Skipped for
	// in-memory instances.
	GCInterval     time.Duration `koanf:"gc_interval"`
	GCDiscardRatio float64       `koanf:"gc_discard_ratio"`
}

// APIConfig holds API response and CORS settings.
//
// Environment Variables:
//   - CULINARIUM_API_MAX_SEARCH_RESULTS: Cap on search result sets (default: 100)
//   - CULINARIUM_API_DEFAULT_PAGE_SIZE: Default list page size (default: 20)
//   - CULINARIUM_API_CORS_ORIGINS: Comma-separated allowed origins (default: *)
type APIConfig struct {
	MaxSearchResults int      `koanf:"max_search_results"`
	DefaultPageSize  int      `koanf:"default_page_size"`
	CORSOrigins      []string `koanf:"cors_origins"`
}

// SecurityConfig holds rate limiting settings.
//
// Environment Variables:
//   - CULINARIUM_SECURITY_RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
//   - CULINARIUM_SECURITY_RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - CULINARIUM_SECURITY_RATE_LIMIT_DISABLED: Disable rate limiting (default: false)
type SecurityConfig struct {
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// CacheConfig holds search result cache settings.
//
// Environment Variables:
//   - CULINARIUM_CACHE_ENABLED: Enable the search cache (default: true)
//   - CULINARIUM_CACHE_TTL: Entry time-to-live (default: 30s)
//   - CULINARIUM_CACHE_MAX_ENTRIES: Bound on cached entries (default: 1024)
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}

// EventsConfig holds event bus settings.
//
// Environment Variables:
//   - CULINARIUM_EVENTS_BUFFER_SIZE: Per-subscriber channel buffer (default: 256)
type EventsConfig struct {
	BufferSize int64 `koanf:"buffer_size"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - CULINARIUM_LOGGING_LEVEL: Minimum log level (default: info)
//   - CULINARIUM_LOGGING_FORMAT: json or console (default: json)
//   - CULINARIUM_LOGGING_CALLER: Include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values.
// These are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Dir:            "/data/culinarium",
			InMemory:       false,
			GCInterval:     5 * time.Minute,
			GCDiscardRatio: 0.5,
		},
		API: APIConfig{
			MaxSearchResults: 100,
			DefaultPageSize:  20,
			CORSOrigins:      []string{"*"},
		},
		Security: SecurityConfig{
			RateLimitRequests: 100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        30 * time.Second,
			MaxEntries: 1024,
		},
		Events: EventsConfig{
			BufferSize: 256,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
