// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package config

import (
	"fmt"
	"time"
)

// Validate checks that the configuration is internally consistent and
// within sensible bounds. It is called by LoadWithKoanf, so a Config
// obtained from there is always valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateEvents(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("CULINARIUM_SERVER_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("CULINARIUM_SERVER_READ_TIMEOUT must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("CULINARIUM_SERVER_WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("CULINARIUM_SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateDatabase validates BadgerDB configuration
func (c *Config) validateDatabase() error {
	if !c.Database.InMemory && c.Database.Dir == "" {
		return fmt.Errorf("CULINARIUM_DATABASE_DIR is required unless CULINARIUM_DATABASE_IN_MEMORY=true")
	}
	if c.Database.GCInterval <= 0 {
		return fmt.Errorf("CULINARIUM_DATABASE_GC_INTERVAL must be positive")
	}
	// Badger rejects discard ratios outside (0, 1]
	if c.Database.GCDiscardRatio <= 0 || c.Database.GCDiscardRatio > 1 {
		return fmt.Errorf("CULINARIUM_DATABASE_GC_DISCARD_RATIO must be greater than 0 and at most 1")
	}
	return nil
}

// API limit constants
const (
	maxSearchResultsCap = 10000
	maxPageSizeCap      = 1000
)

// validateAPI validates API response configuration
func (c *Config) validateAPI() error {
	if c.API.MaxSearchResults < 1 || c.API.MaxSearchResults > maxSearchResultsCap {
		return fmt.Errorf("CULINARIUM_API_MAX_SEARCH_RESULTS must be between 1 and %d", maxSearchResultsCap)
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > maxPageSizeCap {
		return fmt.Errorf("CULINARIUM_API_DEFAULT_PAGE_SIZE must be between 1 and %d", maxPageSizeCap)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateSecurity validates rate limiting configuration bounds.
// Values outside these ranges are almost certainly misconfiguration
// rather than intent.
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitRequests < minRateLimitRequests || c.Security.RateLimitRequests > maxRateLimitRequests {
		return fmt.Errorf("CULINARIUM_SECURITY_RATE_LIMIT_REQUESTS must be between %d and %d",
			minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("CULINARIUM_SECURITY_RATE_LIMIT_WINDOW must be between %v and %v",
			minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateCache validates search cache configuration (only if enabled)
func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CULINARIUM_CACHE_TTL must be positive")
	}
	if c.Cache.MaxEntries < 1 {
		return fmt.Errorf("CULINARIUM_CACHE_MAX_ENTRIES must be at least 1")
	}
	return nil
}

// validateEvents validates event bus configuration
func (c *Config) validateEvents() error {
	if c.Events.BufferSize < 0 {
		return fmt.Errorf("CULINARIUM_EVENTS_BUFFER_SIZE must be non-negative")
	}
	return nil
}

// validLogLevels defines the accepted logging levels
var validLogLevels = map[string]bool{
	"trace":    true,
	"debug":    true,
	"info":     true,
	"warn":     true,
	"warning":  true,
	"error":    true,
	"fatal":    true,
	"disabled": true,
}

// validLogFormats defines the accepted logging output formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("CULINARIUM_LOGGING_LEVEL must be one of: trace, debug, info, warn, error, fatal, disabled")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("CULINARIUM_LOGGING_FORMAT must be one of: json, console")
	}
	return nil
}
