// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package services

import (
	"context"
	"errors"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/culinarium/internal/logging"
	"github.com/tomtom215/culinarium/internal/metrics"
)

// RecordCounter reports how many records a store currently holds.
// Satisfied by the catalog and recipe stores.
type RecordCounter interface {
	Count(ctx context.Context) (int, error)
}

// BadgerGCService runs periodic value log garbage collection on a shared
// Badger instance and refreshes the storage gauges.
//
// Badger never reclaims value log space on its own; RunValueLogGC must be
// called by the application. Each maintenance pass keeps collecting until
// Badger reports there is nothing left to rewrite, then publishes the
// database size and per-store record counts.
//
// In-memory instances have no value log files, so the service parks until
// shutdown instead of ticking.
type BadgerGCService struct {
	db           *badger.DB
	interval     time.Duration
	discardRatio float64
	counters     map[string]RecordCounter
	logger       zerolog.Logger
	name         string
}

// NewBadgerGCService creates a maintenance service for db.
//
// interval is how often a GC pass runs (values <= 0 fall back to 5
// minutes). discardRatio is the fraction of a value log file that must be
// stale before Badger rewrites it; values outside (0, 1] fall back to 0.5.
func NewBadgerGCService(db *badger.DB, interval time.Duration, discardRatio float64) *BadgerGCService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if discardRatio <= 0 || discardRatio > 1 {
		discardRatio = 0.5
	}
	return &BadgerGCService{
		db:           db,
		interval:     interval,
		discardRatio: discardRatio,
		counters:     make(map[string]RecordCounter),
		logger:       logging.WithComponent("maintenance"),
		name:         "badger-gc",
	}
}

// TrackRecords registers a store whose record count is published to the
// store gauge after each maintenance pass. Must be called before Serve.
func (s *BadgerGCService) TrackRecords(store string, counter RecordCounter) {
	s.counters[store] = counter
}

// Serve implements suture.Service.
func (s *BadgerGCService) Serve(ctx context.Context) error {
	if s.db == nil {
		return errors.New("badger gc: nil database")
	}
	if s.db.Opts().InMemory {
		s.logger.Debug().Msg("In-memory database, value log GC disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	// Publish gauges right away so dashboards are not empty until the
	// first tick.
	s.publishStats(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.collect(ctx)
			s.publishStats(ctx)
		}
	}
}

// collect runs value log GC until Badger reports nothing left to rewrite.
// Each successful call rewrites at most one log file, so the loop keeps
// going while rewrites happen.
func (s *BadgerGCService) collect(ctx context.Context) {
	start := time.Now()
	reclaimed := 0

	for ctx.Err() == nil {
		err := s.db.RunValueLogGC(s.discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			metrics.RecordBadgerGC("noop")
			break
		}
		if err != nil {
			metrics.RecordBadgerGC("error")
			s.logger.Warn().Err(err).Msg("Value log GC failed")
			return
		}
		metrics.RecordBadgerGC("reclaimed")
		reclaimed++
	}

	s.logger.Debug().
		Int("files_reclaimed", reclaimed).
		Dur("elapsed", time.Since(start)).
		Msg("Value log GC pass complete")
}

// publishStats refreshes the database size and record count gauges.
func (s *BadgerGCService) publishStats(ctx context.Context) {
	lsm, vlog := s.db.Size()
	metrics.UpdateBadgerSize(lsm, vlog)

	for store, counter := range s.counters {
		n, err := counter.Count(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Str("store", store).Msg("Record count failed")
			continue
		}
		metrics.SetStoreRecords(store, int64(n))
	}
}

// String implements fmt.Stringer for suture log messages.
func (s *BadgerGCService) String() string {
	return s.name
}
