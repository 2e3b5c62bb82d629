// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package supervisor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// MockService is a controllable suture.Service used by the supervisor tests.
// By default it runs until its context is canceled; tests can script a fixed
// number of failures or a terminal error to exercise restart behavior.
type MockService struct {
	name   string
	starts atomic.Int32
	stops  atomic.Int32

	mu        sync.Mutex
	err       error
	failsLeft int
}

// NewMockService creates a mock service identified by name in suture logs.
func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

// Serve implements suture.Service.
func (m *MockService) Serve(ctx context.Context) error {
	m.starts.Add(1)
	defer m.stops.Add(1)

	m.mu.Lock()
	err := m.err
	fail := m.failsLeft > 0
	if fail {
		m.failsLeft--
	}
	m.mu.Unlock()

	if fail {
		return errors.New("simulated failure")
	}
	if err != nil {
		return err
	}

	<-ctx.Done()
	return ctx.Err()
}

// SetError makes every subsequent Serve call return err immediately.
func (m *MockService) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// FailTimes makes the next n Serve calls fail before the service settles
// into running normally. Used to observe supervisor restarts.
func (m *MockService) FailTimes(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failsLeft = n
}

// StartCount returns how many times Serve was entered.
func (m *MockService) StartCount() int32 {
	return m.starts.Load()
}

// StopCount returns how many times Serve returned.
func (m *MockService) StopCount() int32 {
	return m.stops.Load()
}

// String implements fmt.Stringer so suture can label the service in logs.
func (m *MockService) String() string {
	return m.name
}
