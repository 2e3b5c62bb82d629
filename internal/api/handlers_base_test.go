// Culinarium - Recipe Management and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/culinarium

package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/culinarium/internal/catalog"
	"github.com/tomtom215/culinarium/internal/config"
	"github.com/tomtom215/culinarium/internal/events"
	"github.com/tomtom215/culinarium/internal/logging"
	"github.com/tomtom215/culinarium/internal/models"
	"github.com/tomtom215/culinarium/internal/recipe"
)

// newTestHandler builds a handler on an in-memory badger instance with
// both stores, the search cache, and no event bus. Tests that exercise
// the deletion-cascade hook swap in a real bus themselves.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		API: config.APIConfig{
			MaxSearchResults: 100,
			DefaultPageSize:  20,
		},
		Cache: config.CacheConfig{
			Enabled:    true,
			TTL:        time.Minute,
			MaxEntries: 64,
		},
	}

	cat := catalog.NewStore(db)
	h := NewHandler(cat, recipe.NewStore(db, cat), nil, nil, db, cfg)
	t.Cleanup(h.Close)
	return h
}

// testEnvelope mirrors models.APIResponse with raw Data so tests decode
// the payload into the expected concrete type.
type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

// doJSON runs a handler directly with an optional JSON body and path
// values, returning the recorder. user seeds the principal the way the
// RequireUser middleware would.
func doJSON(t *testing.T, handler http.HandlerFunc, method, target, user string, body interface{}, pathValues map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if user != "" {
		req = req.WithContext(logging.ContextWithUserID(req.Context(), user))
	}
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}

	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// newRawRequest builds a request with a literal body, for malformed-JSON
// cases doJSON cannot produce.
func newRawRequest(t *testing.T, method, target, user, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if user != "" {
		req = req.WithContext(logging.ContextWithUserID(req.Context(), user))
	}
	return req
}

// runHandler invokes a handler and returns the recorder.
func runHandler(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// decodeEnvelope asserts the HTTP status and returns the parsed envelope.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int) testEnvelope {
	t.Helper()

	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, wantStatus, rec.Body.String())
	}

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, rec.Body.String())
	}
	return env
}

// decodeData unmarshals the envelope's data payload into v.
func decodeData(t *testing.T, env testEnvelope, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v (data: %s)", err, string(env.Data))
	}
}

// expectErrorCode asserts an error envelope with the given status and code.
func expectErrorCode(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()

	env := decodeEnvelope(t, rec, wantStatus)
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
	if env.Error == nil {
		t.Fatal("expected error payload")
	}
	if env.Error.Code != wantCode {
		t.Errorf("error code = %q, want %q", env.Error.Code, wantCode)
	}
}

// mustCreateIngredient seeds a catalog ingredient through the store.
func mustCreateIngredient(t *testing.T, h *Handler, name string, quantity float64, unit string) models.Ingredient {
	t.Helper()

	ing, err := h.catalog.Create(context.Background(), name, quantity, unit)
	if err != nil {
		t.Fatalf("seed ingredient %q: %v", name, err)
	}
	return ing
}

// mustCreateRecipe seeds a recipe through the store.
func mustCreateRecipe(t *testing.T, h *Handler, owner, title, link, description string) models.Recipe {
	t.Helper()

	rec, err := h.recipes.Create(context.Background(), owner, title, link, description)
	if err != nil {
		t.Fatalf("seed recipe %q: %v", title, err)
	}
	return rec
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t)

	if h.cache == nil {
		t.Error("Expected cache to be initialized")
	}
	if h.perfMon == nil {
		t.Error("Expected performance monitor to be initialized")
	}
	if h.startTime.IsZero() {
		t.Error("Expected start time to be set")
	}
}

func TestNewHandler_NilConfig(t *testing.T) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cat := catalog.NewStore(db)
	h := NewHandler(cat, recipe.NewStore(db, cat), nil, nil, db, nil)
	t.Cleanup(h.Close)

	if h.cache == nil {
		t.Error("Expected cache fallback when config is nil")
	}
	if h.maxSearchResults() != 100 {
		t.Errorf("maxSearchResults() = %d, want fallback 100", h.maxSearchResults())
	}
}

func TestInvalidateSearchCache_BumpsGeneration(t *testing.T) {
	h := newTestHandler(t)

	before := h.cache.Generation()
	h.invalidateSearchCache()

	if got := h.cache.Generation(); got != before+1 {
		t.Errorf("generation = %d, want %d", got, before+1)
	}
}

func TestGetCacheStats_EmptyCache(t *testing.T) {
	h := newTestHandler(t)

	stats := h.GetCacheStats()
	if stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("fresh cache stats = %+v, want zeros", &stats)
	}
}

func TestGetPerformanceStats_NilMonitor(t *testing.T) {
	h := &Handler{perfMon: nil}

	if stats := h.GetPerformanceStats(); stats != nil {
		t.Error("Expected nil stats for nil monitor")
	}
}

func TestRequestUser_MissingPrincipal(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", nil)
	rec := httptest.NewRecorder()

	if _, ok := requestUser(rec, req); ok {
		t.Fatal("Expected requestUser to fail without a principal")
	}
	expectErrorCode(t, rec, http.StatusUnauthorized, ErrCodeUnauthorized)
}

func TestEventBusWiring_PublishOnDelete(t *testing.T) {
	h := newTestHandler(t)

	bus := events.NewBus(events.DefaultBusConfig(), nil)
	t.Cleanup(func() { bus.Close() })
	h.bus = bus

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := bus.Subscriber().Subscribe(ctx, events.TopicRecipeDeleted)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	seeded := mustCreateRecipe(t, h, "alice", "Doomed", "", "short lived")

	rec := doJSON(t, h.DeleteRecipe, http.MethodDelete, "/api/v1/recipes/"+seeded.ID, "alice", nil,
		map[string]string{"id": seeded.ID})
	decodeEnvelope(t, rec, http.StatusOK)

	select {
	case msg := <-messages:
		msg.Ack()

		event, err := events.DeserializeEvent(msg.Payload)
		if err != nil {
			t.Fatalf("DeserializeEvent() error = %v", err)
		}
		if event.RecipeID != seeded.ID {
			t.Errorf("event recipe ID = %q, want %q", event.RecipeID, seeded.ID)
		}
		if event.Owner != "alice" {
			t.Errorf("event owner = %q, want alice", event.Owner)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for recipe.deleted event")
	}
}
