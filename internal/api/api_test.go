// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/salesdash/internal/analytics"
	"github.com/tomtom215/salesdash/internal/config"
	"github.com/tomtom215/salesdash/internal/dataprep"
	"github.com/tomtom215/salesdash/internal/models"
)

var testNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

// memoryStore implements every store surface the API touches over slices.
type memoryStore struct {
	mu         sync.Mutex
	exists     bool
	sales      []models.SalesRecord
	regions    []models.RegionInfo
	categories []models.CategoryInfo
	queryErr   error
	pingErr    error
}

func (m *memoryStore) Exists(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exists, nil
}

func (m *memoryStore) InitSchema(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exists = true
	return nil
}

func (m *memoryStore) Reset(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales, m.regions, m.categories = nil, nil, nil
	return nil
}

func (m *memoryStore) InsertSales(_ context.Context, rows []models.SalesRecord) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range rows {
		r.ID = int64(len(m.sales) + 1)
		r.CreatedAt = testNow
		m.sales = append(m.sales, r)
	}
	return len(rows), nil
}

func (m *memoryStore) InsertRegions(_ context.Context, rows []models.RegionInfo) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regions = append(m.regions, rows...)
	return len(rows), nil
}

func (m *memoryStore) InsertCategories(_ context.Context, rows []models.CategoryInfo) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append(m.categories, rows...)
	return len(rows), nil
}

func (m *memoryStore) QuerySales(_ context.Context, f models.SalesFilter) ([]models.SalesRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	out := []models.SalesRecord{}
	for i := range m.sales {
		if f.Matches(&m.sales[i]) {
			out = append(out, m.sales[i])
		}
	}
	return out, nil
}

func (m *memoryStore) RegionInfo(context.Context) ([]models.RegionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.RegionInfo(nil), m.regions...), m.queryErr
}

func (m *memoryStore) CategoryInfo(context.Context) ([]models.CategoryInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.CategoryInfo(nil), m.categories...), m.queryErr
}

func (m *memoryStore) Ping(context.Context) error { return m.pingErr }

func (m *memoryStore) Driver() string { return "memory" }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.DatabaseConfig{Driver: "memory", BootstrapRecords: 500, Seed: 42},
		API: config.APIConfig{
			DefaultTopN:      10,
			ReportTopN:       20,
			DailyTrendPoints: 90,
			DefaultRange:     "last_90_days",
		},
		Security: config.SecurityConfig{RateLimitDisabled: true, CORSOrigins: []string{"*"}},
		Cache:    config.CacheConfig{DimensionTTL: time.Minute},
		Export:   config.ExportConfig{Dir: t.TempDir(), MaxColumnWidth: 50},
	}
}

// seededStore holds the cleaned output of the default generator.
func seededStore(n int) *memoryStore {
	m := &memoryStore{exists: true}
	rows := dataprep.CleanSales(dataprep.NewGenerator(dataprep.DefaultSeed).GenerateSales(n, testNow))
	_, _ = m.InsertSales(context.Background(), rows)
	_, _ = m.InsertRegions(context.Background(), dataprep.RegionFixtures())
	_, _ = m.InsertCategories(context.Background(), dataprep.CategoryFixtures())
	return m
}

type testServer struct {
	store   *memoryStore
	handler *Handler
	mux     http.Handler
}

func newTestServer(t *testing.T, store *memoryStore) *testServer {
	t.Helper()
	cfg := testConfig(t)
	var h *Handler
	if store == nil {
		h = NewHandler(cfg, analytics.NewEngine(&memoryStore{}), nil, nil)
	} else {
		h = NewHandler(cfg, analytics.NewEngine(store), analytics.NewDimensions(store, time.Minute), store)
	}
	h.now = func() time.Time { return testNow }
	return &testServer{store: store, handler: h, mux: NewRouter(h).SetupChi()}
}

func (s *testServer) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func checkStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, want, rec.Body.String())
	}
}

func checkErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	checkStatus(t, rec, status)
	env := decode(t, rec)
	if env.Status != "error" || env.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
}
