// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"

	"github.com/tomtom215/salesdash/internal/charts"
	"github.com/tomtom215/salesdash/internal/database"
	"github.com/tomtom215/salesdash/internal/export"
	"github.com/tomtom215/salesdash/internal/models"
)

func TestAnalyticsEndpoints(t *testing.T) {
	srv := newTestServer(t, seededStore(400))

	paths := []string{
		"/api/v1/analytics/sales",
		"/api/v1/analytics/summary",
		"/api/v1/analytics/revenue/category",
		"/api/v1/analytics/revenue/region",
		"/api/v1/analytics/revenue/segment",
		"/api/v1/analytics/trends/daily",
		"/api/v1/analytics/trends/monthly",
		"/api/v1/analytics/top-products?n=5",
		"/api/v1/analytics/category-performance",
		"/api/v1/dimensions/regions",
		"/api/v1/dimensions/categories",
		"/api/v1/charts",
		"/api/v1/charts/cards",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, p+sep(p)+"date_range=all_time")
			checkStatus(t, rec, http.StatusOK)
			env := decode(t, rec)
			if env.Status != "success" {
				t.Fatalf("status = %q", env.Status)
			}
			if len(env.Data) == 0 || string(env.Data) == "null" {
				t.Errorf("expected data, got %s", env.Data)
			}
			if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("missing security headers")
			}
		})
	}
}

func sep(p string) string {
	if strings.Contains(p, "?") {
		return "&"
	}
	return "?"
}

func TestTopProducts_RespectsN(t *testing.T) {
	srv := newTestServer(t, seededStore(400))

	rec := srv.do(t, http.MethodGet, "/api/v1/analytics/top-products?date_range=all_time&n=3")
	checkStatus(t, rec, http.StatusOK)
	var products []models.ProductRevenue
	if err := json.Unmarshal(decode(t, rec).Data, &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}
	for i := 1; i < len(products); i++ {
		if products[i].TotalAmount > products[i-1].TotalAmount {
			t.Errorf("products not sorted descending at %d", i)
		}
	}

	rec = srv.do(t, http.MethodGet, "/api/v1/analytics/top-products?date_range=all_time")
	if err := json.Unmarshal(decode(t, rec).Data, &products); err != nil {
		t.Fatal(err)
	}
	if len(products) > 10 {
		t.Errorf("default top-n returned %d products", len(products))
	}
}

func TestSummary_NoMatchesIsNull(t *testing.T) {
	srv := newTestServer(t, seededStore(100))

	rec := srv.do(t, http.MethodGet, "/api/v1/analytics/summary?date_range=all_time&categories=Nothing")
	checkStatus(t, rec, http.StatusOK)
	if data := string(decode(t, rec).Data); data != "null" {
		t.Errorf("data = %s, want null", data)
	}

	rec = srv.do(t, http.MethodGet, "/api/v1/analytics/revenue/category?date_range=all_time&regions=Nowhere")
	checkStatus(t, rec, http.StatusOK)
	if data := string(decode(t, rec).Data); data != "[]" {
		t.Errorf("data = %s, want []", data)
	}
}

func TestValidationErrors(t *testing.T) {
	srv := newTestServer(t, seededStore(50))

	tests := []struct {
		name   string
		target string
	}{
		{"unknown preset", "/api/v1/analytics/sales?date_range=last_decade"},
		{"bad start date", "/api/v1/analytics/sales?date_range=custom&start_date=2025-13-01"},
		{"bad end date", "/api/v1/analytics/sales?date_range=custom&end_date=yesterday"},
		{"start after end", "/api/v1/analytics/sales?date_range=custom&start_date=2025-06-10&end_date=2025-06-01"},
		{"top n zero", "/api/v1/analytics/top-products?n=0"},
		{"top n too large", "/api/v1/analytics/top-products?n=5000"},
		{"top n not a number", "/api/v1/analytics/top-products?n=ten"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkErrorCode(t, srv.do(t, http.MethodGet, tt.target), http.StatusBadRequest, ErrCodeValidation)
		})
	}
}

func TestStoreErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		retryAfter bool
	}{
		{"breaker open", database.ErrBreakerOpen, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, true},
		{"store closed", fmt.Errorf("query: %w", database.ErrStoreClosed), http.StatusServiceUnavailable, ErrCodeServiceUnavailable, true},
		{"query failure", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeDatabase, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore(10)
			store.queryErr = tt.err
			srv := newTestServer(t, store)

			rec := srv.do(t, http.MethodGet, "/api/v1/analytics/revenue/region")
			checkErrorCode(t, rec, tt.wantStatus, tt.wantCode)
			if got := rec.Header().Get("Retry-After") != ""; got != tt.retryAfter {
				t.Errorf("Retry-After present = %v, want %v", got, tt.retryAfter)
			}
			if strings.Contains(rec.Body.String(), "disk on fire") {
				t.Error("store error leaked into response")
			}
		})
	}
}

func TestCharts(t *testing.T) {
	srv := newTestServer(t, seededStore(300))

	for _, name := range charts.Names() {
		t.Run(name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, "/api/v1/charts/"+name+"?date_range=all_time")
			checkStatus(t, rec, http.StatusOK)
			var cfg charts.Config
			if err := json.Unmarshal(decode(t, rec).Data, &cfg); err != nil {
				t.Fatal(err)
			}
			if cfg.IsPlaceholder() {
				t.Errorf("chart %s is a placeholder over a populated store", name)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		checkErrorCode(t, srv.do(t, http.MethodGet, "/api/v1/charts/radar"), http.StatusNotFound, ErrCodeNotFound)
	})

	t.Run("empty filter gives placeholder", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/v1/charts/daily_trend?date_range=all_time&segments=Nobody")
		checkStatus(t, rec, http.StatusOK)
		var cfg charts.Config
		if err := json.Unmarshal(decode(t, rec).Data, &cfg); err != nil {
			t.Fatal(err)
		}
		if !cfg.IsPlaceholder() {
			t.Error("expected placeholder chart")
		}
	})
}

func TestExportSales(t *testing.T) {
	srv := newTestServer(t, seededStore(200))

	t.Run("csv", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/v1/export/sales.csv?date_range=all_time")
		checkStatus(t, rec, http.StatusOK)
		want := `attachment; filename="sales_data_20250630_120000.csv"`
		if got := rec.Header().Get("Content-Disposition"); got != want {
			t.Errorf("Content-Disposition = %q, want %q", got, want)
		}
		header, _, _ := strings.Cut(rec.Body.String(), "\n")
		if !strings.HasPrefix(header, "id,transaction_date,category") {
			t.Errorf("unexpected csv header %q", header)
		}
	})

	t.Run("xlsx", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/v1/export/sales.xlsx?date_range=all_time")
		checkStatus(t, rec, http.StatusOK)
		if ct := rec.Header().Get("Content-Type"); ct != contentTypeXLSX {
			t.Errorf("Content-Type = %q", ct)
		}
		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		if err != nil {
			t.Fatal(err)
		}
		defer func() { _ = f.Close() }()
		if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != salesSheetName {
			t.Errorf("sheets = %v", sheets)
		}
	})

	t.Run("empty", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/v1/export/sales.csv?date_range=all_time&regions=Atlantis")
		checkErrorCode(t, rec, http.StatusNotFound, ErrCodeNoData)
	})
}

func TestExportReport(t *testing.T) {
	srv := newTestServer(t, seededStore(200))

	rec := srv.do(t, http.MethodGet, "/api/v1/export/report.xlsx?date_range=all_time&regions=Atlantis")
	checkStatus(t, rec, http.StatusOK)
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	want := []string{
		export.SheetSummary,
		export.SheetRevenueByCategory,
		export.SheetRevenueByRegion,
		export.SheetRevenueBySegment,
		export.SheetTopProducts,
		export.SheetCategoryPerformance,
	}
	got := f.GetSheetList()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	// The report ignores the region allow-list and covers the date range only.
	rows, err := f.GetRows(export.SheetRevenueByRegion)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) < 2 {
		t.Errorf("region sheet has %d rows, want data beyond the header", len(rows))
	}
}

func TestSaveReport(t *testing.T) {
	srv := newTestServer(t, seededStore(100))

	rec := srv.do(t, http.MethodPost, "/api/v1/export/report?date_range=all_time")
	checkStatus(t, rec, http.StatusOK)
	var out map[string]string
	if err := json.Unmarshal(decode(t, rec).Data, &out); err != nil {
		t.Fatal(err)
	}
	if filepath.Base(out["path"]) != "summary_report_20250630_120000.xlsx" {
		t.Errorf("path = %q", out["path"])
	}
	if _, err := os.Stat(out["path"]); err != nil {
		t.Errorf("report not written: %v", err)
	}
}

func TestStoreRecreate(t *testing.T) {
	store := &memoryStore{}
	srv := newTestServer(t, store)

	// Prime the dimension cache with the empty store.
	checkStatus(t, srv.do(t, http.MethodGet, "/api/v1/dimensions/regions"), http.StatusOK)

	rec := srv.do(t, http.MethodPost, "/api/v1/store/recreate")
	checkStatus(t, rec, http.StatusOK)
	var report models.BootstrapReport
	if err := json.Unmarshal(decode(t, rec).Data, &report); err != nil {
		t.Fatal(err)
	}
	if !report.Success || report.Skipped {
		t.Errorf("report = %+v", report)
	}
	if report.RowsLoaded["sales"] == 0 || report.RowsLoaded["regions"] != len(store.regions) {
		t.Errorf("rows loaded = %v", report.RowsLoaded)
	}

	var regions []models.RegionInfo
	if err := json.Unmarshal(decode(t, srv.do(t, http.MethodGet, "/api/v1/dimensions/regions")).Data, &regions); err != nil {
		t.Fatal(err)
	}
	if len(regions) == 0 {
		t.Error("dimension cache not invalidated after recreate")
	}
	if srv.handler.lastBootstrapTime().IsZero() {
		t.Error("last bootstrap not recorded")
	}
}

func TestStoreRecreate_Conflict(t *testing.T) {
	srv := newTestServer(t, &memoryStore{})
	srv.handler.recreateMu.Lock()
	defer srv.handler.recreateMu.Unlock()

	checkErrorCode(t, srv.do(t, http.MethodPost, "/api/v1/store/recreate"), http.StatusConflict, ErrCodeConflict)
}

func TestStoreNotConfigured(t *testing.T) {
	srv := newTestServer(t, nil)

	checkErrorCode(t, srv.do(t, http.MethodPost, "/api/v1/store/recreate"), http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
	checkErrorCode(t, srv.do(t, http.MethodGet, "/api/v1/dimensions/categories"), http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
}

func TestNoEngineConfigured(t *testing.T) {
	h := NewHandler(testConfig(t), nil, nil, nil)
	srv := &testServer{handler: h, mux: NewRouter(h).SetupChi()}

	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/v1/analytics/summary"},
		{http.MethodGet, "/api/v1/charts/category_bar"},
		{http.MethodGet, "/api/v1/charts/cards"},
		{http.MethodGet, "/api/v1/export/sales.csv"},
		{http.MethodGet, "/api/v1/export/sales.xlsx"},
		{http.MethodGet, "/api/v1/export/report.xlsx"},
		{http.MethodPost, "/api/v1/export/report"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.target, func(t *testing.T) {
			checkErrorCode(t, srv.do(t, rt.method, rt.target), http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
		})
	}
}

func TestHealth(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		srv := newTestServer(t, seededStore(10))
		rec := srv.do(t, http.MethodGet, "/api/v1/health")
		checkStatus(t, rec, http.StatusOK)
		var health models.HealthStatus
		if err := json.Unmarshal(decode(t, rec).Data, &health); err != nil {
			t.Fatal(err)
		}
		if health.Status != "healthy" || !health.StoreReady || health.StoreDriver != "memory" {
			t.Errorf("health = %+v", health)
		}
		if _, ok := health.DimensionCacheHitRate["regions"]; !ok {
			t.Errorf("health should report dimension cache hit rates, got %+v", health.DimensionCacheHitRate)
		}
		checkStatus(t, srv.do(t, http.MethodGet, "/api/v1/health/ready"), http.StatusOK)
		checkStatus(t, srv.do(t, http.MethodGet, "/api/v1/health/live"), http.StatusOK)
	})

	t.Run("cache hit rate", func(t *testing.T) {
		srv := newTestServer(t, seededStore(10))
		for i := 0; i < 2; i++ {
			checkStatus(t, srv.do(t, http.MethodGet, "/api/v1/dimensions/regions"), http.StatusOK)
		}
		var health models.HealthStatus
		if err := json.Unmarshal(decode(t, srv.do(t, http.MethodGet, "/api/v1/health")).Data, &health); err != nil {
			t.Fatal(err)
		}
		if got := health.DimensionCacheHitRate["regions"]; got != 50 {
			t.Errorf("regions hit rate = %v, want 50", got)
		}
	})

	t.Run("store down", func(t *testing.T) {
		store := seededStore(10)
		store.pingErr = errors.New("connection refused")
		srv := newTestServer(t, store)
		rec := srv.do(t, http.MethodGet, "/api/v1/health")
		checkStatus(t, rec, http.StatusOK)
		if !strings.Contains(rec.Body.String(), `"degraded"`) {
			t.Errorf("body = %s", rec.Body.String())
		}
		checkStatus(t, srv.do(t, http.MethodGet, "/api/v1/health/ready"), http.StatusServiceUnavailable)
		checkStatus(t, srv.do(t, http.MethodGet, "/api/v1/health/live"), http.StatusOK)
	})
}
