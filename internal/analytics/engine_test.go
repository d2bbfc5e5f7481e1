// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package analytics

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/salesdash/internal/dataprep"
	"github.com/tomtom215/salesdash/internal/models"
)

// memoryStore is a FactStore over a slice. It applies the filter with the
// same semantics as the SQL store.
type memoryStore struct {
	rows  []models.SalesRecord
	err   error
	calls int
}

func (m *memoryStore) QuerySales(_ context.Context, f models.SalesFilter) ([]models.SalesRecord, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := []models.SalesRecord{}
	for i := range m.rows {
		if f.Matches(&m.rows[i]) {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func newStore(rows ...models.SalesRecord) *memoryStore {
	for i := range rows {
		rows[i].ID = int64(i + 1)
		rows[i].TotalAmount = rows[i].ComputedTotal()
	}
	return &memoryStore{rows: rows}
}

func generatedStore(t *testing.T, n int) *memoryStore {
	t.Helper()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	rows := dataprep.CleanSales(dataprep.NewGenerator(42).GenerateSales(n, now))
	if len(rows) == 0 {
		t.Fatal("generator produced no rows")
	}
	return newStore(rows...)
}

func ptr(t time.Time) *time.Time { return &t }

var (
	d1 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	d2 = time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
)

func scenarioStore() *memoryStore {
	return newStore(
		models.SalesRecord{TransactionDate: d1, Category: "Electronics", ProductName: "Laptop", Quantity: 2, UnitPrice: 100, Region: "Europe", CustomerSegment: "Consumer"},
		models.SalesRecord{TransactionDate: d1, Category: "Clothing", ProductName: "Jeans", Quantity: 1, UnitPrice: 50, Region: "Africa", CustomerSegment: "Corporate"},
		models.SalesRecord{TransactionDate: d2, Category: "Electronics", ProductName: "Laptop", Quantity: 3, UnitPrice: 100, Region: "Europe", CustomerSegment: "Consumer"},
	)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6*math.Max(1, math.Abs(b))
}

func TestEngine_Scenario(t *testing.T) {
	e := NewEngine(scenarioStore())
	ctx := context.Background()
	filter := models.SalesFilter{StartDate: ptr(d1), EndDate: ptr(d1)}

	summary, err := e.SalesSummary(ctx, filter)
	if err != nil {
		t.Fatalf("SalesSummary: %v", err)
	}
	if summary.TotalRevenue != 250 || summary.TotalTransactions != 2 || summary.TotalQuantitySold != 3 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.AvgTransactionValue != 125 || summary.UniqueProducts != 2 || summary.UniqueCategories != 2 {
		t.Errorf("unexpected derived summary fields: %+v", summary)
	}

	byCategory, err := e.RevenueByCategory(ctx, filter)
	if err != nil {
		t.Fatalf("RevenueByCategory: %v", err)
	}
	want := []models.CategoryRevenue{{Category: "Electronics", TotalAmount: 200}, {Category: "Clothing", TotalAmount: 50}}
	if !reflect.DeepEqual(byCategory, want) {
		t.Errorf("RevenueByCategory = %+v, want %+v", byCategory, want)
	}
}

func TestEngine_SummaryMatchesSalesData(t *testing.T) {
	store := generatedStore(t, 800)
	e := NewEngine(store)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	filters := map[string]models.SalesFilter{
		"unrestricted": {},
		"date range":   {StartDate: &start, EndDate: &end},
		"allow-lists": {
			Categories: []string{"Electronics", "Clothing"},
			Regions:    []string{"Europe", "Asia Pacific", "Oceania"},
			Segments:   []string{"Consumer"},
		},
	}

	for name, f := range filters {
		t.Run(name, func(t *testing.T) {
			rows, err := e.SalesData(ctx, f)
			if err != nil {
				t.Fatalf("SalesData: %v", err)
			}
			summary, err := e.SalesSummary(ctx, f)
			if err != nil {
				t.Fatalf("SalesSummary: %v", err)
			}
			if len(rows) == 0 {
				t.Fatal("expected generated rows to match filter")
			}

			var revenue float64
			var qty int
			products := map[string]bool{}
			categories := map[string]bool{}
			for _, r := range rows {
				revenue += r.TotalAmount
				qty += r.Quantity
				products[r.ProductName] = true
				categories[r.Category] = true
			}

			if !approxEqual(summary.TotalRevenue, revenue) {
				t.Errorf("total_revenue = %v, want %v", summary.TotalRevenue, revenue)
			}
			if summary.TotalTransactions != len(rows) {
				t.Errorf("total_transactions = %d, want %d", summary.TotalTransactions, len(rows))
			}
			if !approxEqual(summary.AvgTransactionValue, revenue/float64(len(rows))) {
				t.Errorf("avg_transaction_value = %v", summary.AvgTransactionValue)
			}
			if summary.TotalQuantitySold != qty {
				t.Errorf("total_quantity_sold = %d, want %d", summary.TotalQuantitySold, qty)
			}
			if summary.UniqueProducts != len(products) || summary.UniqueCategories != len(categories) {
				t.Errorf("unique counts = %d/%d, want %d/%d",
					summary.UniqueProducts, summary.UniqueCategories, len(products), len(categories))
			}
		})
	}
}

func TestEngine_GroupedViewsConserveRevenue(t *testing.T) {
	e := NewEngine(generatedStore(t, 600))
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	f := models.SalesFilter{StartDate: &start}

	rows, err := e.SalesData(ctx, f)
	if err != nil {
		t.Fatal(err)
	}
	var total float64
	for _, r := range rows {
		total += r.TotalAmount
	}

	byCategory, _ := e.RevenueByCategory(ctx, f)
	byRegion, _ := e.RevenueByRegion(ctx, f)
	bySegment, _ := e.RevenueBySegment(ctx, f)
	daily, _ := e.DailyRevenueTrend(ctx, f)
	monthly, _ := e.MonthlyRevenueTrend(ctx, f)

	sums := map[string]float64{}
	for _, r := range byCategory {
		sums["category"] += r.TotalAmount
	}
	for _, r := range byRegion {
		sums["region"] += r.TotalAmount
	}
	for _, r := range bySegment {
		sums["segment"] += r.TotalAmount
	}
	for _, r := range daily {
		sums["daily"] += r.Revenue
	}
	for _, r := range monthly {
		sums["monthly"] += r.Revenue
	}

	for view, sum := range sums {
		if !approxEqual(sum, total) {
			t.Errorf("%s: grouped sum %v != ungrouped total %v", view, sum, total)
		}
	}

	for i := 1; i < len(byRegion); i++ {
		if byRegion[i-1].TotalAmount < byRegion[i].TotalAmount {
			t.Errorf("revenue_by_region not descending at %d", i)
		}
	}
	for i := 1; i < len(daily); i++ {
		if daily[i-1].Date >= daily[i].Date {
			t.Errorf("daily trend not ascending at %d: %s >= %s", i, daily[i-1].Date, daily[i].Date)
		}
	}
	for i := 1; i < len(monthly); i++ {
		if monthly[i-1].Month >= monthly[i].Month {
			t.Errorf("monthly trend not ascending at %d", i)
		}
	}
}

func TestEngine_GroupedViewsIgnoreAllowLists(t *testing.T) {
	e := NewEngine(scenarioStore())
	ctx := context.Background()
	f := models.SalesFilter{Categories: []string{"Clothing"}, Regions: []string{"Africa"}}

	byCategory, err := e.RevenueByCategory(ctx, f)
	if err != nil {
		t.Fatal(err)
	}
	if len(byCategory) != 2 {
		t.Errorf("expected both categories, got %+v", byCategory)
	}

	// Empty allow-lists are dropped with the rest of the lists
	perf, err := e.CategoryPerformance(ctx, models.SalesFilter{Categories: []string{}})
	if err != nil {
		t.Fatal(err)
	}
	if len(perf) != 2 {
		t.Errorf("expected category performance over all rows, got %+v", perf)
	}
}

func TestEngine_CategoryPerformance(t *testing.T) {
	e := NewEngine(generatedStore(t, 500))
	ctx := context.Background()

	rows, _ := e.SalesData(ctx, models.SalesFilter{})
	counts := map[string]int{}
	for _, r := range rows {
		counts[r.Category]++
	}

	perf, err := e.CategoryPerformance(ctx, models.SalesFilter{})
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range perf {
		if p.AvgTransactionValue != p.Revenue/float64(p.Transactions) {
			t.Errorf("%s: avg_transaction_value %v != revenue/transactions", p.Category, p.AvgTransactionValue)
		}
		if p.Transactions != counts[p.Category] {
			t.Errorf("%s: transactions = %d, want %d", p.Category, p.Transactions, counts[p.Category])
		}
		if i > 0 && perf[i-1].Revenue < p.Revenue {
			t.Errorf("category_performance not descending at %d", i)
		}
	}

	scenario, _ := NewEngine(scenarioStore()).CategoryPerformance(ctx, models.SalesFilter{})
	want := models.CategoryPerformance{
		Category: "Electronics", Revenue: 500, UnitsSold: 5, Transactions: 2,
		AvgPrice: 100, AvgTransactionValue: 250,
	}
	if scenario[0] != want {
		t.Errorf("Electronics performance = %+v, want %+v", scenario[0], want)
	}
}

func TestEngine_TopProducts(t *testing.T) {
	store := generatedStore(t, 700)
	e := NewEngine(store)
	ctx := context.Background()

	products := map[string]bool{}
	for _, r := range store.rows {
		products[r.ProductName] = true
	}

	for _, n := range []int{1, 5, 10, 100} {
		top, err := e.TopProducts(ctx, n, models.SalesFilter{})
		if err != nil {
			t.Fatal(err)
		}
		if len(top) > n {
			t.Errorf("TopProducts(%d) returned %d rows", n, len(top))
		}
		for i, p := range top {
			if !products[p.ProductName] {
				t.Errorf("unknown product %q", p.ProductName)
			}
			if i > 0 && top[i-1].TotalAmount < p.TotalAmount {
				t.Errorf("TopProducts(%d) not descending at %d", n, i)
			}
		}
	}

	top, _ := e.TopProducts(ctx, 0, models.SalesFilter{})
	if len(top) != DefaultTopN {
		t.Errorf("TopProducts(0) returned %d rows, want %d", len(top), DefaultTopN)
	}
}

func TestEngine_TiesBreakByKey(t *testing.T) {
	e := NewEngine(newStore(
		models.SalesRecord{TransactionDate: d1, Category: "Sports & Outdoors", ProductName: "Tent", Quantity: 1, UnitPrice: 10, Region: "Oceania", CustomerSegment: "Consumer"},
		models.SalesRecord{TransactionDate: d1, Category: "Clothing", ProductName: "Dress", Quantity: 1, UnitPrice: 10, Region: "Europe", CustomerSegment: "Consumer"},
	))
	got, _ := e.RevenueByCategory(context.Background(), models.SalesFilter{})
	if got[0].Category != "Clothing" || got[1].Category != "Sports & Outdoors" {
		t.Errorf("expected alphabetical tie-break, got %+v", got)
	}
}

func TestEngine_Idempotent(t *testing.T) {
	e := NewEngine(generatedStore(t, 300))
	ctx := context.Background()
	f := models.SalesFilter{Regions: []string{"Europe"}}

	a, _ := e.SalesSummary(ctx, f)
	b, _ := e.SalesSummary(ctx, f)
	if !reflect.DeepEqual(a, b) {
		t.Error("SalesSummary not idempotent")
	}

	p1, _ := e.CategoryPerformance(ctx, f)
	p2, _ := e.CategoryPerformance(ctx, f)
	if !reflect.DeepEqual(p1, p2) {
		t.Error("CategoryPerformance not idempotent")
	}

	t1, _ := e.DailyRevenueTrend(ctx, f)
	t2, _ := e.DailyRevenueTrend(ctx, f)
	if !reflect.DeepEqual(t1, t2) {
		t.Error("DailyRevenueTrend not idempotent")
	}
}

func TestEngine_EmptyAllowListMatchesNothing(t *testing.T) {
	store := scenarioStore()
	e := NewEngine(store)
	ctx := context.Background()

	rows, err := e.SalesData(ctx, models.SalesFilter{Categories: []string{}})
	if err != nil {
		t.Fatal(err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected empty non-nil result, got %v", rows)
	}
	summary, err := e.SalesSummary(ctx, models.SalesFilter{Segments: []string{}})
	if err != nil || summary != nil {
		t.Errorf("expected nil summary, got %+v, %v", summary, err)
	}
	if store.calls != 0 {
		t.Errorf("store queried %d times for an empty allow-list", store.calls)
	}
}

func TestEngine_EmptyResults(t *testing.T) {
	e := NewEngine(scenarioStore())
	ctx := context.Background()
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	f := models.SalesFilter{StartDate: &future}

	if s, err := e.SalesSummary(ctx, f); err != nil || s != nil {
		t.Errorf("SalesSummary = %+v, %v; want nil, nil", s, err)
	}
	if v, err := e.RevenueByRegion(ctx, f); err != nil || v == nil || len(v) != 0 {
		t.Errorf("RevenueByRegion = %v, %v; want empty", v, err)
	}
	if v, err := e.MonthlyRevenueTrend(ctx, f); err != nil || len(v) != 0 {
		t.Errorf("MonthlyRevenueTrend = %v, %v; want empty", v, err)
	}
	if v, err := e.TopProducts(ctx, 5, f); err != nil || len(v) != 0 {
		t.Errorf("TopProducts = %v, %v; want empty", v, err)
	}
	if v, err := e.CategoryPerformance(ctx, f); err != nil || len(v) != 0 {
		t.Errorf("CategoryPerformance = %v, %v; want empty", v, err)
	}
}

func TestEngine_StoreErrorsPropagate(t *testing.T) {
	storeErr := errors.New("connection refused")
	e := NewEngine(&memoryStore{err: storeErr})
	ctx := context.Background()

	calls := map[string]func() error{
		"SalesData":    func() error { _, err := e.SalesData(ctx, models.SalesFilter{}); return err },
		"SalesSummary": func() error { _, err := e.SalesSummary(ctx, models.SalesFilter{}); return err },
		"RevenueByCategory": func() error {
			_, err := e.RevenueByCategory(ctx, models.SalesFilter{})
			return err
		},
		"RevenueByRegion":     func() error { _, err := e.RevenueByRegion(ctx, models.SalesFilter{}); return err },
		"RevenueBySegment":    func() error { _, err := e.RevenueBySegment(ctx, models.SalesFilter{}); return err },
		"DailyRevenueTrend":   func() error { _, err := e.DailyRevenueTrend(ctx, models.SalesFilter{}); return err },
		"MonthlyRevenueTrend": func() error { _, err := e.MonthlyRevenueTrend(ctx, models.SalesFilter{}); return err },
		"TopProducts":         func() error { _, err := e.TopProducts(ctx, 10, models.SalesFilter{}); return err },
		"CategoryPerformance": func() error { _, err := e.CategoryPerformance(ctx, models.SalesFilter{}); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); err != storeErr { //nolint:errorlint // identity is the contract
				t.Errorf("expected store error unmodified, got %v", err)
			}
		})
	}
}

func TestEngine_TrendLabels(t *testing.T) {
	e := NewEngine(scenarioStore())
	ctx := context.Background()

	daily, _ := e.DailyRevenueTrend(ctx, models.SalesFilter{})
	want := []models.DailyRevenue{{Date: "2024-05-01", Revenue: 250}, {Date: "2024-05-02", Revenue: 300}}
	if !reflect.DeepEqual(daily, want) {
		t.Errorf("DailyRevenueTrend = %+v, want %+v", daily, want)
	}

	monthly, _ := e.MonthlyRevenueTrend(ctx, models.SalesFilter{})
	if len(monthly) != 1 || monthly[0].Month != "2024-05" || monthly[0].Revenue != 550 {
		t.Errorf("MonthlyRevenueTrend = %+v", monthly)
	}
}
