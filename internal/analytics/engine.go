// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package analytics

import (
	"context"

	"github.com/tomtom215/salesdash/internal/logging"
	"github.com/tomtom215/salesdash/internal/metrics"
	"github.com/tomtom215/salesdash/internal/models"
)

// DefaultTopN is used by TopProducts when n <= 0.
const DefaultTopN = 10

// FactStore provides fact rows matching a filter.
type FactStore interface {
	QuerySales(ctx context.Context, filter models.SalesFilter) ([]models.SalesRecord, error)
}

// Engine computes derived views from a FactStore.
type Engine struct {
	store FactStore
}

// NewEngine returns an engine reading from store.
func NewEngine(store FactStore) *Engine {
	return &Engine{store: store}
}

// rows materializes the filtered fact set. A present-but-empty allow-list
// returns no rows without touching the store.
func (e *Engine) rows(ctx context.Context, view string, filter models.SalesFilter) ([]models.SalesRecord, error) {
	if filter.MatchesNothing() {
		return []models.SalesRecord{}, nil
	}
	rows, err := e.store.QuerySales(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.SalesRecord{}
	}
	logging.Debug().Str("view", view).Int("rows", len(rows)).Msg("Fact rows materialized")
	return rows, nil
}

// SalesData returns every fact row matching the filter.
func (e *Engine) SalesData(ctx context.Context, filter models.SalesFilter) ([]models.SalesRecord, error) {
	rows, err := e.rows(ctx, "sales_data", filter)
	if err != nil {
		return nil, err
	}
	metrics.RecordViewRows("sales_data", len(rows))
	return rows, nil
}

// SalesSummary returns scalar metrics over the filtered rows, or nil when
// nothing matches.
func (e *Engine) SalesSummary(ctx context.Context, filter models.SalesFilter) (*models.SalesSummary, error) {
	rows, err := e.rows(ctx, "sales_summary", filter)
	if err != nil {
		return nil, err
	}
	summary := summarize(rows)
	if summary == nil {
		metrics.RecordViewRows("sales_summary", 0)
	} else {
		metrics.RecordViewRows("sales_summary", 1)
	}
	return summary, nil
}

func summarize(rows []models.SalesRecord) *models.SalesSummary {
	if len(rows) == 0 {
		return nil
	}

	s := &models.SalesSummary{TotalTransactions: len(rows)}
	products := make(map[string]struct{})
	categories := make(map[string]struct{})
	for i := range rows {
		r := &rows[i]
		s.TotalRevenue += r.TotalAmount
		s.TotalQuantitySold += r.Quantity
		products[r.ProductName] = struct{}{}
		categories[r.Category] = struct{}{}
	}
	s.AvgTransactionValue = s.TotalRevenue / float64(s.TotalTransactions)
	s.UniqueProducts = len(products)
	s.UniqueCategories = len(categories)
	return s
}

// RevenueByCategory sums total_amount per category within the date range.
func (e *Engine) RevenueByCategory(ctx context.Context, filter models.SalesFilter) ([]models.CategoryRevenue, error) {
	rows, err := e.rows(ctx, "revenue_by_category", filter.WithDateRangeOnly())
	if err != nil {
		return nil, err
	}
	groups := sumBy(rows, func(r *models.SalesRecord) string { return r.Category })
	out := make([]models.CategoryRevenue, len(groups))
	for i, g := range groups {
		out[i] = models.CategoryRevenue{Category: g.key, TotalAmount: g.total}
	}
	metrics.RecordViewRows("revenue_by_category", len(out))
	return out, nil
}

// RevenueByRegion sums total_amount per region within the date range.
func (e *Engine) RevenueByRegion(ctx context.Context, filter models.SalesFilter) ([]models.RegionRevenue, error) {
	rows, err := e.rows(ctx, "revenue_by_region", filter.WithDateRangeOnly())
	if err != nil {
		return nil, err
	}
	groups := sumBy(rows, func(r *models.SalesRecord) string { return r.Region })
	out := make([]models.RegionRevenue, len(groups))
	for i, g := range groups {
		out[i] = models.RegionRevenue{Region: g.key, TotalAmount: g.total}
	}
	metrics.RecordViewRows("revenue_by_region", len(out))
	return out, nil
}

// RevenueBySegment sums total_amount per customer segment within the date range.
func (e *Engine) RevenueBySegment(ctx context.Context, filter models.SalesFilter) ([]models.SegmentRevenue, error) {
	rows, err := e.rows(ctx, "revenue_by_segment", filter.WithDateRangeOnly())
	if err != nil {
		return nil, err
	}
	groups := sumBy(rows, func(r *models.SalesRecord) string { return r.CustomerSegment })
	out := make([]models.SegmentRevenue, len(groups))
	for i, g := range groups {
		out[i] = models.SegmentRevenue{CustomerSegment: g.key, TotalAmount: g.total}
	}
	metrics.RecordViewRows("revenue_by_segment", len(out))
	return out, nil
}

// DailyRevenueTrend sums revenue per UTC calendar day, oldest first.
func (e *Engine) DailyRevenueTrend(ctx context.Context, filter models.SalesFilter) ([]models.DailyRevenue, error) {
	rows, err := e.rows(ctx, "daily_revenue_trend", filter.WithDateRangeOnly())
	if err != nil {
		return nil, err
	}
	groups := sumByAscendingKey(rows, func(r *models.SalesRecord) string {
		return r.TransactionDate.UTC().Format(DayLayout)
	})
	out := make([]models.DailyRevenue, len(groups))
	for i, g := range groups {
		out[i] = models.DailyRevenue{Date: g.key, Revenue: g.total}
	}
	metrics.RecordViewRows("daily_revenue_trend", len(out))
	return out, nil
}

// MonthlyRevenueTrend sums revenue per UTC calendar month, oldest first.
func (e *Engine) MonthlyRevenueTrend(ctx context.Context, filter models.SalesFilter) ([]models.MonthlyRevenue, error) {
	rows, err := e.rows(ctx, "monthly_revenue_trend", filter.WithDateRangeOnly())
	if err != nil {
		return nil, err
	}
	groups := sumByAscendingKey(rows, func(r *models.SalesRecord) string {
		return r.TransactionDate.UTC().Format(MonthLayout)
	})
	out := make([]models.MonthlyRevenue, len(groups))
	for i, g := range groups {
		out[i] = models.MonthlyRevenue{Month: g.key, Revenue: g.total}
	}
	metrics.RecordViewRows("monthly_revenue_trend", len(out))
	return out, nil
}

// TopProducts returns the n products with the highest revenue within the
// date range. n <= 0 means DefaultTopN.
func (e *Engine) TopProducts(ctx context.Context, n int, filter models.SalesFilter) ([]models.ProductRevenue, error) {
	if n <= 0 {
		n = DefaultTopN
	}
	rows, err := e.rows(ctx, "top_products", filter.WithDateRangeOnly())
	if err != nil {
		return nil, err
	}
	groups := sumBy(rows, func(r *models.SalesRecord) string { return r.ProductName })
	if len(groups) > n {
		groups = groups[:n]
	}
	out := make([]models.ProductRevenue, len(groups))
	for i, g := range groups {
		out[i] = models.ProductRevenue{ProductName: g.key, TotalAmount: g.total}
	}
	metrics.RecordViewRows("top_products", len(out))
	return out, nil
}

// CategoryPerformance returns revenue, units, transaction count, mean unit
// price and revenue per transaction for each category in the date range.
func (e *Engine) CategoryPerformance(ctx context.Context, filter models.SalesFilter) ([]models.CategoryPerformance, error) {
	rows, err := e.rows(ctx, "category_performance", filter.WithDateRangeOnly())
	if err != nil {
		return nil, err
	}

	type acc struct {
		revenue  float64
		units    int
		count    int
		priceSum float64
	}
	byCategory := make(map[string]*acc)
	for i := range rows {
		r := &rows[i]
		a, ok := byCategory[r.Category]
		if !ok {
			a = &acc{}
			byCategory[r.Category] = a
		}
		a.revenue += r.TotalAmount
		a.units += r.Quantity
		a.count++
		a.priceSum += r.UnitPrice
	}

	out := make([]models.CategoryPerformance, 0, len(byCategory))
	for category, a := range byCategory {
		out = append(out, models.CategoryPerformance{
			Category:            category,
			Revenue:             a.revenue,
			UnitsSold:           a.units,
			Transactions:        a.count,
			AvgPrice:            a.priceSum / float64(a.count),
			AvgTransactionValue: a.revenue / float64(a.count),
		})
	}
	sortDescending(out, func(p models.CategoryPerformance) (float64, string) { return p.Revenue, p.Category })

	metrics.RecordViewRows("category_performance", len(out))
	return out, nil
}
