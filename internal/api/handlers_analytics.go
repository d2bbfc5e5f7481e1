// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/salesdash/internal/models"
)

// AnalyticsSales godoc
// @Summary Filtered sales rows
// @Description Returns every transaction matching the filters, newest first.
// @Tags Analytics
// @Produce json
// @Param date_range query string false "Date range preset" Enums(last_30_days, last_90_days, last_6_months, last_year, all_time, custom)
// @Param start_date query string false "Custom range start (YYYY-MM-DD)"
// @Param end_date query string false "Custom range end (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated categories"
// @Param regions query string false "Comma-separated regions"
// @Param segments query string false "Comma-separated customer segments"
// @Success 200 {object} models.APIResponse{data=[]models.SalesRecord}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /analytics/sales [get]
func (h *Handler) AnalyticsSales(w http.ResponseWriter, r *http.Request) {
	executeView(h, w, r, "sales data", func(ctx context.Context, f models.SalesFilter) ([]models.SalesRecord, error) {
		return h.analytics.SalesData(ctx, f)
	})
}

// AnalyticsSummary godoc
// @Summary Headline metrics
// @Description Returns total revenue, transactions, average transaction value and units sold. Data is null when nothing matches.
// @Tags Analytics
// @Produce json
// @Param date_range query string false "Date range preset"
// @Param start_date query string false "Custom range start (YYYY-MM-DD)"
// @Param end_date query string false "Custom range end (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated categories"
// @Param regions query string false "Comma-separated regions"
// @Param segments query string false "Comma-separated customer segments"
// @Success 200 {object} models.APIResponse{data=models.SalesSummary}
// @Failure 400 {object} models.APIResponse
// @Router /analytics/summary [get]
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	executeView(h, w, r, "sales summary", func(ctx context.Context, f models.SalesFilter) (*models.SalesSummary, error) {
		return h.analytics.SalesSummary(ctx, f)
	})
}

// AnalyticsRevenueByCategory godoc
// @Summary Revenue by category
// @Tags Analytics
// @Produce json
// @Param date_range query string false "Date range preset"
// @Success 200 {object} models.APIResponse{data=[]models.CategoryRevenue}
// @Router /analytics/revenue/category [get]
func (h *Handler) AnalyticsRevenueByCategory(w http.ResponseWriter, r *http.Request) {
	executeView(h, w, r, "revenue by category", func(ctx context.Context, f models.SalesFilter) ([]models.CategoryRevenue, error) {
		return h.analytics.RevenueByCategory(ctx, f)
	})
}

// AnalyticsRevenueByRegion godoc
// @Summary Revenue by region
// @Tags Analytics
// @Produce json
// @Param date_range query string false "Date range preset"
// @Success 200 {object} models.APIResponse{data=[]models.RegionRevenue}
// @Router /analytics/revenue/region [get]
func (h *Handler) AnalyticsRevenueByRegion(w http.ResponseWriter, r *http.Request) {
	executeView(h, w, r, "revenue by region", func(ctx context.Context, f models.SalesFilter) ([]models.RegionRevenue, error) {
		return h.analytics.RevenueByRegion(ctx, f)
	})
}

// AnalyticsRevenueBySegment godoc
// @Summary Revenue by customer segment
// @Tags Analytics
// @Produce json
// @Param date_range query string false "Date range preset"
// @Success 200 {object} models.APIResponse{data=[]models.SegmentRevenue}
// @Router /analytics/revenue/segment [get]
func (h *Handler) AnalyticsRevenueBySegment(w http.ResponseWriter, r *http.Request) {
	executeView(h, w, r, "revenue by segment", func(ctx context.Context, f models.SalesFilter) ([]models.SegmentRevenue, error) {
		return h.analytics.RevenueBySegment(ctx, f)
	})
}

// AnalyticsDailyTrend godoc
// @Summary Daily revenue trend
// @Tags Analytics
// @Produce json
// @Param date_range query string false "Date range preset"
// @Success 200 {object} models.APIResponse{data=[]models.DailyRevenue}
// @Router /analytics/trends/daily [get]
func (h *Handler) AnalyticsDailyTrend(w http.ResponseWriter, r *http.Request) {
	executeView(h, w, r, "daily revenue trend", func(ctx context.Context, f models.SalesFilter) ([]models.DailyRevenue, error) {
		return h.analytics.DailyRevenueTrend(ctx, f)
	})
}

// AnalyticsMonthlyTrend godoc
// @Summary Monthly revenue trend
// @Tags Analytics
// @Produce json
// @Param date_range query string false "Date range preset"
// @Success 200 {object} models.APIResponse{data=[]models.MonthlyRevenue}
// @Router /analytics/trends/monthly [get]
func (h *Handler) AnalyticsMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	executeView(h, w, r, "monthly revenue trend", func(ctx context.Context, f models.SalesFilter) ([]models.MonthlyRevenue, error) {
		return h.analytics.MonthlyRevenueTrend(ctx, f)
	})
}

// AnalyticsTopProducts godoc
// @Summary Top products by revenue
// @Tags Analytics
// @Produce json
// @Param date_range query string false "Date range preset"
// @Param n query int false "Number of products" minimum(1) maximum(1000)
// @Success 200 {object} models.APIResponse{data=[]models.ProductRevenue}
// @Failure 400 {object} models.APIResponse
// @Router /analytics/top-products [get]
func (h *Handler) AnalyticsTopProducts(w http.ResponseWriter, r *http.Request) {
	n, verr := parseTopN(r, h.cfg.API.DefaultTopN)
	if verr != nil {
		respondValidation(w, verr)
		return
	}
	executeView(h, w, r, "top products", func(ctx context.Context, f models.SalesFilter) ([]models.ProductRevenue, error) {
		return h.analytics.TopProducts(ctx, n, f)
	})
}

// AnalyticsCategoryPerformance godoc
// @Summary Per-category revenue, transactions, averages and units
// @Tags Analytics
// @Produce json
// @Param date_range query string false "Date range preset"
// @Success 200 {object} models.APIResponse{data=[]models.CategoryPerformance}
// @Router /analytics/category-performance [get]
func (h *Handler) AnalyticsCategoryPerformance(w http.ResponseWriter, r *http.Request) {
	executeView(h, w, r, "category performance", func(ctx context.Context, f models.SalesFilter) ([]models.CategoryPerformance, error) {
		return h.analytics.CategoryPerformance(ctx, f)
	})
}
