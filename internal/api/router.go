// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/salesdash/internal/middleware"
)

// Router binds the handler to its routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter returns a router for h.
func NewRouter(h *Handler) *Router {
	return &Router{handler: h, chiMiddleware: NewChiMiddleware(&h.cfg.Security)}
}

// SetupChi builds the HTTP handler tree.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(middleware.Compression)

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/sales", h.AnalyticsSales)
				r.Get("/summary", h.AnalyticsSummary)
				r.Get("/revenue/category", h.AnalyticsRevenueByCategory)
				r.Get("/revenue/region", h.AnalyticsRevenueByRegion)
				r.Get("/revenue/segment", h.AnalyticsRevenueBySegment)
				r.Get("/trends/daily", h.AnalyticsDailyTrend)
				r.Get("/trends/monthly", h.AnalyticsMonthlyTrend)
				r.Get("/top-products", h.AnalyticsTopProducts)
				r.Get("/category-performance", h.AnalyticsCategoryPerformance)
			})
			r.Route("/dimensions", func(r chi.Router) {
				r.Get("/regions", h.DimensionRegions)
				r.Get("/categories", h.DimensionCategories)
			})
			r.Route("/charts", func(r chi.Router) {
				r.Get("/", h.ChartList)
				r.Get("/cards", h.MetricCards)
				r.Get("/{name}", h.Chart)
			})
		})

		r.Route("/export", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitCustom(RateLimitExport))
			r.With(middleware.Compression).Get("/sales.csv", h.ExportSalesCSV)
			r.Get("/sales.xlsx", h.ExportSalesXLSX)
			r.Get("/report.xlsx", h.ExportReport)
			r.Post("/report", h.SaveReport)
		})

		r.With(router.chiMiddleware.RateLimitCustom(RateLimitRecreate)).
			Post("/store/recreate", h.StoreRecreate)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
