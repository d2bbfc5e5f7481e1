// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Fact store
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salesdash_store_query_duration_seconds",
			Help:    "Duration of fact store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesdash_store_query_errors_total",
			Help: "Total number of failed fact store queries",
		},
		[]string{"operation"},
	)

	StoreRowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesdash_store_rows_loaded_total",
			Help: "Total rows committed by bulk loads",
		},
		[]string{"entity"}, // sales_data, region_info, product_categories
	)

	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "salesdash_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	BreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesdash_breaker_requests_total",
			Help: "Requests through the circuit breaker by result",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	// Engine and presentation
	ViewRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "salesdash_view_rows",
			Help: "Number of rows in the most recently computed derived view",
		},
		[]string{"view"},
	)

	DimensionCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesdash_dimension_cache_lookups_total",
			Help: "Dimension cache lookups by result",
		},
		[]string{"result"}, // hit, miss
	)

	ExportBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesdash_export_bytes_total",
			Help: "Bytes written by exports",
		},
		[]string{"format"}, // csv, xlsx
	)

	BootstrapStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salesdash_bootstrap_step_duration_seconds",
			Help:    "Duration of each store initialization step",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		},
		[]string{"step"},
	)

	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesdash_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salesdash_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "salesdash_api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordViewRows records the size of a derived view.
func RecordViewRows(view string, rows int) {
	ViewRows.WithLabelValues(view).Set(float64(rows))
}

// RecordBootstrapStep records how long an initialization step took.
func RecordBootstrapStep(step string, duration time.Duration) {
	BootstrapStepDuration.WithLabelValues(step).Observe(duration.Seconds())
}
