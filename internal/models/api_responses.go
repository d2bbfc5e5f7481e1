// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"category": "Electronics", "total_amount": 200}],
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z", "query_time_ms": 4}
//	}
//
// An empty derived view is a success with an empty array (or null for the
// summary), never an error.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - DATABASE_ERROR: Fact store query failure
//   - SERVICE_UNAVAILABLE: Store not configured or circuit open
//   - NO_DATA: Nothing to export for the selected filters
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status        string     `json:"status"`
	Version       string     `json:"version"`
	StoreDriver   string     `json:"store_driver"`
	StoreReady    bool       `json:"store_ready"`
	Uptime        float64    `json:"uptime_seconds"`
	LastBootstrap *time.Time `json:"last_bootstrap,omitempty"`

	// DimensionCacheHitRate is the hit percentage per dimension table.
	DimensionCacheHitRate map[string]float64 `json:"dimension_cache_hit_rate,omitempty"`
}

// BootstrapReport is the payload returned after a store recreate.
type BootstrapReport struct {
	Skipped         bool            `json:"skipped"`
	Success         bool            `json:"success"`
	Entities        map[string]bool `json:"entities"`
	RowsLoaded      map[string]int  `json:"rows_loaded"`
	RowsDropped     int             `json:"rows_dropped"`
	DurationSeconds float64         `json:"duration_seconds"`
}
