// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

/*
Package middleware provides HTTP middleware for the dashboard API.

All middleware has the chi signature func(http.Handler) http.Handler:

  - RequestID: reuses or generates X-Request-ID and stores it in the context
    so logging.Ctx tags every log line of the request
  - PrometheusMetrics: request count, duration and in-flight gauge, labeled
    by the chi route pattern rather than the raw path
  - Compression: gzip for clients that accept it, except spreadsheet
    downloads which are already zip containers

Typical stack, outermost first:

	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)
*/
package middleware
