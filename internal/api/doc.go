// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

/*
Package api serves the dashboard over HTTP with the chi router.

Handler methods are split across files:

  - handlers.go: Handler, its dependencies and constructor
  - handlers_analytics.go: one endpoint per derived view plus metric cards
  - handlers_dimensions.go: region and category dimension tables
  - handlers_charts.go: dashboard chart presets
  - handlers_export.go: CSV and spreadsheet downloads, saved reports
  - handlers_store.go: forced re-initialization of the fact store
  - handlers_health.go: liveness, readiness and status

Every JSON response uses the models.APIResponse envelope. Errors map as:

	validation failure            400 VALIDATION_ERROR
	unknown chart                 404 NOT_FOUND
	nothing to export             404 NO_DATA
	recreate already running      409 CONFLICT
	store query failure           500 DATABASE_ERROR
	circuit open or store closed  503 SERVICE_UNAVAILABLE (with Retry-After)

Filters come from query parameters:

	date_range   last_30_days | last_90_days | last_6_months | last_year | all_time | custom
	start_date   YYYY-MM-DD, custom only, from the start of that day
	end_date     YYYY-MM-DD, custom only, through the end of that day
	categories   comma-separated allow-list; absent or empty means all
	regions      comma-separated allow-list; absent or empty means all
	segments     comma-separated allow-list; absent or empty means all
*/
package api
