// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

// @title Salesdash API
// @version 1.0
// @description Retail sales analytics: filtered sales rows, revenue breakdowns, trends, chart configurations and spreadsheet exports.
// @description
// @description ## Filters
// @description
// @description Analytics, chart and export endpoints accept `date_range` (last_30_days, last_90_days, last_6_months, last_year, all_time, custom),
// @description `start_date`/`end_date` (YYYY-MM-DD, custom only) and comma-separated `categories`, `regions` and `segments`.
// @description Grouped views, trends, top products and category performance honor the date range only.
// @description
// @description ## Errors
// @description
// @description Errors use the standard envelope with `error.code` set to one of VALIDATION_ERROR, NOT_FOUND, NO_DATA, CONFLICT,
// @description DATABASE_ERROR, SERVICE_UNAVAILABLE or RATE_LIMIT_EXCEEDED.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/salesdash/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness and readiness probes
// @tag.name Analytics
// @tag.description Derived views over the filtered sales table
// @tag.name Dimensions
// @tag.description Region and category reference tables
// @tag.name Charts
// @tag.description Dashboard chart configurations and metric cards
// @tag.name Export
// @tag.description CSV and spreadsheet downloads
// @tag.name Store
// @tag.description Fact store lifecycle
package main
