// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

/*
Package models defines data structures for the Salesdash application.

This package is the single source of truth for the shapes that flow between
the fact store, the aggregation engine, the chart and export adapters, and
the HTTP API.

Key Components:

  - SalesRecord: one sales transaction (fact row)
  - RegionInfo, CategoryInfo: dimension rows
  - SalesFilter: optional date bounds and allow-lists applied before aggregation
  - Derived views: SalesSummary, CategoryRevenue, RegionRevenue, SegmentRevenue,
    DailyRevenue, MonthlyRevenue, ProductRevenue, CategoryPerformance
  - APIResponse: standardized API response wrapper

JSON field names of the derived views are part of the public contract: chart
and export code key on them, so renaming a tag is a breaking change.

Thread Safety:

All types are plain values. A SalesFilter is treated as immutable once built;
copy it with WithDateRangeOnly or by value rather than mutating shared slices.
*/
package models
