// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

// Package analytics turns a SalesFilter and the fact store contents into
// derived views: summary metrics, grouped revenue, trends, rankings and the
// per-category performance table.
//
// Every operation materializes the filtered fact rows once through the
// FactStore and groups them in memory, so all views share one filter
// implementation. Operations are pure functions of the store contents and
// the filter. The engine holds no state and never writes.
//
// Output contracts:
//
//	view                   columns                                     order
//	SalesData              all fact columns                            store order (by id)
//	SalesSummary           total_revenue ... unique_categories         nil when empty
//	RevenueBy*             {key, total_amount}                         total desc, key asc
//	DailyRevenueTrend      {date YYYY-MM-DD, revenue}                  date asc
//	MonthlyRevenueTrend    {month YYYY-MM, revenue}                    month asc
//	TopProducts            {product_name, total_amount}, at most N     total desc, name asc
//	CategoryPerformance    {category, revenue, units_sold, ...}        revenue desc, category asc
//
// Grouped views, trends, TopProducts and CategoryPerformance honor only the
// date bounds of the filter; SalesData and SalesSummary honor every field.
//
// No matching rows is not an error: grouped views return an empty slice and
// SalesSummary returns nil. Store errors are returned unmodified.
package analytics
