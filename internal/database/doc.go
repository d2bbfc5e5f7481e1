// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

// Package database is the fact store for Salesdash.
//
// It owns the relational schema (sales_data, region_info,
// product_categories), bulk loading, and predicate queries over the fact
// table. Two drivers are supported:
//
//   - duckdb (default): embedded analytical store, a single file or :memory:
//   - mysql: server-backed store through go-sql-driver/mysql
//
// # Files
//
//   - database.go: connection lifecycle, driver selection
//   - database_connection.go: pool tuning, connection error classification
//   - schema.go: idempotent DDL per dialect, existence check, reset
//   - filter.go / query_builder.go: SalesFilter to parameterized WHERE clause
//   - crud_sales.go: atomic bulk inserts and fact/dimension reads
//   - breaker.go: circuit breaker in front of read paths
//
// # Load atomicity
//
// Each Insert* call runs in one transaction with a prepared statement. If any
// row fails, the whole call is rolled back and no rows of that entity are
// visible.
//
// # Filters
//
// A nil allow-list adds no predicate. A non-nil empty allow-list adds 1=0,
// so the query returns no rows rather than everything.
package database
