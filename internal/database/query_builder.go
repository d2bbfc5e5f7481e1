// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/salesdash/internal/metrics"
)

// buildInClause creates a parameterized IN clause body.
//
//	placeholders, args := buildInClause([]string{"Europe", "Africa"})
//	// placeholders = "?,?"
func buildInClause(items []string) (string, []interface{}) {
	placeholders := make([]string, len(items))
	args := make([]interface{}, len(items))
	for i, item := range items {
		placeholders[i] = "?"
		args[i] = item
	}
	return strings.Join(placeholders, ","), args
}

// queryAndScan runs query and hands every row to scan. Rows are always closed.
// Duration and failures are recorded under operation.
func queryAndScan(ctx context.Context, conn *sql.DB, operation, query string, args []interface{}, scan func(*sql.Rows) error) error {
	start := time.Now()
	defer func() {
		metrics.StoreQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.StoreQueryErrors.WithLabelValues(operation).Inc()
		return fmt.Errorf("%s query failed: %w", operation, err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		if err := scan(rows); err != nil {
			metrics.StoreQueryErrors.WithLabelValues(operation).Inc()
			return fmt.Errorf("%s scan failed: %w", operation, err)
		}
	}
	if err := rows.Err(); err != nil {
		metrics.StoreQueryErrors.WithLabelValues(operation).Inc()
		return fmt.Errorf("%s rows iteration failed: %w", operation, err)
	}
	return nil
}
