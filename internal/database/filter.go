// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package database

import (
	"fmt"
	"strings"

	"github.com/tomtom215/salesdash/internal/models"
)

// buildSalesConditions turns a filter into WHERE conditions for sales_data.
//
// The result is appended to a base query that already ends in "WHERE 1=1":
//
//	WHERE 1=1 AND transaction_date >= ? AND transaction_date <= ?
//	  AND category IN (?, ?) AND region IN (?)
//
// A present-but-empty allow-list short-circuits to " AND 1=0".
func buildSalesConditions(f *models.SalesFilter) (string, []interface{}) {
	if f.MatchesNothing() {
		return " AND 1=0", nil
	}

	var conditions []string
	var args []interface{}

	if f.StartDate != nil {
		conditions = append(conditions, "transaction_date >= ?")
		args = append(args, f.StartDate.UTC())
	}
	if f.EndDate != nil {
		conditions = append(conditions, "transaction_date <= ?")
		args = append(args, f.EndDate.UTC())
	}

	appendIn := func(column string, values []string) {
		if values == nil {
			return
		}
		placeholders, inArgs := buildInClause(values)
		conditions = append(conditions, fmt.Sprintf("%s IN (%s)", column, placeholders))
		args = append(args, inArgs...)
	}
	appendIn("category", f.Categories)
	appendIn("region", f.Regions)
	appendIn("COALESCE(customer_segment, '"+models.UnknownSegment+"')", f.Segments)

	if len(conditions) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(conditions, " AND "), args
}
