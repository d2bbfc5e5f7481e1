// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package export

import (
	"strconv"
	"time"

	"github.com/tomtom215/salesdash/internal/models"
)

// TimestampLayout renders time cells in CSV output and width calculations.
const TimestampLayout = "2006-01-02 15:04:05"

// Table is a rectangular view ready for serialization. Cell values are
// string, int, int64, float64 or time.Time.
type Table struct {
	Columns []string
	Rows    [][]any
}

// NamedTable is a Table destined for its own sheet.
type NamedTable struct {
	Name string
	Table
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// formatCell renders a cell value as text.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.UTC().Format(TimestampLayout)
	default:
		return ""
	}
}

// FromSales converts fact rows.
func FromSales(rows []models.SalesRecord) Table {
	t := Table{Columns: []string{
		"id", "transaction_date", "category", "product_name", "quantity",
		"unit_price", "total_amount", "region", "customer_segment", "created_at",
	}}
	t.Rows = make([][]any, len(rows))
	for i := range rows {
		r := &rows[i]
		t.Rows[i] = []any{
			r.ID, r.TransactionDate, r.Category, r.ProductName, r.Quantity,
			r.UnitPrice, r.TotalAmount, r.Region, r.CustomerSegment, r.CreatedAt,
		}
	}
	return t
}

// FromSummary flattens a summary into Metric/Value rows. A nil summary
// gives a table with headers only.
func FromSummary(s *models.SalesSummary) Table {
	t := Table{Columns: []string{"Metric", "Value"}, Rows: [][]any{}}
	for _, m := range s.Metrics() {
		t.Rows = append(t.Rows, []any{m.Metric, m.Value})
	}
	return t
}

// FromCategoryRevenue converts revenue by category.
func FromCategoryRevenue(rows []models.CategoryRevenue) Table {
	t := Table{Columns: []string{"category", "total_amount"}, Rows: make([][]any, len(rows))}
	for i, r := range rows {
		t.Rows[i] = []any{r.Category, r.TotalAmount}
	}
	return t
}

// FromRegionRevenue converts revenue by region.
func FromRegionRevenue(rows []models.RegionRevenue) Table {
	t := Table{Columns: []string{"region", "total_amount"}, Rows: make([][]any, len(rows))}
	for i, r := range rows {
		t.Rows[i] = []any{r.Region, r.TotalAmount}
	}
	return t
}

// FromSegmentRevenue converts revenue by customer segment.
func FromSegmentRevenue(rows []models.SegmentRevenue) Table {
	t := Table{Columns: []string{"customer_segment", "total_amount"}, Rows: make([][]any, len(rows))}
	for i, r := range rows {
		t.Rows[i] = []any{r.CustomerSegment, r.TotalAmount}
	}
	return t
}

// FromDailyRevenue converts the daily trend.
func FromDailyRevenue(rows []models.DailyRevenue) Table {
	t := Table{Columns: []string{"date", "revenue"}, Rows: make([][]any, len(rows))}
	for i, r := range rows {
		t.Rows[i] = []any{r.Date, r.Revenue}
	}
	return t
}

// FromMonthlyRevenue converts the monthly trend.
func FromMonthlyRevenue(rows []models.MonthlyRevenue) Table {
	t := Table{Columns: []string{"month", "revenue"}, Rows: make([][]any, len(rows))}
	for i, r := range rows {
		t.Rows[i] = []any{r.Month, r.Revenue}
	}
	return t
}

// FromProductRevenue converts the top products ranking.
func FromProductRevenue(rows []models.ProductRevenue) Table {
	t := Table{Columns: []string{"product_name", "total_amount"}, Rows: make([][]any, len(rows))}
	for i, r := range rows {
		t.Rows[i] = []any{r.ProductName, r.TotalAmount}
	}
	return t
}

// FromCategoryPerformance converts the category performance table.
func FromCategoryPerformance(rows []models.CategoryPerformance) Table {
	t := Table{
		Columns: []string{"category", "revenue", "units_sold", "transactions", "avg_price", "avg_transaction_value"},
		Rows:    make([][]any, len(rows)),
	}
	for i, r := range rows {
		t.Rows[i] = []any{r.Category, r.Revenue, r.UnitsSold, r.Transactions, r.AvgPrice, r.AvgTransactionValue}
	}
	return t
}
