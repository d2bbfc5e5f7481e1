// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package models

// SalesSummary holds the scalar metrics over a filtered fact set.
// The engine returns nil instead of a zero summary when no rows match.
type SalesSummary struct {
	TotalRevenue        float64 `json:"total_revenue"`
	TotalTransactions   int     `json:"total_transactions"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
	TotalQuantitySold   int     `json:"total_quantity_sold"`
	UniqueProducts      int     `json:"unique_products"`
	UniqueCategories    int     `json:"unique_categories"`
}

// SummaryMetric is one Metric/Value pair of a flattened summary.
type SummaryMetric struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// Metrics flattens the summary into ordered metric/value pairs.
func (s *SalesSummary) Metrics() []SummaryMetric {
	if s == nil {
		return nil
	}
	return []SummaryMetric{
		{Metric: "total_revenue", Value: s.TotalRevenue},
		{Metric: "total_transactions", Value: float64(s.TotalTransactions)},
		{Metric: "avg_transaction_value", Value: s.AvgTransactionValue},
		{Metric: "total_quantity_sold", Value: float64(s.TotalQuantitySold)},
		{Metric: "unique_products", Value: float64(s.UniqueProducts)},
		{Metric: "unique_categories", Value: float64(s.UniqueCategories)},
	}
}

// CategoryRevenue is one row of revenue grouped by category.
type CategoryRevenue struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
}

// RegionRevenue is one row of revenue grouped by region.
type RegionRevenue struct {
	Region      string  `json:"region"`
	TotalAmount float64 `json:"total_amount"`
}

// SegmentRevenue is one row of revenue grouped by customer segment.
type SegmentRevenue struct {
	CustomerSegment string  `json:"customer_segment"`
	TotalAmount     float64 `json:"total_amount"`
}

// DailyRevenue is revenue for one calendar day (YYYY-MM-DD).
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// MonthlyRevenue is revenue for one calendar month (YYYY-MM).
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// ProductRevenue is one row of revenue grouped by product name.
type ProductRevenue struct {
	ProductName string  `json:"product_name"`
	TotalAmount float64 `json:"total_amount"`
}

// CategoryPerformance is the multi-metric breakdown for one category.
// AvgTransactionValue is always Revenue / Transactions.
type CategoryPerformance struct {
	Category            string  `json:"category"`
	Revenue             float64 `json:"revenue"`
	UnitsSold           int     `json:"units_sold"`
	Transactions        int     `json:"transactions"`
	AvgPrice            float64 `json:"avg_price"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
}
