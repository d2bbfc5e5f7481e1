// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package models

import (
	"math"
	"time"
)

// UnknownSegment is the customer segment assigned to rows loaded without one.
const UnknownSegment = "Unknown"

// SalesRecord represents a single sales transaction in the fact table.
//
// ID and CreatedAt are assigned by the store on insert and never change.
// TotalAmount is always Quantity * UnitPrice; the cleaner recomputes it
// before load and nothing downstream trusts a supplied total.
type SalesRecord struct {
	ID              int64     `json:"id"`
	TransactionDate time.Time `json:"transaction_date"`
	Category        string    `json:"category"`
	ProductName     string    `json:"product_name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	TotalAmount     float64   `json:"total_amount"`
	Region          string    `json:"region"`
	CustomerSegment string    `json:"customer_segment"`
	CreatedAt       time.Time `json:"created_at"`
}

// ComputedTotal returns Quantity * UnitPrice.
func (r *SalesRecord) ComputedTotal() float64 {
	return float64(r.Quantity) * r.UnitPrice
}

// IsConsistent reports whether the row satisfies the fact-table invariants:
// positive quantity and price, and a total equal to quantity times price.
func (r *SalesRecord) IsConsistent() bool {
	if r.Quantity <= 0 || r.UnitPrice <= 0 {
		return false
	}
	return math.Abs(r.TotalAmount-r.ComputedTotal()) < 1e-9
}

// RegionInfo is a row of the region dimension table.
// Population and AvgIncome are optional.
type RegionInfo struct {
	ID         int64    `json:"id"`
	RegionName string   `json:"region_name"`
	Country    string   `json:"country"`
	Population *int64   `json:"population,omitempty"`
	AvgIncome  *float64 `json:"avg_income,omitempty"`
}

// CategoryInfo is a row of the product category dimension table.
// MarginPercentage is expected in 0-100 but not enforced.
type CategoryInfo struct {
	ID               int64    `json:"id"`
	CategoryName     string   `json:"category_name"`
	Description      string   `json:"description"`
	MarginPercentage *float64 `json:"margin_percentage,omitempty"`
}
