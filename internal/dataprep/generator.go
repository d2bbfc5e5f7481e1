// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package dataprep

import (
	"math"
	"math/rand/v2"
	"time"
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed int64 = 42

// HistoryDays is the width of the window transaction dates are drawn from.
const HistoryDays = 730

const (
	minQuantity  = 1
	maxQuantity  = 20
	minUnitPrice = 10.0
	maxUnitPrice = 500.0
)

// Catalog lists products per category, in a fixed order.
var Catalog = []struct {
	Category string
	Products []string
}{
	{"Electronics", []string{"Laptop", "Smartphone", "Tablet", "Headphones", "Camera"}},
	{"Clothing", []string{"T-Shirt", "Jeans", "Jacket", "Sneakers", "Dress"}},
	{"Food & Beverage", []string{"Coffee", "Tea", "Snacks", "Bottled Water", "Energy Drink"}},
	{"Home & Garden", []string{"Plant", "Furniture", "Cookware", "Bedding", "Decor"}},
	{"Sports & Outdoors", []string{"Yoga Mat", "Dumbbell", "Bicycle", "Tent", "Running Shoes"}},
}

// Regions lists the sales regions.
var Regions = []string{
	"North America", "Europe", "Asia Pacific", "Africa",
	"Latin America", "Middle East", "Oceania",
}

// Segments lists the customer segments.
var Segments = []string{"Consumer", "Corporate", "Home Office"}

// RawSale is a sales row before cleaning. Every field may be missing.
type RawSale struct {
	TransactionDate *time.Time
	Category        *string
	ProductName     *string
	Quantity        *int
	UnitPrice       *float64
	TotalAmount     *float64
	Region          *string
	CustomerSegment *string
}

// Generator produces deterministic synthetic sales. It is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	s := uint64(seed) //nolint:gosec // seed bits are reinterpreted, not range checked
	return &Generator{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// GenerateSales returns n rows dated within HistoryDays before now.
// Dates keep the time of day of now, in UTC.
func (g *Generator) GenerateSales(n int, now time.Time) []RawSale {
	if n <= 0 {
		return []RawSale{}
	}
	start := now.UTC().AddDate(0, 0, -HistoryDays)
	out := make([]RawSale, 0, n)
	for i := 0; i < n; i++ {
		entry := Catalog[g.rng.IntN(len(Catalog))]
		category := entry.Category
		product := entry.Products[g.rng.IntN(len(entry.Products))]
		region := Regions[g.rng.IntN(len(Regions))]
		segment := Segments[g.rng.IntN(len(Segments))]
		quantity := minQuantity + g.rng.IntN(maxQuantity-minQuantity+1)
		price := roundCents(minUnitPrice + g.rng.Float64()*(maxUnitPrice-minUnitPrice))
		total := roundCents(float64(quantity) * price)
		date := start.AddDate(0, 0, g.rng.IntN(HistoryDays+1))

		out = append(out, RawSale{
			TransactionDate: &date,
			Category:        &category,
			ProductName:     &product,
			Quantity:        &quantity,
			UnitPrice:       &price,
			TotalAmount:     &total,
			Region:          &region,
			CustomerSegment: &segment,
		})
	}
	return out
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
