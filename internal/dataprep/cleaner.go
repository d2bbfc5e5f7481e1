// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package dataprep

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tomtom215/salesdash/internal/logging"
	"github.com/tomtom215/salesdash/internal/models"
)

// rawKey is the comparable form of a RawSale used for duplicate detection.
// Missing fields compare equal only to other missing fields.
type rawKey struct {
	date                               time.Time
	category, product, region, segment string
	quantity                           int
	price, total                       float64
	hasDate, hasCategory, hasProduct   bool
	hasRegion, hasSegment, hasQty      bool
	hasPrice, hasTotal                 bool
}

func keyOf(r *RawSale) rawKey {
	var k rawKey
	if r.TransactionDate != nil {
		k.date, k.hasDate = r.TransactionDate.UTC(), true
	}
	if r.Category != nil {
		k.category, k.hasCategory = *r.Category, true
	}
	if r.ProductName != nil {
		k.product, k.hasProduct = *r.ProductName, true
	}
	if r.Region != nil {
		k.region, k.hasRegion = *r.Region, true
	}
	if r.CustomerSegment != nil {
		k.segment, k.hasSegment = *r.CustomerSegment, true
	}
	if r.Quantity != nil {
		k.quantity, k.hasQty = *r.Quantity, true
	}
	if r.UnitPrice != nil {
		k.price, k.hasPrice = *r.UnitPrice, true
	}
	if r.TotalAmount != nil {
		k.total, k.hasTotal = *r.TotalAmount, true
	}
	return k
}

// CleanSales validates and normalizes raw rows into fact records, keeping
// input order. The result is never nil.
func CleanSales(raw []RawSale) []models.SalesRecord {
	title := cases.Title(language.Und)
	seen := make(map[rawKey]struct{}, len(raw))
	out := make([]models.SalesRecord, 0, len(raw))

	for i := range raw {
		r := &raw[i]
		k := keyOf(r)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		if r.TransactionDate == nil || r.Category == nil || r.ProductName == nil || r.Region == nil {
			continue
		}
		if r.Quantity == nil || *r.Quantity <= 0 || r.UnitPrice == nil || !positiveFinite(*r.UnitPrice) {
			continue
		}
		if r.TotalAmount != nil && !positiveFinite(*r.TotalAmount) {
			continue
		}

		segment := models.UnknownSegment
		if r.CustomerSegment != nil {
			segment = *r.CustomerSegment
		}

		rec := models.SalesRecord{
			TransactionDate: r.TransactionDate.UTC(),
			Category:        normalizeLabel(title, *r.Category),
			ProductName:     strings.TrimSpace(*r.ProductName),
			Quantity:        *r.Quantity,
			UnitPrice:       *r.UnitPrice,
			Region:          normalizeLabel(title, *r.Region),
			CustomerSegment: normalizeLabel(title, segment),
		}
		if rec.Category == "" || rec.ProductName == "" || rec.Region == "" {
			continue
		}
		if rec.CustomerSegment == "" {
			rec.CustomerSegment = models.UnknownSegment
		}
		rec.TotalAmount = rec.ComputedTotal()
		if !positiveFinite(rec.TotalAmount) {
			continue
		}
		out = append(out, rec)
	}

	logging.Info().
		Int("rows_in", len(raw)).
		Int("rows_out", len(out)).
		Int("dropped", len(raw)-len(out)).
		Msg("Cleaned sales data")
	return out
}

// positiveFinite rejects NaN and both infinities along with v <= 0.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func normalizeLabel(title cases.Caser, s string) string {
	return title.String(strings.TrimSpace(s))
}
