// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package analytics

import (
	"cmp"
	"slices"

	"github.com/tomtom215/salesdash/internal/models"
)

// Trend bucket label layouts.
const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

type groupTotal struct {
	key   string
	total float64
}

// accumulate sums total_amount per key, preserving first-seen order so the
// float additions happen in row order.
func accumulate(rows []models.SalesRecord, key func(*models.SalesRecord) string) []groupTotal {
	index := make(map[string]int)
	var groups []groupTotal
	for i := range rows {
		k := key(&rows[i])
		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, groupTotal{key: k})
		}
		groups[pos].total += rows[i].TotalAmount
	}
	return groups
}

// sumBy groups and sorts by total descending, key ascending on ties.
func sumBy(rows []models.SalesRecord, key func(*models.SalesRecord) string) []groupTotal {
	groups := accumulate(rows, key)
	sortDescending(groups, func(g groupTotal) (float64, string) { return g.total, g.key })
	return groups
}

// sumByAscendingKey groups and sorts by key ascending. Keys are
// zero-padded date labels, so lexical order is chronological.
func sumByAscendingKey(rows []models.SalesRecord, key func(*models.SalesRecord) string) []groupTotal {
	groups := accumulate(rows, key)
	slices.SortFunc(groups, func(a, b groupTotal) int { return cmp.Compare(a.key, b.key) })
	return groups
}

func sortDescending[T any](items []T, by func(T) (float64, string)) {
	slices.SortStableFunc(items, func(a, b T) int {
		av, ak := by(a)
		bv, bk := by(b)
		if c := cmp.Compare(bv, av); c != 0 {
			return c
		}
		return cmp.Compare(ak, bk)
	})
}
