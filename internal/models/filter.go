// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package models

import (
	"slices"
	"time"
)

// SalesFilter restricts which fact rows take part in a derived view.
//
// Every field is optional and independent:
//   - StartDate/EndDate: inclusive bounds on TransactionDate; nil means unbounded
//   - Categories/Regions/Segments: allow-lists; nil means unrestricted
//
// A non-nil but empty allow-list matches nothing. Callers that collect
// selections from a UI must convert "nothing selected" to nil themselves.
type SalesFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Categories []string
	Regions    []string
	Segments   []string
}

// WithDateRangeOnly returns a copy of the filter that keeps the date bounds
// and drops every allow-list.
func (f SalesFilter) WithDateRangeOnly() SalesFilter {
	return SalesFilter{StartDate: f.StartDate, EndDate: f.EndDate}
}

// MatchesNothing reports whether an allow-list is present but empty.
func (f SalesFilter) MatchesNothing() bool {
	return isEmptyAllowList(f.Categories) || isEmptyAllowList(f.Regions) || isEmptyAllowList(f.Segments)
}

// Matches reports whether a record satisfies the filter.
func (f SalesFilter) Matches(r *SalesRecord) bool {
	if f.StartDate != nil && r.TransactionDate.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && r.TransactionDate.After(*f.EndDate) {
		return false
	}
	return allowed(f.Categories, r.Category) &&
		allowed(f.Regions, r.Region) &&
		allowed(f.Segments, r.CustomerSegment)
}

func isEmptyAllowList(list []string) bool {
	return list != nil && len(list) == 0
}

func allowed(list []string, value string) bool {
	if list == nil {
		return true
	}
	return slices.Contains(list, value)
}
