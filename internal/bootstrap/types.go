// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package bootstrap

import (
	"context"
	"time"

	"github.com/tomtom215/salesdash/internal/models"
)

// Entity names reported during the load step.
const (
	EntitySales      = "sales"
	EntityRegions    = "regions"
	EntityCategories = "categories"
)

// TotalSteps is the number of steps Run reports.
const TotalSteps = 6

// Store is the subset of the fact store that initialization writes to.
type Store interface {
	Exists(ctx context.Context) (bool, error)
	InitSchema(ctx context.Context) error
	Reset(ctx context.Context) error
	InsertSales(ctx context.Context, records []models.SalesRecord) (int, error)
	InsertRegions(ctx context.Context, regions []models.RegionInfo) (int, error)
	InsertCategories(ctx context.Context, categories []models.CategoryInfo) (int, error)
}

// ProgressReporter receives step and load notifications.
type ProgressReporter interface {
	// Step is called at the start of each step, n counting from 1.
	Step(n, total int, msg string)

	// Entity is called once per entity after its load attempt.
	Entity(name string, ok bool, rows int)
}

// Options controls a bootstrap run.
type Options struct {
	// Records is the number of sales rows to generate.
	Records int

	// Seed feeds the generator. Zero selects dataprep.DefaultSeed.
	Seed int64

	// Force recreates the tables even when the store already exists.
	Force bool

	// Now anchors generated transaction dates. Nil means time.Now.
	Now func() time.Time
}

// Result holds statistics about a bootstrap run.
type Result struct {
	// Skipped is set when the store existed and Force was not requested.
	Skipped bool

	// Entities maps each entity name to whether its load committed.
	Entities map[string]bool

	// RowsLoaded maps each entity name to the rows it committed.
	RowsLoaded map[string]int

	// Generated is the number of raw sales rows produced.
	Generated int

	// Dropped is the number of raw rows the cleaner rejected.
	Dropped int

	StartTime time.Time
	EndTime   time.Time
}

// Duration returns how long the run took.
func (r *Result) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// Success reports whether every entity loaded. A skipped run counts as success.
func (r *Result) Success() bool {
	if r.Skipped {
		return true
	}
	for _, name := range []string{EntitySales, EntityRegions, EntityCategories} {
		if !r.Entities[name] {
			return false
		}
	}
	return true
}

// TotalRows returns the sum of committed rows across entities.
func (r *Result) TotalRows() int {
	total := 0
	for _, n := range r.RowsLoaded {
		total += n
	}
	return total
}

// Report converts the result into its API representation.
func (r *Result) Report() models.BootstrapReport {
	return models.BootstrapReport{
		Skipped:         r.Skipped,
		Success:         r.Success(),
		Entities:        r.Entities,
		RowsLoaded:      r.RowsLoaded,
		RowsDropped:     r.Dropped,
		DurationSeconds: r.Duration().Seconds(),
	}
}
