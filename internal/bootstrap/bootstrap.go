// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/salesdash/internal/dataprep"
	"github.com/tomtom215/salesdash/internal/logging"
	"github.com/tomtom215/salesdash/internal/metrics"
	"github.com/tomtom215/salesdash/internal/models"
)

// Run initializes store with freshly generated data. A nil reporter
// discards progress. Errors are returned only for failures before the load
// step; entity load failures are recorded in the Result.
func Run(ctx context.Context, store Store, opts Options, reporter ProgressReporter) (*Result, error) {
	if reporter == nil {
		reporter = nopReporter{}
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = dataprep.DefaultSeed
	}

	res := &Result{
		Entities:   map[string]bool{},
		RowsLoaded: map[string]int{},
		StartTime:  time.Now(),
	}
	defer func() { res.EndTime = time.Now() }()

	var exists bool
	err := step(reporter, 1, "Checking for an existing store", "check", func() error {
		var err error
		exists, err = store.Exists(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("check store: %w", err)
	}
	if exists && !opts.Force {
		res.Skipped = true
		logging.Info().Msg("Store already initialized, skipping bootstrap")
		return res, nil
	}

	err = step(reporter, 2, "Creating tables", "schema", func() error {
		if exists {
			return store.Reset(ctx)
		}
		return store.InitSchema(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}

	var raw []dataprep.RawSale
	runStep(reporter, 3, fmt.Sprintf("Generating %d sales records", opts.Records), "generate", func() {
		raw = dataprep.NewGenerator(seed).GenerateSales(opts.Records, now())
	})
	res.Generated = len(raw)

	var regions []models.RegionInfo
	var categories []models.CategoryInfo
	runStep(reporter, 4, "Generating region and category data", "dimensions", func() {
		regions = dataprep.RegionFixtures()
		categories = dataprep.CategoryFixtures()
	})

	var sales []models.SalesRecord
	runStep(reporter, 5, "Cleaning sales data", "clean", func() {
		sales = dataprep.CleanSales(raw)
	})
	res.Dropped = len(raw) - len(sales)

	runStep(reporter, 6, "Loading data into the store", "load", func() {
		load(ctx, res, reporter, EntitySales, func() (int, error) { return store.InsertSales(ctx, sales) })
		load(ctx, res, reporter, EntityRegions, func() (int, error) { return store.InsertRegions(ctx, regions) })
		load(ctx, res, reporter, EntityCategories, func() (int, error) { return store.InsertCategories(ctx, categories) })
	})

	logging.Info().
		Bool("success", res.Success()).
		Int("rows_loaded", res.TotalRows()).
		Int("rows_dropped", res.Dropped).
		Dur("duration", res.Duration()).
		Msg("Bootstrap complete")
	return res, nil
}

// step runs a fallible step. Steps that cannot fail use runStep.
func step(reporter ProgressReporter, n int, msg, name string, fn func() error) error {
	var err error
	runStep(reporter, n, msg, name, func() { err = fn() })
	return err
}

// runStep reports step n and records its duration.
func runStep(reporter ProgressReporter, n int, msg, name string, fn func()) {
	reporter.Step(n, TotalSteps, msg)
	start := time.Now()
	fn()
	metrics.RecordBootstrapStep(name, time.Since(start))
}

func load(ctx context.Context, res *Result, reporter ProgressReporter, entity string, insert func() (int, error)) {
	rows, err := insert()
	ok := err == nil
	if !ok {
		logging.Ctx(ctx).Error().Err(err).Str("entity", entity).Msg("Failed to load entity")
		rows = 0
	}
	res.Entities[entity] = ok
	res.RowsLoaded[entity] = rows
	reporter.Entity(entity, ok, rows)
}
