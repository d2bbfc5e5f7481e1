// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

// Command initdb creates the fact store and loads synthetic sales data.
//
//	initdb [-records 5000] [-seed 42] [-force]
//
// Without -force an existing store is left untouched. Store location and
// driver come from the same configuration as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/salesdash/internal/bootstrap"
	"github.com/tomtom215/salesdash/internal/config"
	"github.com/tomtom215/salesdash/internal/database"
	"github.com/tomtom215/salesdash/internal/logging"
)

const defaultRecords = 5000

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("initdb", flag.ContinueOnError)
	fs.SetOutput(out)
	records := fs.Int("records", defaultRecords, "number of sales records to generate")
	force := fs.Bool("force", false, "drop and recreate an existing store")
	seed := fs.Int64("seed", 0, "generator seed (0 uses the configured seed)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *records < 1 {
		fmt.Fprintln(out, "records must be at least 1")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "configuration: %v\n", err)
		return 1
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if *seed == 0 {
		*seed = cfg.Database.Seed
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		fmt.Fprintf(out, "open store: %v\n", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close fact store")
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(out, "Initializing %s store\n", db.Driver())
	res, err := bootstrap.Run(ctx, db, bootstrap.Options{
		Records: *records,
		Seed:    *seed,
		Force:   *force,
	}, bootstrap.ConsoleReporter{W: out})
	if err != nil {
		fmt.Fprintf(out, "✗ Initialization failed: %v\n", err)
		return 1
	}

	switch {
	case res.Skipped:
		fmt.Fprintln(out, "Store already exists; use -force to recreate it.")
	case res.Success():
		fmt.Fprintf(out, "✓ Loaded %d rows in %s (%d raw rows dropped by cleaning)\n",
			res.TotalRows(), res.Duration().Round(time.Millisecond), res.Dropped)
	default:
		fmt.Fprintln(out, "✗ Some entities failed to load; see the log for details.")
		return 1
	}
	return 0
}
