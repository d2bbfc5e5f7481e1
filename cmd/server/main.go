// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

// Package main is the entry point for the Salesdash API server.
//
// Startup order:
//
//  1. Configuration: defaults, config.yaml, environment (Koanf v2)
//  2. Logging: zerolog, bridged to slog for the supervisor
//  3. Fact store: DuckDB or MySQL, initialized with synthetic data when absent
//  4. Analytics: engine behind a circuit breaker, cached dimension tables
//  5. HTTP: chi router with Prometheus metrics and Swagger UI
//  6. Supervisor tree: cache sweepers and the HTTP server
//
// SIGINT and SIGTERM cancel the tree; in-flight requests drain for up to the
// server timeout.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/salesdash/docs" // swagger spec
	"github.com/tomtom215/salesdash/internal/analytics"
	"github.com/tomtom215/salesdash/internal/api"
	"github.com/tomtom215/salesdash/internal/bootstrap"
	"github.com/tomtom215/salesdash/internal/config"
	"github.com/tomtom215/salesdash/internal/database"
	"github.com/tomtom215/salesdash/internal/logging"
	"github.com/tomtom215/salesdash/internal/supervisor"
	"github.com/tomtom215/salesdash/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("driver", cfg.Database.Driver).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Salesdash")

	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open fact store")
	}
	if err := run(cfg, db); err != nil {
		logging.Error().Err(err).Msg("Salesdash stopped with error")
		closeStore(db)
		os.Exit(1)
	}
	closeStore(db)
	logging.Info().Msg("Salesdash stopped")
}

func run(cfg *config.Config, db *database.DB) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	handler, dims := wire(cfg, db)

	if cfg.Database.BootstrapOnStart {
		res, err := bootstrap.Run(ctx, db, bootstrap.Options{
			Records: cfg.Database.BootstrapRecords,
			Seed:    cfg.Database.Seed,
		}, bootstrap.LogReporter{})
		if err != nil {
			return fmt.Errorf("initialize fact store: %w", err)
		}
		if !res.Skipped {
			if !res.Success() {
				logging.Warn().Interface("entities", res.Entities).Msg("Fact store initialized with failures")
			}
			handler.SetLastBootstrap(res.EndTime)
		}
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.Timeout,
	})
	for _, sweeper := range dims.Sweepers() {
		tree.AddDataService(sweeper)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(handler).SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      2 * cfg.Server.Timeout,
		IdleTimeout:       2 * time.Minute,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.Timeout))

	logging.Info().Str("addr", addr).Msg("Starting supervisor tree")
	err := tree.Serve(ctx)

	if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// wire builds the read path: breaker-guarded store, engine, dimensions and handler.
func wire(cfg *config.Config, db *database.DB) (*api.Handler, *analytics.Dimensions) {
	var reader database.Reader = db
	if cfg.Breaker.Enabled {
		reader = database.NewCircuitBreakerStore(db, &cfg.Breaker)
	}
	engine := analytics.NewEngine(reader)
	dims := analytics.NewDimensions(reader, cfg.Cache.DimensionTTL)
	return api.NewHandler(cfg, engine, dims, db), dims
}

func closeStore(db *database.DB) {
	if err := db.Close(); err != nil {
		logging.Error().Err(err).Msg("Failed to close fact store")
	}
}
