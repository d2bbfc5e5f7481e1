// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/salesdash/internal/bootstrap"
	"github.com/tomtom215/salesdash/internal/charts"
	"github.com/tomtom215/salesdash/internal/config"
	"github.com/tomtom215/salesdash/internal/models"
)

// Version is reported by the health endpoint.
var Version = "dev"

// Analytics is the aggregation engine as seen by the handlers.
type Analytics interface {
	charts.Source
}

// Dimensions serves cached dimension tables.
type Dimensions interface {
	Regions(ctx context.Context) ([]models.RegionInfo, error)
	Categories(ctx context.Context) ([]models.CategoryInfo, error)
	Invalidate()
	HitRates() map[string]float64
}

// Store is the fact store lifecycle surface the handlers need.
type Store interface {
	bootstrap.Store
	Ping(ctx context.Context) error
	Driver() string
}

// Handler holds the dependencies of every endpoint.
type Handler struct {
	cfg       *config.Config
	analytics Analytics
	dims      Dimensions
	store     Store
	presets   *charts.Presets
	startTime time.Time

	// recreateMu serializes store recreation; TryLock rejects overlap.
	recreateMu    sync.Mutex
	lastBootstrap atomic.Pointer[time.Time]

	// now is replaced in tests.
	now func() time.Time
}

// NewHandler wires the handler. store may be nil, in which case health
// reports not ready and store recreation answers 503.
func NewHandler(cfg *config.Config, analytics Analytics, dims Dimensions, store Store) *Handler {
	return &Handler{
		cfg:       cfg,
		analytics: analytics,
		dims:      dims,
		store:     store,
		presets:   charts.NewPresets(analytics, dims, cfg.API.DailyTrendPoints),
		startTime: time.Now(),
		now:       time.Now,
	}
}

// SetLastBootstrap records when the store was last initialized.
func (h *Handler) SetLastBootstrap(t time.Time) {
	h.lastBootstrap.Store(&t)
}

func (h *Handler) lastBootstrapTime() time.Time {
	if t := h.lastBootstrap.Load(); t != nil {
		return *t
	}
	return time.Time{}
}
