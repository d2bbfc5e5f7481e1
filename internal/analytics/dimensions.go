// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package analytics

import (
	"context"
	"time"

	"github.com/tomtom215/salesdash/internal/cache"
	"github.com/tomtom215/salesdash/internal/metrics"
	"github.com/tomtom215/salesdash/internal/models"
)

// DimensionStore provides the region and category dimension tables.
type DimensionStore interface {
	RegionInfo(ctx context.Context) ([]models.RegionInfo, error)
	CategoryInfo(ctx context.Context) ([]models.CategoryInfo, error)
}

const (
	regionsKey    = "dimensions:regions"
	categoriesKey = "dimensions:categories"
)

// Dimensions serves dimension tables through a TTL cache. Dimension rows
// only change on a full reload, after which Invalidate must be called.
type Dimensions struct {
	store      DimensionStore
	regions    *cache.Cache[[]models.RegionInfo]
	categories *cache.Cache[[]models.CategoryInfo]
}

// NewDimensions caches store lookups for ttl.
func NewDimensions(store DimensionStore, ttl time.Duration) *Dimensions {
	return &Dimensions{
		store:      store,
		regions:    cache.New[[]models.RegionInfo](ttl),
		categories: cache.New[[]models.CategoryInfo](ttl),
	}
}

// Regions returns the region dimension table.
func (d *Dimensions) Regions(ctx context.Context) ([]models.RegionInfo, error) {
	regions, hit, err := d.regions.GetOrLoad(regionsKey, func() ([]models.RegionInfo, error) {
		return d.store.RegionInfo(ctx)
	})
	recordLookup(hit)
	return regions, err
}

// Categories returns the category dimension table.
func (d *Dimensions) Categories(ctx context.Context) ([]models.CategoryInfo, error) {
	categories, hit, err := d.categories.GetOrLoad(categoriesKey, func() ([]models.CategoryInfo, error) {
		return d.store.CategoryInfo(ctx)
	})
	recordLookup(hit)
	return categories, err
}

// Invalidate drops cached dimension tables.
func (d *Dimensions) Invalidate() {
	d.regions.Clear()
	d.categories.Clear()
}

// HitRates returns the cache hit percentage of each dimension table.
func (d *Dimensions) HitRates() map[string]float64 {
	return map[string]float64{
		"regions":    d.regions.HitRate(),
		"categories": d.categories.HitRate(),
	}
}

// Sweeper is a background cleanup loop; it satisfies suture.Service.
type Sweeper interface {
	Serve(ctx context.Context) error
}

// Sweepers returns the cache cleanup loops for supervision.
func (d *Dimensions) Sweepers() []Sweeper {
	return []Sweeper{d.regions, d.categories}
}

func recordLookup(hit bool) {
	if hit {
		metrics.DimensionCacheLookups.WithLabelValues("hit").Inc()
	} else {
		metrics.DimensionCacheLookups.WithLabelValues("miss").Inc()
	}
}
