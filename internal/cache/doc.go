// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

// Package cache provides a small thread-safe TTL cache.
//
// Salesdash caches only the dimension tables (regions, categories). Derived
// views are always recomputed from the fact store.
//
//	c := cache.New[[]models.RegionInfo](10 * time.Minute)
//	regions, err := c.GetOrLoad("regions", func() ([]models.RegionInfo, error) {
//	    return store.RegionInfo(ctx)
//	})
//
// Expired entries are dropped lazily on Get and by Serve, which runs a
// periodic sweep until its context is cancelled and can be added to a
// suture supervisor.
package cache
