// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"net/http"
	"time"
)

// DimensionRegions godoc
// @Summary Region dimension table
// @Tags Dimensions
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.RegionInfo}
// @Failure 500 {object} models.APIResponse
// @Router /dimensions/regions [get]
func (h *Handler) DimensionRegions(w http.ResponseWriter, r *http.Request) {
	if h.dims == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Fact store not configured", nil)
		return
	}
	start := time.Now()
	regions, err := h.dims.Regions(r.Context())
	if err != nil {
		respondStoreError(w, r, "Failed to load regions", err)
		return
	}
	respondSuccess(w, regions, start)
}

// DimensionCategories godoc
// @Summary Category dimension table
// @Tags Dimensions
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.CategoryInfo}
// @Failure 500 {object} models.APIResponse
// @Router /dimensions/categories [get]
func (h *Handler) DimensionCategories(w http.ResponseWriter, r *http.Request) {
	if h.dims == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Fact store not configured", nil)
		return
	}
	start := time.Now()
	categories, err := h.dims.Categories(r.Context())
	if err != nil {
		respondStoreError(w, r, "Failed to load categories", err)
		return
	}
	respondSuccess(w, categories, start)
}
