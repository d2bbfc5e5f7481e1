// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/salesdash/internal/bootstrap"
	"github.com/tomtom215/salesdash/internal/logging"
	"github.com/tomtom215/salesdash/internal/models"
)

// StoreRecreate godoc
// @Summary Delete and regenerate the fact store
// @Description Drops every table, regenerates synthetic data and reloads it. Only one recreate runs at a time.
// @Tags Store
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.BootstrapReport}
// @Failure 409 {object} models.APIResponse "A recreate is already running"
// @Failure 500 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /store/recreate [post]
func (h *Handler) StoreRecreate(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Fact store not configured", nil)
		return
	}
	if !h.recreateMu.TryLock() {
		respondError(w, r, http.StatusConflict, ErrCodeConflict, "Store recreation already in progress", nil)
		return
	}
	defer h.recreateMu.Unlock()

	start := time.Now()
	res, err := bootstrap.Run(r.Context(), h.store, bootstrap.Options{
		Records: h.cfg.Database.BootstrapRecords,
		Seed:    h.cfg.Database.Seed,
		Force:   true,
		Now:     h.now,
	}, bootstrap.LogReporter{})

	// Any partial load changes the dimension tables.
	if h.dims != nil {
		h.dims.Invalidate()
	}
	if err != nil {
		respondStoreError(w, r, "Failed to recreate the fact store", err)
		return
	}

	report := res.Report()
	if !res.Success() {
		logging.Ctx(r.Context()).Error().Interface("entities", report.Entities).Msg("Store recreation incomplete")
		respondAPIError(w, http.StatusInternalServerError, &models.APIError{
			Code:    ErrCodeDatabase,
			Message: "One or more entities failed to load",
			Details: map[string]interface{}{"report": report},
		})
		return
	}
	h.SetLastBootstrap(res.EndTime)
	respondSuccess(w, report, start)
}
