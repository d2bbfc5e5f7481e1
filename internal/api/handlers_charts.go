// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/salesdash/internal/charts"
	"github.com/tomtom215/salesdash/internal/models"
)

// ChartList godoc
// @Summary Names of the dashboard charts
// @Tags Charts
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]string}
// @Router /charts [get]
func (h *Handler) ChartList(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, charts.Names(), time.Now())
}

// Chart godoc
// @Summary Chart configuration for a dashboard preset
// @Description Empty views produce a placeholder chart with a "No data available" annotation.
// @Tags Charts
// @Produce json
// @Param name path string true "Chart name"
// @Param date_range query string false "Date range preset"
// @Success 200 {object} models.APIResponse{data=charts.Config}
// @Failure 404 {object} models.APIResponse
// @Router /charts/{name} [get]
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !isChartName(name) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Unknown chart", nil)
		return
	}
	executeView(h, w, r, "chart "+name, func(ctx context.Context, f models.SalesFilter) (*charts.Config, error) {
		return h.presets.Build(ctx, name, f)
	})
}

// MetricCards godoc
// @Summary Headline metric cards
// @Tags Charts
// @Produce json
// @Param date_range query string false "Date range preset"
// @Success 200 {object} models.APIResponse{data=[]charts.MetricCard}
// @Router /charts/cards [get]
func (h *Handler) MetricCards(w http.ResponseWriter, r *http.Request) {
	executeView(h, w, r, "metric cards", h.presets.Cards)
}

func isChartName(name string) bool {
	return slices.Contains(charts.Names(), name)
}
