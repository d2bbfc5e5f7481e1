// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/salesdash/internal/models"
)

const healthPingTimeout = 2 * time.Second

// Health godoc
// @Summary Service health
// @Description Reports store connectivity, uptime and the last successful store initialization.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ready := h.storeReady(r.Context())
	status := "healthy"
	if !ready {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:     status,
		Version:    Version,
		StoreReady: ready,
		Uptime:     time.Since(h.startTime).Seconds(),
	}
	if h.store != nil {
		health.StoreDriver = h.store.Driver()
	}
	if t := h.lastBootstrapTime(); !t.IsZero() {
		health.LastBootstrap = &t
	}
	if h.dims != nil {
		health.DimensionCacheHitRate = h.dims.HitRates()
	}
	respondSuccess(w, health, time.Now())
}

// HealthLive godoc
// @Summary Liveness probe
// @Tags Health
// @Success 200 {string} string "ok"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// HealthReady godoc
// @Summary Readiness probe
// @Description 200 when the fact store answers a ping, 503 otherwise.
// @Tags Health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if !h.storeReady(r.Context()) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (h *Handler) storeReady(ctx context.Context) bool {
	if h.store == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.store.Ping(ctx) == nil
}
