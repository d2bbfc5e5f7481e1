// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/salesdash/internal/models"
)

// requireAnalytics writes 503 and returns false when no engine is wired.
func (h *Handler) requireAnalytics(w http.ResponseWriter, r *http.Request) bool {
	if h.analytics == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Fact store not configured", nil)
		return false
	}
	return true
}

// executeView computes one derived view through the common handler flow:
// filter parsing, query, error mapping and the success envelope.
func executeView[T any](
	h *Handler,
	w http.ResponseWriter,
	r *http.Request,
	view string,
	query func(ctx context.Context, filter models.SalesFilter) (T, error),
) {
	if !h.requireAnalytics(w, r) {
		return
	}

	start := time.Now()
	filter, verr := h.parseFilter(r)
	if verr != nil {
		respondValidation(w, verr)
		return
	}

	data, err := query(r.Context(), filter)
	if err != nil {
		respondStoreError(w, r, fmt.Sprintf("Failed to compute %s", view), err)
		return
	}
	respondSuccess(w, data, start)
}
