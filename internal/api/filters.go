// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/salesdash/internal/models"
	"github.com/tomtom215/salesdash/internal/validation"
)

const dateLayout = "2006-01-02"

// customRangeDefaultDays is the lookback used when a custom range omits start_date.
const customRangeDefaultDays = 90

// presetDays maps rolling date-range presets to their lookback in days.
var presetDays = map[string]int{
	"last_30_days":  30,
	"last_90_days":  90,
	"last_6_months": 180,
	"last_year":     365,
}

// FilterRequest carries the sidebar filter query parameters.
type FilterRequest struct {
	DateRange  string `query:"date_range" validate:"omitempty,date_range"`
	StartDate  string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Categories string `query:"categories" validate:"max=2000"`
	Regions    string `query:"regions" validate:"max=2000"`
	Segments   string `query:"segments" validate:"max=2000"`
}

// TopProductsRequest carries the ranking size.
type TopProductsRequest struct {
	N int `query:"n" validate:"gte=1,lte=1000"`
}

func filterRequestFromQuery(r *http.Request) FilterRequest {
	q := r.URL.Query()
	return FilterRequest{
		DateRange:  q.Get("date_range"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
		Categories: q.Get("categories"),
		Regions:    q.Get("regions"),
		Segments:   q.Get("segments"),
	}
}

// parseFilter validates the filter parameters and resolves them against now.
func (h *Handler) parseFilter(r *http.Request) (models.SalesFilter, *validation.RequestValidationError) {
	req := filterRequestFromQuery(r)
	if req.DateRange == "" {
		req.DateRange = h.cfg.API.DefaultRange
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return models.SalesFilter{}, verr
	}

	filter := models.SalesFilter{
		Categories: splitList(req.Categories),
		Regions:    splitList(req.Regions),
		Segments:   splitList(req.Segments),
	}

	now := h.now()
	switch req.DateRange {
	case "all_time":
	case "custom":
		start, end, verr := customRange(req.StartDate, req.EndDate, now)
		if verr != nil {
			return models.SalesFilter{}, verr
		}
		filter.StartDate, filter.EndDate = &start, &end
	default:
		start := now.AddDate(0, 0, -presetDays[req.DateRange])
		end := now
		filter.StartDate, filter.EndDate = &start, &end
	}
	return filter, nil
}

// customRange resolves explicit dates to start of day and end of day in now's location.
func customRange(startStr, endStr string, now time.Time) (time.Time, time.Time, *validation.RequestValidationError) {
	loc := now.Location()
	start := startOfDay(now.AddDate(0, 0, -customRangeDefaultDays))
	end := endOfDay(now)

	if startStr != "" {
		d, err := time.ParseInLocation(dateLayout, startStr, loc)
		if err != nil {
			return start, end, fieldError("start_date", "datetime", startStr, "start_date must be a date in the format YYYY-MM-DD")
		}
		start = d
	}
	if endStr != "" {
		d, err := time.ParseInLocation(dateLayout, endStr, loc)
		if err != nil {
			return start, end, fieldError("end_date", "datetime", endStr, "end_date must be a date in the format YYYY-MM-DD")
		}
		end = endOfDay(d)
	}
	if start.After(end) {
		return start, end, fieldError("start_date", "ltefield", startStr, "start_date must not be after end_date")
	}
	return start, end, nil
}

func fieldError(field, tag string, value interface{}, message string) *validation.RequestValidationError {
	return &validation.RequestValidationError{Fields: []validation.FieldError{{
		Field: field, Tag: tag, Value: value, Message: message,
	}}}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// splitList parses a comma-separated allow-list. Absent or blank means unrestricted.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// parseTopN reads ?n=, falling back to fallback when absent.
func parseTopN(r *http.Request, fallback int) (int, *validation.RequestValidationError) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fieldError("n", "number", raw, "n must be an integer")
	}
	req := TopProductsRequest{N: n}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return 0, verr
	}
	return n, nil
}

func respondValidation(w http.ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondAPIError(w, http.StatusBadRequest, &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	})
}
