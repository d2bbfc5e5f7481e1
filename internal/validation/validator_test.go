// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package validation

import (
	"strings"
	"testing"
)

type testRequest struct {
	Range     string `query:"date_range" validate:"omitempty,date_range"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	N         int    `query:"n" validate:"min=1,max=1000"`
	Name      string `json:"name" validate:"required"`
	Plain     string `validate:"omitempty,oneof=a b"`
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input testRequest
	}{
		{"minimal", testRequest{N: 1, Name: "x"}},
		{"preset", testRequest{Range: "last_90_days", N: 10, Name: "x"}},
		{"custom with date", testRequest{Range: "custom", StartDate: "2024-05-01", N: 1000, Name: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     testRequest
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"unknown preset", testRequest{Range: "yesterday", N: 1, Name: "x"}, "date_range", "date_range", "date_range must be one of: last_30_days"},
		{"bad date", testRequest{StartDate: "05/01/2024", N: 1, Name: "x"}, "start_date", "datetime", "start_date must be a date in the format YYYY-MM-DD"},
		{"n too low", testRequest{N: 0, Name: "x"}, "n", "min", "n must be at least 1"},
		{"n too high", testRequest{N: 5000, Name: "x"}, "n", "max", "n must be at most 1000"},
		{"missing name", testRequest{N: 1}, "name", "required", "name is required"},
		{"struct field name", testRequest{N: 1, Name: "x", Plain: "c"}, "Plain", "oneof", "Plain must be one of: a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if len(verr.Fields) != 1 {
				t.Fatalf("expected 1 field error, got %d: %v", len(verr.Fields), verr)
			}
			f := verr.Fields[0]
			if f.Field != tt.wantField || f.Tag != tt.wantTag {
				t.Errorf("got field=%q tag=%q, want %q/%q", f.Field, f.Tag, tt.wantField, tt.wantTag)
			}
			if !strings.HasPrefix(f.Message, tt.wantMsg) {
				t.Errorf("message %q does not start with %q", f.Message, tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	single := ValidateStruct(&testRequest{N: 0, Name: "x"}).ToAPIError()
	if single.Code != ErrorCode || single.Details["field"] != "n" {
		t.Errorf("unexpected single error %+v", single)
	}

	multi := ValidateStruct(&testRequest{N: 0}).ToAPIError()
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("expected 2 field details, got %+v", multi.Details)
	}
	if !strings.Contains(multi.Message, "; ") {
		t.Errorf("expected joined message, got %q", multi.Message)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("unexpected empty message %q", empty.Message)
	}
}
