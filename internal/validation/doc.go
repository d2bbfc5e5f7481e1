// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

// Package validation validates API request structs with go-playground/validator.
//
// A single validator instance is shared; it caches struct metadata after the
// first use. Error field names follow the `query` tag, so messages name the
// query parameter a caller actually sent. The custom `date_range` tag accepts
// the date-range preset names.
//
//	type FilterRequest struct {
//	    Range string `query:"date_range" validate:"omitempty,date_range"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code, apiErr.Message
//	}
package validation
