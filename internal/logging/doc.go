// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

// Package logging provides the process-wide zerolog logger for Salesdash.
//
// All packages log through the global helpers so that level and format are
// configured once from LOG_LEVEL, LOG_FORMAT and LOG_CALLER:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("rows", n).Msg("Sales loaded")
//	logging.Error().Err(err).Str("entity", "regions").Msg("Load failed")
//
// Request handlers log through Ctx so the request ID set by the HTTP
// middleware is attached automatically:
//
//	logging.Ctx(r.Context()).Warn().Msg("Unknown date preset")
//
// NewSlogLogger bridges the logger into libraries that expect *slog.Logger,
// such as the suture supervisor hooks.
//
// Always terminate an event chain with Msg or Send, otherwise nothing is
// written.
package logging
