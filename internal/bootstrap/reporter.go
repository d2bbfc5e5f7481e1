// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package bootstrap

import (
	"fmt"
	"io"

	"github.com/tomtom215/salesdash/internal/logging"
)

type nopReporter struct{}

func (nopReporter) Step(int, int, string)    {}
func (nopReporter) Entity(string, bool, int) {}

// LogReporter writes progress to the structured logger.
type LogReporter struct{}

// Step logs the step at info level.
func (LogReporter) Step(n, total int, msg string) {
	logging.Info().Int("step", n).Int("total", total).Msg(msg)
}

// Entity logs the load outcome, at error level when it failed.
func (LogReporter) Entity(name string, ok bool, rows int) {
	if ok {
		logging.Info().Str("entity", name).Int("rows", rows).Msg("Entity loaded")
		return
	}
	logging.Error().Str("entity", name).Msg("Entity load failed")
}

// ConsoleReporter prints human-readable progress, one line per event.
type ConsoleReporter struct {
	W io.Writer
}

// Step prints "[n/total] msg...".
func (c ConsoleReporter) Step(n, total int, msg string) {
	_, _ = fmt.Fprintf(c.W, "[%d/%d] %s...\n", n, total, msg)
}

// Entity prints a check or cross mark for the entity.
func (c ConsoleReporter) Entity(name string, ok bool, rows int) {
	if ok {
		_, _ = fmt.Fprintf(c.W, "  ✓ %s: %d rows loaded\n", name, rows)
		return
	}
	_, _ = fmt.Fprintf(c.W, "  ✗ %s: load failed\n", name)
}
