// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/salesdash/internal/logging"
)

var (
	// ErrStoreClosed is returned by operations on a closed DB.
	ErrStoreClosed = errors.New("fact store is closed")

	// ErrUnsupportedDriver is returned by New for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported fact store driver")
)

// closeWithLog closes a resource and logs a failure at warn.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource on an error path where the Close error is not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
