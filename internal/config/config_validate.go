// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	if err := c.validateExport(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case DriverDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DB_DRIVER=duckdb")
		}
	case DriverMySQL:
		if c.Database.DSN == "" {
			return fmt.Errorf("MYSQL_DSN is required when DB_DRIVER=mysql")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be one of: %s, %s", DriverDuckDB, DriverMySQL)
	}

	if c.Database.BootstrapRecords < 1 {
		return fmt.Errorf("BOOTSTRAP_RECORDS must be at least 1")
	}
	return nil
}

// ValidDateRanges lists the date-range presets understood by the API.
var ValidDateRanges = []string{
	"last_30_days",
	"last_90_days",
	"last_6_months",
	"last_year",
	"all_time",
	"custom",
}

func (c *Config) validateAPI() error {
	if c.API.DefaultTopN < 1 {
		return fmt.Errorf("API_DEFAULT_TOP_N must be at least 1")
	}
	if c.API.ReportTopN < 1 {
		return fmt.Errorf("API_REPORT_TOP_N must be at least 1")
	}
	if c.API.DailyTrendPoints < 1 {
		return fmt.Errorf("API_DAILY_TREND_POINTS must be at least 1")
	}
	for _, r := range ValidDateRanges {
		if r == c.API.DefaultRange && r != "custom" {
			return nil
		}
	}
	return fmt.Errorf("API_DEFAULT_RANGE must be one of: %s", strings.Join(ValidDateRanges[:5], ", "))
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateExport() error {
	if c.Export.MaxColumnWidth < 10 {
		return fmt.Errorf("EXPORT_MAX_COLUMN_WIDTH must be at least 10")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
	return nil
}

// HasWildcardCORS reports whether CORS allows any origin.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
