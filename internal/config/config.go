// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package config

import (
	"time"
)

// Supported fact store drivers.
const (
	DriverDuckDB = "duckdb"
	DriverMySQL  = "mysql"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Cache    CacheConfig    `koanf:"cache"`
	Export   ExportConfig   `koanf:"export"`
	Breaker  BreakerConfig  `koanf:"breaker"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// DatabaseConfig holds fact store connection and bootstrap settings.
//
// For the duckdb driver Path is a file path (or ":memory:"); for mysql DSN
// is a go-sql-driver/mysql data source name.
type DatabaseConfig struct {
	Driver    string `koanf:"driver"`
	Path      string `koanf:"path"`
	DSN       string `koanf:"dsn"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()

	// BootstrapOnStart seeds the store with generated fixtures when it does not exist yet.
	BootstrapOnStart bool  `koanf:"bootstrap_on_start"`
	BootstrapRecords int   `koanf:"bootstrap_records"`
	Seed             int64 `koanf:"seed"`
}

// IsInMemory reports whether the store lives only for the process lifetime.
func (d *DatabaseConfig) IsInMemory() bool {
	return d.Driver == DriverDuckDB && (d.Path == "" || d.Path == ":memory:")
}

// APIConfig holds presentation defaults for the dashboard endpoints
type APIConfig struct {
	DefaultTopN      int    `koanf:"default_top_n"`
	ReportTopN       int    `koanf:"report_top_n"`
	DailyTrendPoints int    `koanf:"daily_trend_points"`
	DefaultRange     string `koanf:"default_range"`
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// CacheConfig holds cache TTLs
type CacheConfig struct {
	DimensionTTL time.Duration `koanf:"dimension_ttl"`
}

// ExportConfig holds file export settings
type ExportConfig struct {
	Dir            string `koanf:"dir"`
	MaxColumnWidth int    `koanf:"max_column_width"`
}

// BreakerConfig configures the circuit breaker in front of fact store reads.
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// Load reads configuration from all layered sources.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsDevelopment returns true when ENVIRONMENT is development.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// IsProduction returns true when ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
