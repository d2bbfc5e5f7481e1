// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

/*
Package config provides centralized configuration management for Salesdash.

Configuration is loaded with Koanf v2 from layered sources, lowest priority first:

 1. Built-in defaults (defaultConfig)
 2. YAML config file (CONFIG_PATH, ./config.yaml, /etc/salesdash/config.yaml)
 3. Environment variables, mapped to config keys by envTransformFunc

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT, SERVER_TIMEOUT, ENVIRONMENT

Fact store:
  - DB_DRIVER: duckdb (default) or mysql
  - DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS
  - MYSQL_DSN: go-sql-driver DSN, e.g. user:pass@tcp(db:3306)/sales
  - BOOTSTRAP_ON_START, BOOTSTRAP_RECORDS, BOOTSTRAP_SEED

API and presentation:
  - API_DEFAULT_TOP_N, API_REPORT_TOP_N, API_DAILY_TREND_POINTS, API_DEFAULT_RANGE

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Other:
  - CACHE_DIMENSION_TTL
  - EXPORT_DIR, EXPORT_MAX_COLUMN_WIDTH
  - BREAKER_ENABLED, BREAKER_TIMEOUT, BREAKER_FAILURE_THRESHOLD

# Example config.yaml

	server:
	  port: 8501
	database:
	  driver: duckdb
	  path: data/dashboard.duckdb
	  bootstrap_records: 5000
	logging:
	  level: debug
	  format: console
*/
package config
