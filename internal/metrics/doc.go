// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

/*
Package metrics holds the Prometheus collectors for Salesdash.

Collectors are registered on the default registry through promauto and
exposed on GET /metrics. All names carry the salesdash_ prefix.

# Fact store

  - salesdash_store_query_duration_seconds{operation}
  - salesdash_store_query_errors_total{operation}
  - salesdash_store_rows_loaded_total{entity}
  - salesdash_breaker_state{name} (0 closed, 1 half-open, 2 open)
  - salesdash_breaker_requests_total{name,result}

# Engine and presentation

  - salesdash_view_rows{view}: size of the last computed derived view
  - salesdash_dimension_cache_lookups_total{result}
  - salesdash_export_bytes_total{format}
  - salesdash_bootstrap_step_duration_seconds{step}

# HTTP

  - salesdash_api_requests_total{method,endpoint,status}
  - salesdash_api_request_duration_seconds{method,endpoint}
  - salesdash_api_active_requests
*/
package metrics
