// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

/*
Package charts maps derived views to renderable chart configurations.

A Config is a JSON description of one chart; the browser renders it. Builders
never fail on empty input: they return a placeholder Config annotated
"No data available" so every dashboard slot has something to draw.

Builders:

  - Line: one series over ordered labels, markers on
  - Bar: vertical or horizontal bars
  - Pie: donut with a 0.3 hole
  - MultiBar: several bar series over shared labels, grouped or stacked
  - Scatter: x/y points with optional size and group
  - Heatmap: pivot of (x, y, value) cells
  - Combo: bars on the primary axis, lines on the secondary axis
  - MetricCards: the headline numbers of a summary

Presets builds the named dashboard charts from an analytics source.
*/
package charts
