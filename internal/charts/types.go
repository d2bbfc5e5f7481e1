// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package charts

import "math"

// Kind names a chart type.
type Kind string

// Chart kinds.
const (
	KindLine        Kind = "line"
	KindBar         Kind = "bar"
	KindPie         Kind = "pie"
	KindScatter     Kind = "scatter"
	KindHeatmap     Kind = "heatmap"
	KindCombo       Kind = "combo"
	KindPlaceholder Kind = "placeholder"
)

// Orientation of a bar chart.
const (
	Vertical   = "v"
	Horizontal = "h"
)

// Bar modes for MultiBar.
const (
	BarModeGroup = "group"
	BarModeStack = "stack"
)

// NoDataText is the annotation shown on placeholder charts.
const NoDataText = "No data available"

const (
	defaultHeight = 400
	donutHole     = 0.3
	revenueLabel  = "Revenue ($)"
	lineColor     = "#1f77b4"
	heatmapScale  = "Blues"
)

var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Point is a labeled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is a named sequence of points.
type Series struct {
	Name  string  `json:"name"`
	Type  Kind    `json:"type,omitempty"`
	Axis  string  `json:"axis,omitempty"`
	Color string  `json:"color,omitempty"`
	Data  []Point `json:"data"`
}

// ScatterPoint is one point of a scatter chart.
type ScatterPoint struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size,omitempty"`
	Group string  `json:"group,omitempty"`
}

// Cell is one (x, y, value) input to a heatmap.
type Cell struct {
	X     string
	Y     string
	Value float64
}

// HeatmapData is a pivoted grid. Z[i][j] is the value at (X[j], Y[i]),
// nil where no cell was supplied.
type HeatmapData struct {
	X          []string     `json:"x"`
	Y          []string     `json:"y"`
	Z          [][]*float64 `json:"z"`
	ColorScale string       `json:"color_scale"`
}

// Config is a renderable chart description.
type Config struct {
	Kind        Kind           `json:"kind"`
	Title       string         `json:"title"`
	XAxis       string         `json:"x_axis,omitempty"`
	YAxis       string         `json:"y_axis,omitempty"`
	Y2Axis      string         `json:"y2_axis,omitempty"`
	Orientation string         `json:"orientation,omitempty"`
	BarMode     string         `json:"bar_mode,omitempty"`
	Hole        float64        `json:"hole,omitempty"`
	Markers     bool           `json:"markers,omitempty"`
	ShowLegend  bool           `json:"show_legend"`
	Height      int            `json:"height"`
	Series      []Series       `json:"series,omitempty"`
	Points      []ScatterPoint `json:"points,omitempty"`
	Heatmap     *HeatmapData   `json:"heatmap,omitempty"`
	Colors      []string       `json:"colors,omitempty"`
	Annotation  string         `json:"annotation,omitempty"`
}

// IsPlaceholder reports whether c stands in for an empty view.
func (c *Config) IsPlaceholder() bool {
	return c.Kind == KindPlaceholder
}

// MetricCard is one headline number.
type MetricCard struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Raw   float64 `json:"raw"`
}

// RoundTo2 rounds to two decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := range colors {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
