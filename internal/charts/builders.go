// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package charts

import (
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tomtom215/salesdash/internal/models"
)

// Placeholder returns the neutral chart drawn for an empty view.
func Placeholder(title string) *Config {
	return &Config{
		Kind:       KindPlaceholder,
		Title:      title,
		Height:     defaultHeight,
		Annotation: NoDataText,
	}
}

// Line builds a single-series line chart with markers.
func Line(title, xLabel string, points []Point) *Config {
	if len(points) == 0 {
		return Placeholder(title)
	}
	return &Config{
		Kind:    KindLine,
		Title:   title,
		XAxis:   xLabel,
		YAxis:   revenueLabel,
		Markers: true,
		Height:  defaultHeight,
		Series:  []Series{{Name: title, Data: roundPoints(points), Color: lineColor}},
	}
}

// Bar builds a single-series bar chart. orientation is Vertical or
// Horizontal; anything else is treated as Vertical.
func Bar(title, xLabel string, points []Point, orientation string) *Config {
	if len(points) == 0 {
		return Placeholder(title)
	}
	if orientation != Horizontal {
		orientation = Vertical
	}
	return &Config{
		Kind:        KindBar,
		Title:       title,
		XAxis:       xLabel,
		YAxis:       revenueLabel,
		Orientation: orientation,
		Height:      defaultHeight,
		Series:      []Series{{Name: title, Data: roundPoints(points)}},
		Colors:      assignColors(1),
	}
}

// Pie builds a donut chart, one slice per point.
func Pie(title string, points []Point) *Config {
	if len(points) == 0 {
		return Placeholder(title)
	}
	return &Config{
		Kind:       KindPie,
		Title:      title,
		Hole:       donutHole,
		ShowLegend: true,
		Height:     defaultHeight,
		Series:     []Series{{Name: title, Data: roundPoints(points)}},
		Colors:     assignColors(len(points)),
	}
}

// MultiBar builds a bar chart with several series over shared labels.
// An unknown barMode falls back to BarModeGroup.
func MultiBar(title, xLabel string, series []Series, barMode string) *Config {
	if !hasData(series) {
		return Placeholder(title)
	}
	if barMode != BarModeStack {
		barMode = BarModeGroup
	}
	out := make([]Series, len(series))
	colors := assignColors(len(series))
	for i, s := range series {
		out[i] = Series{Name: s.Name, Type: KindBar, Color: colors[i], Data: roundPoints(s.Data)}
	}
	return &Config{
		Kind:       KindBar,
		Title:      title,
		XAxis:      xLabel,
		YAxis:      "Value",
		BarMode:    barMode,
		ShowLegend: true,
		Height:     defaultHeight,
		Series:     out,
		Colors:     colors,
	}
}

// Scatter builds a scatter chart. Legend is shown when any point has a group.
func Scatter(title, xLabel, yLabel string, points []ScatterPoint) *Config {
	if len(points) == 0 {
		return Placeholder(title)
	}
	legend := false
	out := make([]ScatterPoint, len(points))
	for i, p := range points {
		p.Y = RoundTo2(p.Y)
		out[i] = p
		legend = legend || p.Group != ""
	}
	return &Config{
		Kind:       KindScatter,
		Title:      title,
		XAxis:      xLabel,
		YAxis:      yLabel,
		ShowLegend: legend,
		Height:     defaultHeight,
		Points:     out,
	}
}

// Heatmap pivots cells into a grid with both axes sorted ascending.
// A repeated (x, y) pair keeps the last value.
func Heatmap(title, xLabel, yLabel string, cells []Cell) *Config {
	if len(cells) == 0 {
		return Placeholder(title)
	}
	xs := make([]string, 0, len(cells))
	ys := make([]string, 0, len(cells))
	for _, c := range cells {
		xs = append(xs, c.X)
		ys = append(ys, c.Y)
	}
	slices.Sort(xs)
	slices.Sort(ys)
	xs = slices.Compact(xs)
	ys = slices.Compact(ys)

	z := make([][]*float64, len(ys))
	for i := range z {
		z[i] = make([]*float64, len(xs))
	}
	for _, c := range cells {
		xi, _ := slices.BinarySearch(xs, c.X)
		yi, _ := slices.BinarySearch(ys, c.Y)
		v := RoundTo2(c.Value)
		z[yi][xi] = &v
	}
	return &Config{
		Kind:   KindHeatmap,
		Title:  title,
		XAxis:  xLabel,
		YAxis:  yLabel,
		Height: defaultHeight,
		Heatmap: &HeatmapData{
			X:          xs,
			Y:          ys,
			Z:          z,
			ColorScale: heatmapScale,
		},
	}
}

// Combo draws bars against the primary axis and lines against the secondary.
func Combo(title, xLabel string, bars, lines []Series) *Config {
	if !hasData(bars) && !hasData(lines) {
		return Placeholder(title)
	}
	colors := assignColors(len(bars) + len(lines))
	series := make([]Series, 0, len(bars)+len(lines))
	for _, s := range bars {
		series = append(series, Series{Name: s.Name, Type: KindBar, Axis: "y", Color: colors[len(series)], Data: roundPoints(s.Data)})
	}
	for _, s := range lines {
		series = append(series, Series{Name: s.Name, Type: KindLine, Axis: "y2", Color: colors[len(series)], Data: roundPoints(s.Data)})
	}
	return &Config{
		Kind:       KindCombo,
		Title:      title,
		XAxis:      xLabel,
		ShowLegend: true,
		Markers:    true,
		Height:     defaultHeight,
		Series:     series,
		Colors:     colors,
	}
}

// MetricCards formats the headline numbers of a summary. A nil summary
// yields no cards.
func MetricCards(s *models.SalesSummary) []MetricCard {
	if s == nil {
		return []MetricCard{}
	}
	p := message.NewPrinter(language.English)
	return []MetricCard{
		{Label: "Total Revenue", Value: p.Sprintf("$%.2f", s.TotalRevenue), Raw: s.TotalRevenue},
		{Label: "Total Transactions", Value: p.Sprintf("%d", s.TotalTransactions), Raw: float64(s.TotalTransactions)},
		{Label: "Avg Transaction Value", Value: p.Sprintf("$%.2f", s.AvgTransactionValue), Raw: s.AvgTransactionValue},
		{Label: "Units Sold", Value: p.Sprintf("%d", s.TotalQuantitySold), Raw: float64(s.TotalQuantitySold)},
	}
}

func roundPoints(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{Label: p.Label, Value: RoundTo2(p.Value)}
	}
	return out
}

func hasData(series []Series) bool {
	for _, s := range series {
		if len(s.Data) > 0 {
			return true
		}
	}
	return false
}
