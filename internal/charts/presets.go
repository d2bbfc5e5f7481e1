// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package charts

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/tomtom215/salesdash/internal/models"
)

// ErrUnknownChart is returned by Build for a name not in Names.
var ErrUnknownChart = errors.New("unknown chart")

// DefaultDailyPoints is how many trailing days the daily trend shows.
const DefaultDailyPoints = 90

// Dashboard chart names.
const (
	ChartDailyTrend          = "daily_trend"
	ChartMonthlyTrend        = "monthly_trend"
	ChartCategoryBar         = "category_bar"
	ChartCategoryPie         = "category_pie"
	ChartRegionBar           = "region_bar"
	ChartRegionPie           = "region_pie"
	ChartSegmentPie          = "segment_pie"
	ChartTopProducts         = "top_products"
	ChartCategoryPerformance = "category_performance"
	ChartRegionScatter       = "region_scatter"
	ChartCategoryRegionHeat  = "category_region_heatmap"
	ChartCategoryCombo       = "category_combo"
)

// Source supplies the derived views charts are drawn from.
type Source interface {
	SalesData(ctx context.Context, filter models.SalesFilter) ([]models.SalesRecord, error)
	SalesSummary(ctx context.Context, filter models.SalesFilter) (*models.SalesSummary, error)
	RevenueByCategory(ctx context.Context, filter models.SalesFilter) ([]models.CategoryRevenue, error)
	RevenueByRegion(ctx context.Context, filter models.SalesFilter) ([]models.RegionRevenue, error)
	RevenueBySegment(ctx context.Context, filter models.SalesFilter) ([]models.SegmentRevenue, error)
	DailyRevenueTrend(ctx context.Context, filter models.SalesFilter) ([]models.DailyRevenue, error)
	MonthlyRevenueTrend(ctx context.Context, filter models.SalesFilter) ([]models.MonthlyRevenue, error)
	TopProducts(ctx context.Context, n int, filter models.SalesFilter) ([]models.ProductRevenue, error)
	CategoryPerformance(ctx context.Context, filter models.SalesFilter) ([]models.CategoryPerformance, error)
}

// RegionSource supplies the region dimension.
type RegionSource interface {
	Regions(ctx context.Context) ([]models.RegionInfo, error)
}

type presetFunc func(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error)

var presets = map[string]presetFunc{
	ChartDailyTrend:          dailyTrend,
	ChartMonthlyTrend:        monthlyTrend,
	ChartCategoryBar:         categoryBar,
	ChartCategoryPie:         categoryPie,
	ChartRegionBar:           regionBar,
	ChartRegionPie:           regionPie,
	ChartSegmentPie:          segmentPie,
	ChartTopProducts:         topProducts,
	ChartCategoryPerformance: categoryPerformance,
	ChartRegionScatter:       regionScatter,
	ChartCategoryRegionHeat:  categoryRegionHeatmap,
	ChartCategoryCombo:       categoryCombo,
}

// Presets builds the dashboard's named charts.
type Presets struct {
	source      Source
	regions     RegionSource
	dailyPoints int
}

// NewPresets returns a preset builder. dailyPoints <= 0 selects
// DefaultDailyPoints.
func NewPresets(source Source, regions RegionSource, dailyPoints int) *Presets {
	if dailyPoints <= 0 {
		dailyPoints = DefaultDailyPoints
	}
	return &Presets{source: source, regions: regions, dailyPoints: dailyPoints}
}

// Names returns the preset names in ascending order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build returns the named chart for filter. Source errors are returned as is.
func (p *Presets) Build(ctx context.Context, name string, filter models.SalesFilter) (*Config, error) {
	fn, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	return fn(ctx, p, filter)
}

// Cards returns the metric cards for filter.
func (p *Presets) Cards(ctx context.Context, filter models.SalesFilter) ([]MetricCard, error) {
	summary, err := p.source.SalesSummary(ctx, filter)
	if err != nil {
		return nil, err
	}
	return MetricCards(summary), nil
}

func dailyTrend(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	rows, err := p.source.DailyRevenueTrend(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(rows) > p.dailyPoints {
		rows = rows[len(rows)-p.dailyPoints:]
	}
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{Label: r.Date, Value: r.Revenue}
	}
	return Line(fmt.Sprintf("Daily Revenue Trend (Last %d Days)", p.dailyPoints), "Date", points), nil
}

func monthlyTrend(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	rows, err := p.source.MonthlyRevenueTrend(ctx, f)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{Label: r.Month, Value: r.Revenue}
	}
	return Line("Monthly Revenue Trend", "Month", points), nil
}

func categoryPoints(ctx context.Context, p *Presets, f models.SalesFilter) ([]Point, error) {
	rows, err := p.source.RevenueByCategory(ctx, f)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{Label: r.Category, Value: r.TotalAmount}
	}
	return points, nil
}

func categoryBar(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	points, err := categoryPoints(ctx, p, f)
	if err != nil {
		return nil, err
	}
	return Bar("Revenue by Category", "Category", points, Vertical), nil
}

func categoryPie(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	points, err := categoryPoints(ctx, p, f)
	if err != nil {
		return nil, err
	}
	return Pie("Category Distribution", points), nil
}

func regionPoints(ctx context.Context, p *Presets, f models.SalesFilter) ([]Point, error) {
	rows, err := p.source.RevenueByRegion(ctx, f)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{Label: r.Region, Value: r.TotalAmount}
	}
	return points, nil
}

func regionBar(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	points, err := regionPoints(ctx, p, f)
	if err != nil {
		return nil, err
	}
	return Bar("Revenue by Region", "Region", points, Horizontal), nil
}

func regionPie(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	points, err := regionPoints(ctx, p, f)
	if err != nil {
		return nil, err
	}
	return Pie("Region Distribution", points), nil
}

func segmentPie(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	rows, err := p.source.RevenueBySegment(ctx, f)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{Label: r.CustomerSegment, Value: r.TotalAmount}
	}
	return Pie("Revenue by Customer Segment", points), nil
}

func topProducts(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	rows, err := p.source.TopProducts(ctx, 10, f)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{Label: r.ProductName, Value: r.TotalAmount}
	}
	return Bar("Top 10 Products by Revenue", "Product Name", points, Horizontal), nil
}

func categoryPerformance(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	rows, err := p.source.CategoryPerformance(ctx, f)
	if err != nil {
		return nil, err
	}
	units := Series{Name: "Units Sold"}
	txns := Series{Name: "Transactions"}
	for _, r := range rows {
		units.Data = append(units.Data, Point{Label: r.Category, Value: float64(r.UnitsSold)})
		txns.Data = append(txns.Data, Point{Label: r.Category, Value: float64(r.Transactions)})
	}
	return MultiBar("Category Performance", "Category", []Series{units, txns}, BarModeGroup), nil
}

func categoryCombo(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	rows, err := p.source.CategoryPerformance(ctx, f)
	if err != nil {
		return nil, err
	}
	revenue := Series{Name: "Revenue"}
	txns := Series{Name: "Transactions"}
	for _, r := range rows {
		revenue.Data = append(revenue.Data, Point{Label: r.Category, Value: r.Revenue})
		txns.Data = append(txns.Data, Point{Label: r.Category, Value: float64(r.Transactions)})
	}
	cfg := Combo("Revenue and Transactions by Category", "Category", []Series{revenue}, []Series{txns})
	if !cfg.IsPlaceholder() {
		cfg.YAxis = revenueLabel
		cfg.Y2Axis = "Transactions"
	}
	return cfg, nil
}

// regionScatter plots each region's revenue against its population. Regions
// without a recorded population are left out.
func regionScatter(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	revenue, err := p.source.RevenueByRegion(ctx, f)
	if err != nil {
		return nil, err
	}
	regions, err := p.regions.Regions(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]models.RegionInfo, len(regions))
	for _, r := range regions {
		byName[r.RegionName] = r
	}
	points := make([]ScatterPoint, 0, len(revenue))
	for _, r := range revenue {
		info, ok := byName[r.Region]
		if !ok || info.Population == nil {
			continue
		}
		pt := ScatterPoint{Label: r.Region, X: float64(*info.Population), Y: r.TotalAmount, Group: r.Region}
		if info.AvgIncome != nil {
			pt.Size = *info.AvgIncome
		}
		points = append(points, pt)
	}
	return Scatter("Revenue vs Population by Region", "Population", revenueLabel, points), nil
}

// categoryRegionHeatmap sums revenue per (category, region) over the date
// range of f.
func categoryRegionHeatmap(ctx context.Context, p *Presets, f models.SalesFilter) (*Config, error) {
	rows, err := p.source.SalesData(ctx, f.WithDateRangeOnly())
	if err != nil {
		return nil, err
	}
	type key struct{ category, region string }
	sums := map[key]float64{}
	for i := range rows {
		sums[key{rows[i].Category, rows[i].Region}] += rows[i].TotalAmount
	}
	cells := make([]Cell, 0, len(sums))
	for k, v := range sums {
		cells = append(cells, Cell{X: k.category, Y: k.region, Value: v})
	}
	return Heatmap("Revenue by Category and Region", "Category", "Region", cells), nil
}
