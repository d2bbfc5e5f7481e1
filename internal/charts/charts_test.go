// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package charts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/salesdash/internal/models"
)

func TestBuilders_EmptyInputIsPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"line", Line("t", "x", nil)},
		{"bar", Bar("t", "x", []Point{}, Vertical)},
		{"pie", Pie("t", nil)},
		{"multibar", MultiBar("t", "x", []Series{{Name: "a"}}, BarModeGroup)},
		{"scatter", Scatter("t", "x", "y", nil)},
		{"heatmap", Heatmap("t", "x", "y", nil)},
		{"combo", Combo("t", "x", nil, []Series{{Name: "b"}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.cfg.IsPlaceholder() {
				t.Fatalf("expected placeholder, got kind %q", tt.cfg.Kind)
			}
			if tt.cfg.Annotation != NoDataText || tt.cfg.Title != "t" {
				t.Errorf("unexpected placeholder %+v", tt.cfg)
			}
		})
	}
}

func TestLineAndBar(t *testing.T) {
	pts := []Point{{"2024-05-01", 1.005}, {"2024-05-02", 2.333}}
	line := Line("Trend", "Date", pts)
	if line.Kind != KindLine || !line.Markers || line.Height != 400 {
		t.Errorf("unexpected line config %+v", line)
	}
	if got := line.Series[0].Data[1].Value; got != 2.33 {
		t.Errorf("expected rounded 2.33, got %v", got)
	}

	bar := Bar("Revenue", "Category", pts, "sideways")
	if bar.Orientation != Vertical {
		t.Errorf("expected fallback to vertical, got %q", bar.Orientation)
	}
	if h := Bar("Revenue", "Region", pts, Horizontal); h.Orientation != Horizontal {
		t.Errorf("expected horizontal, got %q", h.Orientation)
	}
}

func TestPie(t *testing.T) {
	cfg := Pie("Share", []Point{{"a", 1}, {"b", 2}, {"c", 3}})
	if cfg.Hole != 0.3 || !cfg.ShowLegend || len(cfg.Colors) != 3 {
		t.Errorf("unexpected pie %+v", cfg)
	}
}

func TestMultiBarAndCombo(t *testing.T) {
	a := Series{Name: "Units", Data: []Point{{"x", 1}}}
	b := Series{Name: "Txns", Data: []Point{{"x", 2}}}
	mb := MultiBar("Perf", "Category", []Series{a, b}, "weird")
	if mb.BarMode != BarModeGroup || len(mb.Series) != 2 || mb.Series[1].Color != defaultColors[1] {
		t.Errorf("unexpected multibar %+v", mb)
	}
	if s := MultiBar("Perf", "Category", []Series{a}, BarModeStack); s.BarMode != BarModeStack {
		t.Errorf("expected stack mode, got %q", s.BarMode)
	}

	combo := Combo("Combo", "Category", []Series{a}, []Series{b})
	if combo.Series[0].Type != KindBar || combo.Series[0].Axis != "y" {
		t.Errorf("bar series misplaced: %+v", combo.Series[0])
	}
	if combo.Series[1].Type != KindLine || combo.Series[1].Axis != "y2" {
		t.Errorf("line series misplaced: %+v", combo.Series[1])
	}
}

func TestHeatmap_Pivot(t *testing.T) {
	cfg := Heatmap("H", "Category", "Region", []Cell{
		{X: "Electronics", Y: "Europe", Value: 10},
		{X: "Clothing", Y: "Africa", Value: 5},
		{X: "Electronics", Y: "Africa", Value: 7},
	})
	h := cfg.Heatmap
	if fmt.Sprint(h.X) != "[Clothing Electronics]" || fmt.Sprint(h.Y) != "[Africa Europe]" {
		t.Fatalf("axes not sorted: x=%v y=%v", h.X, h.Y)
	}
	if *h.Z[0][0] != 5 || *h.Z[0][1] != 7 || *h.Z[1][1] != 10 {
		t.Errorf("unexpected grid values")
	}
	if h.Z[1][0] != nil {
		t.Errorf("missing cell should be nil, got %v", *h.Z[1][0])
	}
	if h.ColorScale != "Blues" {
		t.Errorf("unexpected color scale %q", h.ColorScale)
	}
}

func TestScatter_Legend(t *testing.T) {
	cfg := Scatter("S", "x", "y", []ScatterPoint{{Label: "a", X: 1, Y: 2.345}})
	if cfg.ShowLegend {
		t.Error("legend should be hidden without groups")
	}
	if cfg.Points[0].Y != 2.35 && cfg.Points[0].Y != 2.34 {
		t.Errorf("expected rounded y, got %v", cfg.Points[0].Y)
	}
}

func TestMetricCards(t *testing.T) {
	if cards := MetricCards(nil); len(cards) != 0 {
		t.Errorf("expected no cards for nil summary, got %v", cards)
	}
	cards := MetricCards(&models.SalesSummary{
		TotalRevenue:        1234567.891,
		TotalTransactions:   12345,
		AvgTransactionValue: 100,
		TotalQuantitySold:   999,
	})
	want := []string{"$1,234,567.89", "12,345", "$100.00", "999"}
	if len(cards) != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), len(cards))
	}
	for i, w := range want {
		if cards[i].Value != w {
			t.Errorf("card %d (%s): expected %q, got %q", i, cards[i].Label, w, cards[i].Value)
		}
	}
}

func TestConfig_JSONShape(t *testing.T) {
	data, err := json.Marshal(Placeholder("Empty"))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["kind"] != "placeholder" || got["annotation"] != NoDataText {
		t.Errorf("unexpected JSON %s", data)
	}
	if _, ok := got["series"]; ok {
		t.Error("empty series should be omitted")
	}
}

type stubSource struct {
	err   error
	daily []models.DailyRevenue
	cat   []models.CategoryRevenue
	reg   []models.RegionRevenue
	perf  []models.CategoryPerformance
	rows  []models.SalesRecord
	seen  models.SalesFilter
}

func (s *stubSource) SalesData(_ context.Context, f models.SalesFilter) ([]models.SalesRecord, error) {
	s.seen = f
	return s.rows, s.err
}

func (s *stubSource) SalesSummary(context.Context, models.SalesFilter) (*models.SalesSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SalesSummary{TotalRevenue: 10, TotalTransactions: 1}, nil
}

func (s *stubSource) RevenueByCategory(context.Context, models.SalesFilter) ([]models.CategoryRevenue, error) {
	return s.cat, s.err
}

func (s *stubSource) RevenueByRegion(context.Context, models.SalesFilter) ([]models.RegionRevenue, error) {
	return s.reg, s.err
}

func (s *stubSource) RevenueBySegment(context.Context, models.SalesFilter) ([]models.SegmentRevenue, error) {
	return []models.SegmentRevenue{}, s.err
}

func (s *stubSource) DailyRevenueTrend(context.Context, models.SalesFilter) ([]models.DailyRevenue, error) {
	return s.daily, s.err
}

func (s *stubSource) MonthlyRevenueTrend(context.Context, models.SalesFilter) ([]models.MonthlyRevenue, error) {
	return []models.MonthlyRevenue{}, s.err
}

func (s *stubSource) TopProducts(context.Context, int, models.SalesFilter) ([]models.ProductRevenue, error) {
	return []models.ProductRevenue{}, s.err
}

func (s *stubSource) CategoryPerformance(context.Context, models.SalesFilter) ([]models.CategoryPerformance, error) {
	return s.perf, s.err
}

type stubRegions struct{ rows []models.RegionInfo }

func (s stubRegions) Regions(context.Context) ([]models.RegionInfo, error) { return s.rows, nil }

func TestPresets_UnknownName(t *testing.T) {
	p := NewPresets(&stubSource{}, stubRegions{}, 0)
	_, err := p.Build(context.Background(), "nope", models.SalesFilter{})
	if !errors.Is(err, ErrUnknownChart) {
		t.Errorf("expected ErrUnknownChart, got %v", err)
	}
}

func TestPresets_AllNamesBuildOnEmptyData(t *testing.T) {
	p := NewPresets(&stubSource{}, stubRegions{}, 0)
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			cfg, err := p.Build(context.Background(), name, models.SalesFilter{})
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if !cfg.IsPlaceholder() {
				t.Errorf("expected placeholder on empty data, got %q", cfg.Kind)
			}
		})
	}
	if len(Names()) != 12 {
		t.Errorf("expected 12 presets, got %d", len(Names()))
	}
}

func TestPresets_PropagatesErrors(t *testing.T) {
	sentinel := errors.New("store down")
	p := NewPresets(&stubSource{err: sentinel}, stubRegions{}, 0)
	for _, name := range Names() {
		if _, err := p.Build(context.Background(), name, models.SalesFilter{}); !errors.Is(err, sentinel) {
			t.Errorf("%s: expected sentinel, got %v", name, err)
		}
	}
	if _, err := p.Cards(context.Background(), models.SalesFilter{}); !errors.Is(err, sentinel) {
		t.Errorf("cards: expected sentinel, got %v", err)
	}
}

func TestPresets_DailyTrendKeepsTail(t *testing.T) {
	src := &stubSource{}
	for i := 0; i < 5; i++ {
		src.daily = append(src.daily, models.DailyRevenue{Date: fmt.Sprintf("2024-05-0%d", i+1), Revenue: float64(i)})
	}
	cfg, err := NewPresets(src, stubRegions{}, 3).Build(context.Background(), ChartDailyTrend, models.SalesFilter{})
	if err != nil {
		t.Fatal(err)
	}
	data := cfg.Series[0].Data
	if len(data) != 3 || data[0].Label != "2024-05-03" || data[2].Label != "2024-05-05" {
		t.Errorf("expected last 3 days, got %+v", data)
	}
}

func TestPresets_RegionScatter(t *testing.T) {
	pop := int64(750000000)
	income := 48000.0
	src := &stubSource{reg: []models.RegionRevenue{{Region: "Europe", TotalAmount: 100}, {Region: "Atlantis", TotalAmount: 5}}}
	regions := stubRegions{rows: []models.RegionInfo{{RegionName: "Europe", Population: &pop, AvgIncome: &income}}}
	cfg, err := NewPresets(src, regions, 0).Build(context.Background(), ChartRegionScatter, models.SalesFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Points) != 1 || cfg.Points[0].X != 750000000 || cfg.Points[0].Size != 48000 {
		t.Errorf("unexpected scatter points %+v", cfg.Points)
	}
}

func TestPresets_HeatmapUsesDateRangeOnly(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	src := &stubSource{rows: []models.SalesRecord{
		{Category: "Electronics", Region: "Europe", TotalAmount: 10},
		{Category: "Electronics", Region: "Europe", TotalAmount: 5},
	}}
	f := models.SalesFilter{StartDate: &start, Categories: []string{"Clothing"}}
	cfg, err := NewPresets(src, stubRegions{}, 0).Build(context.Background(), ChartCategoryRegionHeat, f)
	if err != nil {
		t.Fatal(err)
	}
	if src.seen.Categories != nil || src.seen.StartDate == nil {
		t.Errorf("heatmap should query with date range only, got %+v", src.seen)
	}
	if *cfg.Heatmap.Z[0][0] != 15 {
		t.Errorf("expected summed 15, got %v", *cfg.Heatmap.Z[0][0])
	}
}

func TestPresets_CategoryCombo(t *testing.T) {
	src := &stubSource{perf: []models.CategoryPerformance{{Category: "Electronics", Revenue: 500, Transactions: 2}}}
	cfg, err := NewPresets(src, stubRegions{}, 0).Build(context.Background(), ChartCategoryCombo, models.SalesFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Kind != KindCombo || cfg.Y2Axis != "Transactions" || len(cfg.Series) != 2 {
		t.Errorf("unexpected combo %+v", cfg)
	}
}
