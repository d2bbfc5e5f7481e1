// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/tomtom215/salesdash/internal/models"
)

// ReportTopProducts is the size of the report's product ranking.
const ReportTopProducts = 20

// Report sheet names.
const (
	SheetSummary             = "Summary"
	SheetRevenueByCategory   = "Revenue_by_Category"
	SheetRevenueByRegion     = "Revenue_by_Region"
	SheetRevenueBySegment    = "Revenue_by_Segment"
	SheetTopProducts         = "Top_Products"
	SheetCategoryPerformance = "Category_Performance"
)

// ReportSource supplies the views in the summary report.
type ReportSource interface {
	SalesSummary(ctx context.Context, filter models.SalesFilter) (*models.SalesSummary, error)
	RevenueByCategory(ctx context.Context, filter models.SalesFilter) ([]models.CategoryRevenue, error)
	RevenueByRegion(ctx context.Context, filter models.SalesFilter) ([]models.RegionRevenue, error)
	RevenueBySegment(ctx context.Context, filter models.SalesFilter) ([]models.SegmentRevenue, error)
	TopProducts(ctx context.Context, n int, filter models.SalesFilter) ([]models.ProductRevenue, error)
	CategoryPerformance(ctx context.Context, filter models.SalesFilter) ([]models.CategoryPerformance, error)
}

// SummaryReport builds the report sheets over the date range of filter.
// topN <= 0 selects ReportTopProducts. Empty views become header-only sheets.
func SummaryReport(ctx context.Context, src ReportSource, filter models.SalesFilter, topN int) ([]NamedTable, error) {
	if topN <= 0 {
		topN = ReportTopProducts
	}
	f := filter.WithDateRangeOnly()

	summary, err := src.SalesSummary(ctx, f)
	if err != nil {
		return nil, err
	}
	byCategory, err := src.RevenueByCategory(ctx, f)
	if err != nil {
		return nil, err
	}
	byRegion, err := src.RevenueByRegion(ctx, f)
	if err != nil {
		return nil, err
	}
	bySegment, err := src.RevenueBySegment(ctx, f)
	if err != nil {
		return nil, err
	}
	products, err := src.TopProducts(ctx, topN, f)
	if err != nil {
		return nil, err
	}
	performance, err := src.CategoryPerformance(ctx, f)
	if err != nil {
		return nil, err
	}

	return []NamedTable{
		{Name: SheetSummary, Table: FromSummary(summary)},
		{Name: SheetRevenueByCategory, Table: FromCategoryRevenue(byCategory)},
		{Name: SheetRevenueByRegion, Table: FromRegionRevenue(byRegion)},
		{Name: SheetRevenueBySegment, Table: FromSegmentRevenue(bySegment)},
		{Name: SheetTopProducts, Table: FromProductRevenue(products)},
		{Name: SheetCategoryPerformance, Table: FromCategoryPerformance(performance)},
	}, nil
}

// FileName returns prefix_YYYYMMDD_HHMMSS.ext for now.
func FileName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("20060102_150405"), ext)
}

// SaveToDir creates dir if needed and writes name inside it. It returns the
// path of the written file. A failed write removes the partial file.
func SaveToDir(dir, name string, write func(io.Writer) error) (path string, err error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	target := filepath.Join(dir, filepath.Base(name))
	file, err := os.Create(target) //nolint:gosec // target is confined to dir
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(target)
			path = ""
		}
	}()
	if err := write(file); err != nil {
		return "", err
	}
	return target, nil
}
