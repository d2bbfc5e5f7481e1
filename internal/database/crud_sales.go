// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/salesdash/internal/logging"
	"github.com/tomtom215/salesdash/internal/metrics"
	"github.com/tomtom215/salesdash/internal/models"
)

const salesColumns = `id, transaction_date, category, product_name, quantity,
	unit_price, total_amount, region, customer_segment, created_at`

// insertBatch runs one prepared statement per row inside a single transaction.
// Any failure rolls back every row of the call.
func (db *DB) insertBatch(ctx context.Context, entity, query string, n int, argsAt func(i int) []interface{}) (inserted int, err error) {
	if db.closed.Load() {
		return 0, ErrStoreClosed
	}
	if n == 0 {
		return 0, nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin %s transaction: %w", entity, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Str("entity", entity).
					Msg("Transaction rollback failed")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare %s insert: %w", entity, err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := 0; i < n; i++ {
		if _, err = stmt.ExecContext(ctx, argsAt(i)...); err != nil {
			return 0, fmt.Errorf("failed to insert %s row %d: %w", entity, i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit %s: %w", entity, err)
	}

	metrics.StoreRowsLoaded.WithLabelValues(entity).Add(float64(n))
	logging.Info().Str("entity", entity).Int("rows", n).Msg("Bulk load committed")
	return n, nil
}

// InsertSales bulk-loads fact rows atomically. ID and CreatedAt are assigned
// by the store; TotalAmount is written as Quantity * UnitPrice.
func (db *DB) InsertSales(ctx context.Context, records []models.SalesRecord) (int, error) {
	query := `INSERT INTO sales_data (transaction_date, category, product_name, quantity,
		unit_price, total_amount, region, customer_segment) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	return db.insertBatch(ctx, TableSales, query, len(records), func(i int) []interface{} {
		r := &records[i]
		return []interface{}{
			r.TransactionDate.UTC(),
			r.Category,
			r.ProductName,
			r.Quantity,
			r.UnitPrice,
			r.ComputedTotal(),
			r.Region,
			nullableString(r.CustomerSegment),
		}
	})
}

// InsertRegions bulk-loads region dimension rows atomically.
func (db *DB) InsertRegions(ctx context.Context, regions []models.RegionInfo) (int, error) {
	query := `INSERT INTO region_info (region_name, country, population, avg_income) VALUES (?, ?, ?, ?)`

	return db.insertBatch(ctx, TableRegions, query, len(regions), func(i int) []interface{} {
		r := &regions[i]
		return []interface{}{r.RegionName, r.Country, nullableInt64(r.Population), nullableFloat64(r.AvgIncome)}
	})
}

// InsertCategories bulk-loads category dimension rows atomically.
func (db *DB) InsertCategories(ctx context.Context, categories []models.CategoryInfo) (int, error) {
	query := `INSERT INTO product_categories (category_name, description, margin_percentage) VALUES (?, ?, ?)`

	return db.insertBatch(ctx, TableCategories, query, len(categories), func(i int) []interface{} {
		c := &categories[i]
		return []interface{}{c.CategoryName, c.Description, nullableFloat64(c.MarginPercentage)}
	})
}

// QuerySales returns every fact row matching the filter, ordered by id.
func (db *DB) QuerySales(ctx context.Context, filter models.SalesFilter) ([]models.SalesRecord, error) {
	if db.closed.Load() {
		return nil, ErrStoreClosed
	}

	conditions, args := buildSalesConditions(&filter)
	query := "SELECT " + salesColumns + " FROM sales_data WHERE 1=1" + conditions + " ORDER BY id"

	records := []models.SalesRecord{}
	err := queryAndScan(ctx, db.conn, "query_sales", query, args, func(rows *sql.Rows) error {
		var (
			r         models.SalesRecord
			segment   sql.NullString
			createdAt sql.NullTime
		)
		if err := rows.Scan(&r.ID, &r.TransactionDate, &r.Category, &r.ProductName, &r.Quantity,
			&r.UnitPrice, &r.TotalAmount, &r.Region, &segment, &createdAt); err != nil {
			return err
		}
		r.TransactionDate = r.TransactionDate.UTC()
		r.CustomerSegment = models.UnknownSegment
		if segment.Valid && segment.String != "" {
			r.CustomerSegment = segment.String
		}
		if createdAt.Valid {
			r.CreatedAt = createdAt.Time.UTC()
		}
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Debug().Int("rows", len(records)).Msg("Sales queried")
	return records, nil
}

// RegionInfo returns the region dimension table ordered by id.
func (db *DB) RegionInfo(ctx context.Context) ([]models.RegionInfo, error) {
	if db.closed.Load() {
		return nil, ErrStoreClosed
	}

	query := `SELECT id, region_name, country, population, avg_income FROM region_info ORDER BY id`
	regions := []models.RegionInfo{}
	err := queryAndScan(ctx, db.conn, "region_info", query, nil, func(rows *sql.Rows) error {
		var (
			r          models.RegionInfo
			country    sql.NullString
			population sql.NullInt64
			avgIncome  sql.NullFloat64
		)
		if err := rows.Scan(&r.ID, &r.RegionName, &country, &population, &avgIncome); err != nil {
			return err
		}
		r.Country = country.String
		if population.Valid {
			r.Population = &population.Int64
		}
		if avgIncome.Valid {
			r.AvgIncome = &avgIncome.Float64
		}
		regions = append(regions, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return regions, nil
}

// CategoryInfo returns the category dimension table ordered by id.
func (db *DB) CategoryInfo(ctx context.Context) ([]models.CategoryInfo, error) {
	if db.closed.Load() {
		return nil, ErrStoreClosed
	}

	query := `SELECT id, category_name, description, margin_percentage FROM product_categories ORDER BY id`
	categories := []models.CategoryInfo{}
	err := queryAndScan(ctx, db.conn, "category_info", query, nil, func(rows *sql.Rows) error {
		var (
			c           models.CategoryInfo
			description sql.NullString
			margin      sql.NullFloat64
		)
		if err := rows.Scan(&c.ID, &c.CategoryName, &description, &margin); err != nil {
			return err
		}
		c.Description = description.String
		if margin.Valid {
			c.MarginPercentage = &margin.Float64
		}
		categories = append(categories, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CountSales returns the number of fact rows.
func (db *DB) CountSales(ctx context.Context) (int, error) {
	if db.closed.Load() {
		return 0, ErrStoreClosed
	}
	var n int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM sales_data").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	return n, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt64(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat64(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
