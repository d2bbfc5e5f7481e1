// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/salesdash/internal/config"
	"github.com/tomtom215/salesdash/internal/logging"
)

// Table names.
const (
	TableSales      = "sales_data"
	TableRegions    = "region_info"
	TableCategories = "product_categories"
)

// dialect holds the DDL that differs between drivers. Both drivers accept
// ? placeholders, so DML is shared.
type dialect struct {
	name        string
	createStmts []string
	dropStmts   []string
	existsQuery string
}

var duckDBDialect = dialect{
	name: config.DriverDuckDB,
	createStmts: []string{
		`CREATE SEQUENCE IF NOT EXISTS sales_data_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS region_info_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS product_categories_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS sales_data (
			id BIGINT PRIMARY KEY DEFAULT nextval('sales_data_id_seq'),
			transaction_date TIMESTAMP NOT NULL,
			category VARCHAR NOT NULL,
			product_name VARCHAR NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			unit_price DOUBLE NOT NULL CHECK (unit_price > 0),
			total_amount DOUBLE NOT NULL,
			region VARCHAR NOT NULL,
			customer_segment VARCHAR,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS region_info (
			id BIGINT PRIMARY KEY DEFAULT nextval('region_info_id_seq'),
			region_name VARCHAR NOT NULL UNIQUE,
			country VARCHAR,
			population BIGINT,
			avg_income DOUBLE
		)`,
		`CREATE TABLE IF NOT EXISTS product_categories (
			id BIGINT PRIMARY KEY DEFAULT nextval('product_categories_id_seq'),
			category_name VARCHAR NOT NULL UNIQUE,
			description VARCHAR,
			margin_percentage DOUBLE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales_data(transaction_date)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_category ON sales_data(category)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_region ON sales_data(region)`,
	},
	dropStmts: []string{
		`DROP TABLE IF EXISTS sales_data`,
		`DROP TABLE IF EXISTS region_info`,
		`DROP TABLE IF EXISTS product_categories`,
		`DROP SEQUENCE IF EXISTS sales_data_id_seq`,
		`DROP SEQUENCE IF EXISTS region_info_id_seq`,
		`DROP SEQUENCE IF EXISTS product_categories_id_seq`,
	},
	existsQuery: `SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name = ?`,
}

var mySQLDialect = dialect{
	name: config.DriverMySQL,
	createStmts: []string{
		`CREATE TABLE IF NOT EXISTS sales_data (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			transaction_date DATETIME NOT NULL,
			category VARCHAR(100) NOT NULL,
			product_name VARCHAR(200) NOT NULL,
			quantity INT NOT NULL CHECK (quantity > 0),
			unit_price DECIMAL(10,2) NOT NULL CHECK (unit_price > 0),
			total_amount DECIMAL(12,2) NOT NULL,
			region VARCHAR(100) NOT NULL,
			customer_segment VARCHAR(50),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_sales_date (transaction_date),
			INDEX idx_sales_category (category),
			INDEX idx_sales_region (region)
		)`,
		`CREATE TABLE IF NOT EXISTS region_info (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			region_name VARCHAR(100) NOT NULL UNIQUE,
			country VARCHAR(100),
			population BIGINT,
			avg_income DECIMAL(12,2)
		)`,
		`CREATE TABLE IF NOT EXISTS product_categories (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			category_name VARCHAR(100) NOT NULL UNIQUE,
			description TEXT,
			margin_percentage DECIMAL(5,2)
		)`,
	},
	dropStmts: []string{
		`DROP TABLE IF EXISTS sales_data`,
		`DROP TABLE IF EXISTS region_info`,
		`DROP TABLE IF EXISTS product_categories`,
	},
	existsQuery: `SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?`,
}

// InitSchema creates the tables and indexes if they are absent. It is idempotent.
func (db *DB) InitSchema(ctx context.Context) error {
	if db.closed.Load() {
		return ErrStoreClosed
	}
	for _, stmt := range db.dialect.createStmts {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	logging.Debug().Str("driver", db.dialect.name).Msg("Fact store schema ready")
	return nil
}

// Exists reports whether the fact table has been created. A freshly opened
// DuckDB file or an empty MySQL database does not exist yet.
func (db *DB) Exists(ctx context.Context) (bool, error) {
	if db.closed.Load() {
		return false, ErrStoreClosed
	}
	var n int
	if err := db.conn.QueryRowContext(ctx, db.dialect.existsQuery, TableSales).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check fact store existence: %w", err)
	}
	return n > 0, nil
}

// Reset drops every table and recreates an empty schema.
func (db *DB) Reset(ctx context.Context) error {
	if db.closed.Load() {
		return ErrStoreClosed
	}
	for _, stmt := range db.dialect.dropStmts {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}
	logging.Warn().Str("driver", db.dialect.name).Msg("Fact store reset")
	return db.InitSchema(ctx)
}
