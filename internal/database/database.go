// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/go-sql-driver/mysql"

	"github.com/tomtom215/salesdash/internal/config"
	"github.com/tomtom215/salesdash/internal/logging"
)

// DB is the fact store. It is safe for concurrent use.
type DB struct {
	conn    *sql.DB
	cfg     *config.DatabaseConfig
	dialect dialect
	closed  atomic.Bool
}

// New opens the configured fact store. The schema is not created; call
// InitSchema (or bootstrap.Run) before loading data.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	var (
		conn *sql.DB
		d    dialect
		err  error
	)

	switch cfg.Driver {
	case config.DriverDuckDB, "":
		conn, err = openDuckDB(cfg)
		d = duckDBDialect
	case config.DriverMySQL:
		conn, err = openMySQL(cfg)
		d = mySQLDialect
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	db := &DB{conn: conn, cfg: cfg, dialect: d}
	db.configureConnectionPool()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s fact store: %w", d.name, err)
	}

	logging.Info().
		Str("driver", d.name).
		Bool("in_memory", cfg.IsInMemory()).
		Msg("Fact store connected")

	return db, nil
}

func openDuckDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
		path, threads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	return conn, nil
}

func openMySQL(cfg *config.DatabaseConfig) (*sql.DB, error) {
	mcfg, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid MYSQL_DSN: %w", err)
	}
	// Timestamps are stored and compared in UTC.
	mcfg.ParseTime = true
	mcfg.Loc = time.UTC

	connector, err := mysql.NewConnector(mcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create mysql connector: %w", err)
	}
	return sql.OpenDB(connector), nil
}

// Driver returns the active driver name.
func (db *DB) Driver() string {
	return db.dialect.name
}

// Close releases the connection pool. Further calls return ErrStoreClosed.
func (db *DB) Close() error {
	if !db.closed.CompareAndSwap(false, true) {
		return nil
	}
	if db.dialect.name == config.DriverDuckDB {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
			logging.Warn().Err(err).Msg("Failed to checkpoint fact store before close")
		}
		cancel()
	}
	return db.conn.Close()
}

// Ping checks that the store is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if db.closed.Load() {
		return ErrStoreClosed
	}
	return db.conn.PingContext(ctx)
}
