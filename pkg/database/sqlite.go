package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"entgo.io/ent/dialect"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Alijeyrad/glider_backend/config"
)

// ErrDataDir is returned when the data directory cannot be created.
// Callers treat it as fatal: there is nowhere to keep the store.
var ErrDataDir = errors.New("cannot create data directory")

type DB struct {
	conn *sql.DB
	cfg  Config
}

// Open creates the data directory if needed and opens the store file.
func Open(cfg Config) (*DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrDataDir, cfg.DataDir, err)
	}

	conn, err := sql.Open(dialect.SQLite, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if lt := cfg.ConnMaxLifetime(); lt > 0 {
		conn.SetConnMaxLifetime(lt)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.EnableLogging {
		slog.Debug("sqlite store opened", "path", cfg.Path())
	}

	return &DB{conn: conn, cfg: cfg}, nil
}

// OpenFromCentral opens the store described by the central config.
func OpenFromCentral(c config.DatabaseConfig) (*DB, error) {
	return Open(FromCentralConfig(c))
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) GetConnection() *sql.DB {
	return db.conn
}

func (db *DB) Config() Config {
	return db.cfg
}

// Stats returns database statistics
func (db *DB) Stats() sql.DBStats {
	return db.conn.Stats()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.conn.PingContext(ctx)
}
