package database

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/Alijeyrad/glider_backend/config"
)

// Config holds embedded store settings
type Config struct {
	DataDir     string
	FileName    string
	JournalMode string
	BusyTimeout time.Duration

	// Connection pooling
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int

	// Query logging
	EnableLogging bool
}

// Path returns the database file location inside DataDir
func (c Config) Path() string {
	return filepath.Join(c.DataDir, c.FileName)
}

// DSN returns a go-sqlite3 connection string with WAL enabled by default
func (c Config) DSN() string {
	mode := c.JournalMode
	if mode == "" {
		mode = "WAL"
	}
	busy := c.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	// SQLite percent-decodes the URI path, so '?', '#' and '%' in a directory
	// name must not leak into the query string.
	path := (&url.URL{Path: filepath.ToSlash(c.Path())}).EscapedPath()
	return fmt.Sprintf("file:%s?_journal_mode=%s&_busy_timeout=%d", path, mode, busy.Milliseconds())
}

// ConnMaxLifetime returns the connection max lifetime as a duration
func (c Config) ConnMaxLifetime() time.Duration {
	if c.ConnMaxLifetimeMin <= 0 {
		return 0
	}
	return time.Duration(c.ConnMaxLifetimeMin) * time.Minute
}

// DefaultConfig returns the layout used when nothing is configured
func DefaultConfig() Config {
	return Config{
		DataDir:     "data",
		FileName:    "glider.db",
		JournalMode: "WAL",
		BusyTimeout: 5 * time.Second,
	}
}

// FromCentralConfig converts central config.DatabaseConfig to package Config
func FromCentralConfig(c config.DatabaseConfig) Config {
	cfg := Config{
		DataDir:            c.DataDir,
		FileName:           c.FileName,
		JournalMode:        c.JournalMode,
		BusyTimeout:        time.Duration(c.BusyTimeout) * time.Millisecond,
		MaxOpenConns:       c.Pool.MaxOpenConns,
		MaxIdleConns:       c.Pool.MaxIdleConns,
		ConnMaxLifetimeMin: c.Pool.ConnMaxLifetimeMin,
		EnableLogging:      c.Logging.Enabled,
	}
	def := DefaultConfig()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.FileName == "" {
		cfg.FileName = def.FileName
	}
	return cfg
}
