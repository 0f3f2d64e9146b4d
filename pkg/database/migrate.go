package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Migration is one schema step. Up runs inside a transaction and must be
// safe to re-run against a database that already has the change.
type Migration struct {
	Version int
	Name    string
	Up      func(ctx context.Context, tx *sql.Tx) error
}

// Migrations is the ordered schema history of the store.
var Migrations = []Migration{
	{Version: 1, Name: "create_users_and_contacts", Up: createBaseTables},
	{Version: 2, Name: "contacts_type_column", Up: ensureContactTypeColumn},
	{Version: 3, Name: "contacts_created_at_index", Up: createContactsCreatedAtIndex},
}

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version    INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	applied_at TEXT NOT NULL
)`

// Migrate applies every migration newer than the stored schema version and
// returns the resulting version.
func Migrate(ctx context.Context, db *DB) (int, error) {
	return MigrateWith(ctx, db, Migrations)
}

func MigrateWith(ctx context.Context, db *DB, migrations []Migration) (int, error) {
	if _, err := db.conn.ExecContext(ctx, createMigrationsTable); err != nil {
		return 0, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	current, err := SchemaVersion(ctx, db)
	if err != nil {
		return 0, err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if err := apply(ctx, db.conn, m); err != nil {
			return current, fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		slog.Info("applied migration", "version", m.Version, "name", m.Name)
		current = m.Version
	}

	return current, nil
}

// SchemaVersion returns the highest applied migration, 0 for a fresh file.
func SchemaVersion(ctx context.Context, db *DB) (int, error) {
	var v sql.NullInt64
	err := db.conn.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return int(v.Int64), nil
}

func apply(ctx context.Context, conn *sql.DB, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := m.Up(ctx, tx); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`,
		m.Version, m.Name, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func createBaseTables(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id        TEXT PRIMARY KEY,
			username  TEXT UNIQUE NOT NULL,
			email     TEXT UNIQUE NOT NULL,
			password  TEXT NOT NULL,
			createdAt TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			id        TEXT PRIMARY KEY,
			type      TEXT NOT NULL DEFAULT 'contact',
			name      TEXT,
			email     TEXT NOT NULL,
			message   TEXT,
			data      TEXT,
			createdAt TEXT NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// ensureContactTypeColumn upgrades files created before entries carried a type.
// The column is only added when it is missing.
func ensureContactTypeColumn(ctx context.Context, tx *sql.Tx) error {
	cols, err := tableColumns(ctx, tx, "contacts")
	if err != nil {
		return err
	}
	if cols["type"] {
		return nil
	}
	_, err = tx.ExecContext(ctx, `ALTER TABLE contacts ADD COLUMN type TEXT NOT NULL DEFAULT 'contact'`)
	return err
}

func createContactsCreatedAtIndex(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts (createdAt)`)
	return err
}

func tableColumns(ctx context.Context, tx *sql.Tx, table string) (map[string]bool, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}
