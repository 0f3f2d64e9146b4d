package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join(t.TempDir(), "data")
	return cfg
}

func TestOpen_CreatesDataDir(t *testing.T) {
	cfg := testConfig(t)

	db, err := Open(cfg)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(cfg.Path())
	require.NoError(t, err, "database file should exist after open")

	var mode string
	require.NoError(t, db.GetConnection().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpen_DataDirWithURIChars(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join(t.TempDir(), "we?ird#dir%25")

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "we%3Fird%23dir%2525")
	assert.Contains(t, dsn, "?_journal_mode=WAL")

	db, err := Open(cfg)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(cfg.Path())
	require.NoError(t, err, "database file should be created at the literal path")

	var mode string
	require.NoError(t, db.GetConnection().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpen_DataDirFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join(blocker, "data")

	_, err := Open(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataDir)
}

func TestMigrate_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		db, err := Open(cfg)
		require.NoError(t, err)

		v, err := Migrate(ctx, db)
		require.NoError(t, err, "run %d", i)
		assert.Equal(t, len(Migrations), v)

		if i == 0 {
			_, err = db.GetConnection().Exec(
				`INSERT INTO contacts (id, email, createdAt) VALUES ('c1', 'a@b.co', '2024-01-01T00:00:00Z')`)
			require.NoError(t, err)
		}

		var n int
		require.NoError(t, db.GetConnection().QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&n))
		assert.Equal(t, 1, n, "rows must survive restart %d", i)

		require.NoError(t, db.Close())
	}
}

func TestMigrate_AddsTypeColumnToLegacyTable(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	db, err := Open(cfg)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.GetConnection().Exec(`CREATE TABLE contacts (
		id TEXT PRIMARY KEY, name TEXT, email TEXT NOT NULL, message TEXT, data TEXT, createdAt TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.GetConnection().Exec(
		`INSERT INTO contacts (id, email, createdAt) VALUES ('old', 'old@b.co', '2023-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = Migrate(ctx, db)
	require.NoError(t, err)

	var typ string
	require.NoError(t, db.GetConnection().QueryRow(`SELECT type FROM contacts WHERE id = 'old'`).Scan(&typ))
	assert.Equal(t, "contact", typ)
}

func TestSchemaVersion_Fresh(t *testing.T) {
	db, err := Open(testConfig(t))
	require.NoError(t, err)
	defer db.Close()

	_, err = MigrateWith(context.Background(), db, nil)
	require.NoError(t, err)

	v, err := SchemaVersion(context.Background(), db)
	require.NoError(t, err)
	assert.Zero(t, v)
}
