package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("memory database is migrated", func(t *testing.T) {
		db, err := Open(ctx, Config{}, nil)
		require.NoError(t, err)
		defer db.Close()
		assert.Equal(t, MemoryPath, db.Path())

		applied, err := NewMigrationManager(db.DB, nil).AppliedMigrations(ctx)
		require.NoError(t, err)
		assert.True(t, applied[1])

		var n int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM event_rows").Scan(&n))
		assert.Zero(t, n)
	})

	t.Run("file database migrates once", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "handover.db")
		db, err := Open(ctx, Config{Path: path}, nil)
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db, err = Open(ctx, Config{Path: path}, nil)
		require.NoError(t, err)
		defer db.Close()

		var n int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations").Scan(&n))
		assert.Equal(t, 1, n)
	})
}

func TestTransaction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := Open(ctx, Config{}, nil)
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	err = db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO event_rows
			(position, code, description, trigger_cond, condition_type, action)
			VALUES (0, 'A1', '', '', '', '')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM event_rows").Scan(&n))
	assert.Zero(t, n, "rolled back")
}

func TestLoadMigrations(t *testing.T) {
	t.Parallel()

	migrations, err := NewMigrationManager(nil, nil).LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "001_event_table", migrations[0].Name)
	assert.Contains(t, migrations[0].SQL, "event_rows")
}
