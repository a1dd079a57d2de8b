package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/markify/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openDB opens an in-memory database closed at the end of the test.
func openDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(sqlite.Memory)
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates an empty documents table", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)

		var n int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM documents").Scan(&n)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("sets a busy timeout", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)

		var timeout int
		err := db.QueryRowContext(context.Background(), "PRAGMA busy_timeout").Scan(&timeout)
		require.NoError(t, err)
		assert.Equal(t, 5000, timeout)
	})

	t.Run("uses WAL for database files", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "docs.db"))
		require.NoError(t, db.Open())
		defer db.Close()

		var mode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&mode)
		require.NoError(t, err)
		assert.Equal(t, "wal", mode)
	})

	t.Run("reopens an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "docs.db")
		first := sqlite.NewDB(path)
		require.NoError(t, first.Open())
		require.NoError(t, first.Close())

		second := sqlite.NewDB(path)
		require.NoError(t, second.Open())
		assert.NoError(t, second.Close())
	})

	t.Run("fails for a missing directory", func(t *testing.T) {
		t.Parallel()

		err := sqlite.NewDB("/nonexistent/path/docs.db").Open()
		require.Error(t, err)
	})
}

func TestDB_Close(t *testing.T) {
	t.Parallel()

	assert.NoError(t, sqlite.NewDB(sqlite.Memory).Close())
}
