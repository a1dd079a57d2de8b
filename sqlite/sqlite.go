// Package sqlite keeps an index of converted documents in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Memory is the path of a private in-memory database.
const Memory = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	source TEXT PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL DEFAULT '',
	content_hash TEXT NOT NULL DEFAULT '',
	converted_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_converted_at ON documents(converted_at);
`

// DB is a connection to the document index.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for the database file at path. Use Memory for a
// database that lives only as long as the connection.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// pragmas returns the connection settings for the database. WAL is not
// available for in-memory databases.
func (db *DB) pragmas() []string {
	p := []string{"PRAGMA busy_timeout = 5000"}
	if db.path != Memory {
		p = append(p, "PRAGMA journal_mode = WAL")
	}
	return p
}

// Open connects to the database and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	for _, pragma := range db.pragmas() {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	db.db = conn
	return nil
}

// Close closes the connection. It is safe to call on a DB that was never
// opened.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
