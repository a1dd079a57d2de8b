package sqlite

import (
	"fmt"
	"time"

	"github.com/fwojciec/markify"
)

const documentColumns = "source, title, content, content_hash, converted_at"

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDocument reads a row selected with documentColumns.
func scanDocument(row scanner) (*markify.Document, error) {
	var doc markify.Document
	var convertedAt string
	if err := row.Scan(&doc.Source, &doc.Title, &doc.Content, &doc.ContentHash, &convertedAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, convertedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse converted_at of %s: %w", doc.Source, err)
	}
	doc.ConvertedAt = t
	return &doc, nil
}

// formatTime formats t the way converted_at is stored.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// limitClause returns the LIMIT/OFFSET suffix for non-zero values.
// SQLite only accepts OFFSET after LIMIT, so an offset alone uses LIMIT -1.
func limitClause(limit, offset int) (string, []any) {
	switch {
	case limit > 0 && offset > 0:
		return " LIMIT ? OFFSET ?", []any{limit, offset}
	case limit > 0:
		return " LIMIT ?", []any{limit}
	case offset > 0:
		return " LIMIT -1 OFFSET ?", []any{offset}
	}
	return "", nil
}
