package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/markify"
)

// Compile-time interface verification.
var _ markify.DocumentWriter = (*DocumentStore)(nil)

// DocumentStore stores converted documents keyed by source. Writing a
// source again replaces the stored document.
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// DocumentFilter selects stored documents.
type DocumentFilter struct {
	// SourcePrefix restricts results to sources starting with the prefix.
	SourcePrefix string

	Limit  int
	Offset int
}

// WriteDocument inserts or replaces the document for doc.Source.
func (s *DocumentStore) WriteDocument(ctx context.Context, doc *markify.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	convertedAt := doc.ConvertedAt
	if convertedAt.IsZero() {
		convertedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			converted_at = excluded.converted_at
	`, doc.Source, doc.Title, doc.Content, doc.ContentHash, formatTime(convertedAt))
	if err != nil {
		return fmt.Errorf("store %s: %w", doc.Source, err)
	}
	return nil
}

// FindDocument retrieves the document stored for source.
func (s *DocumentStore) FindDocument(ctx context.Context, source string) (*markify.Document, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE source = ?", source)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, markify.Errorf(markify.ENOTFOUND, "document not found: %s", source)
	}
	return doc, err
}

// FindDocuments retrieves documents matching the filter ordered by source.
func (s *DocumentStore) FindDocuments(ctx context.Context, filter DocumentFilter) ([]*markify.Document, error) {
	query := "SELECT " + documentColumns + " FROM documents"
	var args []any
	if filter.SourcePrefix != "" {
		query += " WHERE instr(source, ?) = 1"
		args = append(args, filter.SourcePrefix)
	}
	query += " ORDER BY source ASC"
	limit, limitArgs := limitClause(filter.Limit, filter.Offset)
	query += limit
	args = append(args, limitArgs...)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]*markify.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
