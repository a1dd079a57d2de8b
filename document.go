package markify

import (
	"context"
	"time"
)

// Document is the Markdown produced from one source.
type Document struct {
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	ConvertedAt time.Time `json:"convertedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Source == "" {
		return Errorf(EINVALID, "document source required")
	}
	return nil
}

// DocumentWriter writes converted documents to storage.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document) error
}
