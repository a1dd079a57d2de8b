package mock

import (
	"context"

	"github.com/fwojciec/markify"
)

var _ markify.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of markify.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *markify.Document) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *markify.Document) error {
	return w.WriteDocumentFn(ctx, doc)
}
