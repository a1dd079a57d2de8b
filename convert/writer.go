package convert

import (
	"context"

	"github.com/fwojciec/markify"
)

var _ markify.DocumentWriter = Writers(nil)

// Writers writes every document to each writer in turn, stopping at the
// first error.
type Writers []markify.DocumentWriter

// WriteDocument writes doc to all writers.
func (ws Writers) WriteDocument(ctx context.Context, doc *markify.Document) error {
	for _, w := range ws {
		if err := w.WriteDocument(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
