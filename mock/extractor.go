package mock

import "github.com/fwojciec/markify"

var _ markify.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of markify.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*markify.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*markify.ExtractResult, error) {
	return e.ExtractFn(html)
}
