// Package readability selects the article content of a page with
// go-readability before conversion.
package readability

import (
	"strings"

	"github.com/fwojciec/markify"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements markify.Extractor at compile time.
var _ markify.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content.
func (e *Extractor) Extract(rawHTML string) (*markify.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, markify.Errorf(markify.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, markify.Errorf(markify.EINVALID, "readability: %v", err)
	}

	return &markify.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
