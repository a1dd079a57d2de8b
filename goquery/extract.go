// Package goquery implements a lightweight markify.Extractor on top of
// goquery. It keeps the whole page body and only drops elements that never
// carry readable content.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/markify"
)

// Ensure BodyExtractor implements markify.Extractor at compile time.
var _ markify.Extractor = (*BodyExtractor)(nil)

// DefaultStripSelector matches the elements removed before conversion.
const DefaultStripSelector = "script, style, noscript, template"

// BodyExtractor returns the inner HTML of <body> with non-content elements
// removed.
type BodyExtractor struct {
	// Strip is a CSS selector for elements to remove. Defaults to
	// DefaultStripSelector when empty.
	Strip string
}

// NewBodyExtractor creates a new BodyExtractor.
func NewBodyExtractor() *BodyExtractor {
	return &BodyExtractor{Strip: DefaultStripSelector}
}

// Extract parses rawHTML and returns its title and cleaned body.
func (e *BodyExtractor) Extract(rawHTML string) (*markify.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, markify.Errorf(markify.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, markify.Errorf(markify.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("head title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	strip := e.Strip
	if strip == "" {
		strip = DefaultStripSelector
	}
	doc.Find(strip).Remove()

	content := doc.Selection
	if body := doc.Find("body").First(); body.Length() > 0 {
		content = body
	}
	contentHTML, err := content.Html()
	if err != nil {
		return nil, markify.Errorf(markify.EINTERNAL, "failed to render HTML: %v", err)
	}

	return &markify.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(contentHTML),
	}, nil
}
