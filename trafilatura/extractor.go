// Package trafilatura selects the main content of a page with go-trafilatura
// before conversion.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/markify"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements markify.Extractor at compile time.
var _ markify.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// Links and images are kept so the link and image rules still apply to
// the extracted content.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			IncludeLinks:   true,
			IncludeImages:  true,
		},
	}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*markify.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, markify.Errorf(markify.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, markify.Errorf(markify.EINVALID, "trafilatura: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &markify.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
