// Package goldmark lists the links and images in converted Markdown by
// parsing it with goldmark.
package goldmark

import (
	"github.com/fwojciec/markify"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure Inspector implements markify.Inspector at compile time.
var _ markify.Inspector = (*Inspector)(nil)

// Inspector parses Markdown as CommonMark and reports its references in
// document order.
type Inspector struct {
	md goldmark.Markdown
}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{md: goldmark.New()}
}

// Inspect returns every inline link, image and autolink in markdown.
// Reference-style links are reported with their resolved destination.
func (i *Inspector) Inspect(markdown string) ([]markify.Reference, error) {
	source := []byte(markdown)
	root := i.md.Parser().Parse(text.NewReader(source))

	refs := make([]markify.Reference, 0)
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.AutoLink:
			refs = append(refs, markify.Reference{
				Kind:        markify.ReferenceAutolink,
				Destination: string(node.URL(source)),
			})
		case *ast.Image:
			refs = append(refs, markify.Reference{
				Kind:        markify.ReferenceImage,
				Destination: string(node.Destination),
				Title:       string(node.Title),
			})
		case *ast.Link:
			refs = append(refs, markify.Reference{
				Kind:        markify.ReferenceLink,
				Destination: string(node.Destination),
				Title:       string(node.Title),
			})
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, markify.Errorf(markify.EINTERNAL, "walking markdown: %v", err)
	}
	return refs, nil
}
