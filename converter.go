package markify

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown using the heading, link
	// and image rules of this package.
	Convert(html string) (string, error)
}
