package markify

// ExtractResult holds the part of an HTML page that gets converted.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string
	// ContentHTML is the HTML handed to the Converter.
	ContentHTML string
}

// Extractor selects the content of an HTML page to convert.
type Extractor interface {
	// Extract processes raw HTML and returns its title and the HTML to
	// convert. Implementations range from dropping scripts and styles to
	// full boilerplate removal.
	Extract(html string) (*ExtractResult, error)
}

// ExtractMode names an Extractor implementation.
type ExtractMode string

// ExtractMode constants.
const (
	ExtractNone        ExtractMode = "none"
	ExtractBody        ExtractMode = "body"
	ExtractReadability ExtractMode = "readability"
	ExtractTrafilatura ExtractMode = "trafilatura"
)
