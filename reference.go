package markify

// ReferenceKind classifies a destination found in Markdown.
type ReferenceKind string

// ReferenceKind constants.
const (
	ReferenceLink     ReferenceKind = "link"
	ReferenceImage    ReferenceKind = "image"
	ReferenceAutolink ReferenceKind = "autolink"
)

// Reference is a link-like construct found in Markdown output.
type Reference struct {
	Kind        ReferenceKind
	Destination string
	Title       string
}

// Inspector lists the references contained in a Markdown document.
type Inspector interface {
	Inspect(markdown string) ([]Reference, error)
}
