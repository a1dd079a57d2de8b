// Package fs provides file-based storage for converted documents and
// extracted images, and reads local HTML sources.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/markify"
	"gopkg.in/yaml.v3"
)

// SourceToPath converts a source to a relative Markdown file path.
//
// URLs keep their path: https://example.com/docs/api → docs/api.md.
// Local files keep their base name: pages/intro.html → intro.md.
// Standard input becomes stdin.md.
func SourceToPath(source string) (string, error) {
	if source == markify.StdinSource {
		return "stdin.md", nil
	}
	if markify.IsRemoteSource(source) {
		return urlToPath(source)
	}

	base := filepath.Base(source)
	if base == "." || base == string(filepath.Separator) {
		return "", markify.Errorf(markify.EINVALID, "cannot derive file name from %q", source)
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".md", nil
}

func urlToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	// Cleaning a rooted path resolves every ".." without climbing above it.
	p := path.Clean("/" + u.Path)
	if p == "/" {
		return "index.md", nil
	}
	p = strings.TrimPrefix(p, "/")

	if strings.HasSuffix(u.Path, "/") {
		return p + "/index.md", nil
	}

	// Pages served as .html keep their name with a Markdown extension.
	if ext := path.Ext(p); ext == ".html" || ext == ".htm" {
		p = strings.TrimSuffix(p, ext)
	}
	return p + ".md", nil
}

// CheckPaths returns an EINVALID error when two sources would be written to
// the same file.
func CheckPaths(sources []string) error {
	seen := make(map[string]string, len(sources))
	for _, source := range sources {
		p, err := SourceToPath(source)
		if err != nil {
			return err
		}
		if prev, ok := seen[p]; ok && prev != source {
			return markify.Errorf(markify.EINVALID, "%s and %s both write to %s", prev, source, p)
		}
		seen[p] = source
	}
	return nil
}

// frontmatter is the YAML header written before document content.
type frontmatter struct {
	Source    string    `yaml:"source"`
	Title     string    `yaml:"title,omitempty"`
	Converted time.Time `yaml:"converted"`
	Hash      string    `yaml:"hash,omitempty"`
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *markify.Document) (string, error) {
	header, err := yaml.Marshal(frontmatter{
		Source:    doc.Source,
		Title:     doc.Title,
		Converted: doc.ConvertedAt.UTC(),
		Hash:      doc.ContentHash,
	})
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(doc.Content)
	return b.String(), nil
}

// Ensure Writer implements markify.DocumentWriter at compile time.
var _ markify.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory. A file written
// for one source is never overwritten by a different source.
type Writer struct {
	baseDir     string
	frontmatter bool

	mu      sync.Mutex
	written map[string]string // path -> source
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithFrontmatter prefixes every written document with YAML frontmatter.
func WithFrontmatter(enabled bool) WriterOption {
	return func(w *Writer) {
		w.frontmatter = enabled
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, opts ...WriterOption) *Writer {
	w := &Writer{baseDir: baseDir, written: make(map[string]string)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteDocument writes a document to disk as a markdown file.
func (w *Writer) WriteDocument(ctx context.Context, doc *markify.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := SourceToPath(doc.Source)
	if err != nil {
		return err
	}

	if !filepath.IsLocal(filepath.FromSlash(relPath)) {
		return markify.Errorf(markify.EINVALID, "%s resolves outside the output directory", doc.Source)
	}
	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))
	if err := w.claim(fullPath, doc.Source); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content := doc.Content
	if w.frontmatter {
		content, err = FormatDocument(doc)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// claim reserves p for source.
func (w *Writer) claim(p, source string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if prev, ok := w.written[p]; ok && prev != source {
		return markify.Errorf(markify.EINVALID, "%s already written for %s", p, prev)
	}
	w.written[p] = source
	return nil
}
