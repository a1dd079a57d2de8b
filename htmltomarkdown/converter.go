// Package htmltomarkdown converts HTML to Markdown with the
// html-to-markdown engine, overriding its heading, link and image rules
// with the ones from package markify.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/markify"
)

// Ensure Converter implements markify.Converter at compile time.
var _ markify.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	opts   markify.Options
	images markify.ImageSaver
}

// Option configures a Converter.
type Option func(*Converter)

// WithOptions sets the rendering options.
// Defaults to markify.DefaultOptions() if not specified.
func WithOptions(opts markify.Options) Option {
	return func(c *Converter) {
		c.opts = opts
	}
}

// WithImageSaver sets where data URI images are written when
// Options.ImageOutputDir is set. Without a saver such images are truncated.
func WithImageSaver(s markify.ImageSaver) Option {
	return func(c *Converter) {
		c.images = s
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		opts: markify.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.conv = converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
			&rules{opts: c.opts, images: c.images},
		),
	)
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", markify.Errorf(markify.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
