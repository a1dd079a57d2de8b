package markify

import "slices"

// HeadingStyle selects how headings are written.
type HeadingStyle string

// HeadingStyleATX writes headings with leading '#' characters.
const HeadingStyleATX HeadingStyle = "atx"

// Options holds the settings shared by the heading, link and image rules.
// A value is fixed for the duration of one conversion.
type Options struct {
	// HeadingStyle is always ATX; other values are rejected by Validate.
	HeadingStyle HeadingStyle `yaml:"heading_style"`

	// KeepDataURIs leaves data URI image sources untouched.
	KeepDataURIs bool `yaml:"keep_data_uris"`

	// ImageOutputDir, when set, receives data URI images decoded to files.
	ImageOutputDir string `yaml:"image_output_dir"`

	// Autolinks renders links whose text equals their href as <href>.
	Autolinks bool `yaml:"autolinks"`

	// DefaultTitle uses the href as the link title when none is given.
	DefaultTitle bool `yaml:"default_title"`

	// KeepInlineImagesIn lists parent tags whose images survive inline rendering.
	KeepInlineImagesIn []string `yaml:"keep_inline_images_in"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		HeadingStyle: HeadingStyleATX,
		Autolinks:    true,
	}
}

// Validate returns an error if the options contain invalid fields.
func (o Options) Validate() error {
	if o.HeadingStyle != "" && o.HeadingStyle != HeadingStyleATX {
		return Errorf(EINVALID, "unsupported heading style %q", o.HeadingStyle)
	}
	return nil
}

// KeepsInlineImagesIn reports whether images directly under tag are kept
// when rendered inline.
func (o Options) KeepsInlineImagesIn(tag string) bool {
	return slices.Contains(o.KeepInlineImagesIn, tag)
}
