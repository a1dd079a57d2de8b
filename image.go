package markify

// Image holds the attributes of an image element that affect rendering.
type Image struct {
	Src   string
	Alt   string
	Title string

	// Parent is the tag name of the element's immediate parent.
	Parent string
}

// ImageResult is the outcome of saving a data URI image.
type ImageResult struct {
	// Ref is the relative reference to embed in the Markdown output.
	Ref string

	// Err is set when the image could not be decoded or written.
	Err error
}

// OK reports whether the image was saved and can be referenced.
func (r ImageResult) OK() bool {
	return r.Err == nil && r.Ref != ""
}

// ImageSaver writes data URI images to a directory.
type ImageSaver interface {
	// SaveImage decodes the data URI src into a new file under dir.
	// On success Ref is "<base name of dir>/<file name>".
	SaveImage(dir, src string) ImageResult
}

// RenderImage renders an image element.
//
// Inline images are replaced by their alt text unless their parent tag is
// listed in opts.KeepInlineImagesIn. Data URI sources are truncated, or saved
// through saver when opts.ImageOutputDir is set, unless opts.KeepDataURIs.
func RenderImage(img Image, inline bool, opts Options, saver ImageSaver) string {
	if inline && !opts.KeepsInlineImagesIn(img.Parent) {
		return img.Alt
	}

	src := img.Src
	if IsDataURI(src) && !opts.KeepDataURIs {
		src = externalizeDataURI(src, opts, saver)
	}
	return "![" + img.Alt + "](" + src + titleSuffix(img.Title) + ")"
}

func externalizeDataURI(src string, opts Options, saver ImageSaver) string {
	if opts.ImageOutputDir == "" || saver == nil {
		return TruncateDataURI(src)
	}
	if res := saver.SaveImage(opts.ImageOutputDir, src); res.OK() {
		return res.Ref
	}
	return TruncateDataURI(src)
}
