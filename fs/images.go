package fs

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/markify"
	"github.com/google/uuid"
)

// maxNameAttempts bounds retries when a generated image name already exists.
const maxNameAttempts = 5

// Ensure ImageStore implements markify.ImageSaver at compile time.
var _ markify.ImageSaver = (*ImageStore)(nil)

// ImageStore writes data URI images to files named image_<id>.<ext>.
// Files are created exclusively, so concurrent conversions sharing a
// directory never overwrite each other's images.
type ImageStore struct {
	// NewID returns the random part of a file name.
	NewID func() string
}

// NewImageStore creates an ImageStore with 8 hex character random IDs.
func NewImageStore() *ImageStore {
	return &ImageStore{NewID: randomID}
}

func randomID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// SaveImage decodes src and writes it to a new file in dir, creating dir
// if needed. The returned Ref is "<base name of dir>/<file name>".
func (s *ImageStore) SaveImage(dir, src string) markify.ImageResult {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return markify.ImageResult{Err: err}
	}

	data, err := markify.DecodeDataURI(src)
	if err != nil {
		return markify.ImageResult{Err: err}
	}

	ext := safeExtension(markify.DataURIExtension(src))
	for range maxNameAttempts {
		name := "image_" + s.NewID() + "." + ext
		err := writeNew(filepath.Join(dir, name), data)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return markify.ImageResult{Err: err}
		}
		return markify.ImageResult{Ref: path.Join(filepath.Base(dir), name)}
	}
	return markify.ImageResult{Err: markify.Errorf(markify.EINTERNAL, "no free image name in %s", dir)}
}

// safeExtension replaces extensions that could escape the directory.
func safeExtension(ext string) string {
	if strings.HasPrefix(ext, ".") {
		return "png"
	}
	for _, r := range ext {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '+', r == '-', r == '.':
		default:
			return "png"
		}
	}
	return ext
}

// writeNew creates p exclusively and writes data to it. A partially written
// file is removed.
func writeNew(p string, data []byte) error {
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(p)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(p)
		return err
	}
	return nil
}
