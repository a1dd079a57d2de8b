package mock

import "github.com/fwojciec/markify"

var _ markify.ImageSaver = (*ImageSaver)(nil)

// ImageSaver is a mock implementation of markify.ImageSaver.
type ImageSaver struct {
	SaveImageFn func(dir, src string) markify.ImageResult
}

func (s *ImageSaver) SaveImage(dir, src string) markify.ImageResult {
	return s.SaveImageFn(dir, src)
}
