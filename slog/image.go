package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/markify"
)

// Ensure LoggingImageSaver implements markify.ImageSaver.
var _ markify.ImageSaver = (*LoggingImageSaver)(nil)

// LoggingImageSaver wraps an ImageSaver with logging. Failed saves are
// logged at warn level since the renderer falls back to a truncated URI
// without reporting them.
type LoggingImageSaver struct {
	next   markify.ImageSaver
	logger *slog.Logger
}

// NewLoggingImageSaver creates a new LoggingImageSaver.
func NewLoggingImageSaver(next markify.ImageSaver, logger *slog.Logger) *LoggingImageSaver {
	return &LoggingImageSaver{next: next, logger: logger}
}

// SaveImage delegates to the wrapped saver and logs the outcome.
func (s *LoggingImageSaver) SaveImage(dir, src string) markify.ImageResult {
	begin := time.Now()
	res := s.next.SaveImage(dir, src)
	if res.Err != nil {
		s.logger.Warn("save image failed",
			"dir", dir,
			"uri", markify.TruncateDataURI(src),
			"err", res.Err,
		)
		return res
	}
	s.logger.Info("save image",
		"dir", dir,
		"ref", res.Ref,
		"duration", time.Since(begin),
	)
	return res
}
