package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/markify"
)

// Ensure LoggingConverter implements markify.Converter.
var _ markify.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with logging.
type LoggingConverter struct {
	next   markify.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next markify.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs input and output sizes.
func (c *LoggingConverter) Convert(html string) (markdown string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("convert",
			"bytes", len(html),
			"markdown_bytes", len(markdown),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html)
}
