package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/markify"
)

// Ensure LoggingSitemapService implements markify.SitemapService.
var _ markify.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   markify.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next markify.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// URLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) URLs(ctx context.Context, sitemapURL string, filter *markify.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap",
			"url", sitemapURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.URLs(ctx, sitemapURL, filter)
}
