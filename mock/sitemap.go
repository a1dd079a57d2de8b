package mock

import (
	"context"

	"github.com/fwojciec/markify"
)

var _ markify.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of markify.SitemapService.
type SitemapService struct {
	URLsFn func(ctx context.Context, sitemapURL string, filter *markify.URLFilter) ([]string, error)
}

func (s *SitemapService) URLs(ctx context.Context, sitemapURL string, filter *markify.URLFilter) ([]string, error) {
	return s.URLsFn(ctx, sitemapURL, filter)
}
