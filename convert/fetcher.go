package convert

import (
	"context"
	"errors"

	"github.com/fwojciec/markify"
)

var _ markify.Fetcher = (*SourceFetcher)(nil)

// SourceFetcher dispatches http(s) URLs to Remote and everything else
// (paths and "-") to Local.
type SourceFetcher struct {
	Remote markify.Fetcher
	Local  markify.Fetcher
}

// Fetch reads source with the fetcher matching its kind.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (string, error) {
	if markify.IsRemoteSource(source) {
		if f.Remote == nil {
			return "", markify.Errorf(markify.EINVALID, "remote sources are not supported: %s", source)
		}
		return f.Remote.Fetch(ctx, source)
	}
	if f.Local == nil {
		return "", markify.Errorf(markify.EINVALID, "local sources are not supported: %s", source)
	}
	return f.Local.Fetch(ctx, source)
}

// Close closes both fetchers.
func (f *SourceFetcher) Close() error {
	var errs []error
	for _, fetcher := range []markify.Fetcher{f.Remote, f.Local} {
		if fetcher == nil {
			continue
		}
		if err := fetcher.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
