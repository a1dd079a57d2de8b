package markify

import (
	"context"
	"net/url"
)

// Fetcher retrieves raw HTML for a source.
type Fetcher interface {
	// Fetch returns the HTML behind source. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, source string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// StdinSource is the source name that reads HTML from standard input.
const StdinSource = "-"

// IsRemoteSource reports whether source is an http or https URL.
func IsRemoteSource(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
