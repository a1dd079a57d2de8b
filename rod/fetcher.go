// Package rod fetches pages through a headless Chrome browser so that
// content rendered by JavaScript is converted too.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/markify"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation and load of a single page.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements markify.Fetcher at compile time.
var _ markify.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-page timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	f.launcher = launcher.New().Headless(true)
	u, err := f.launcher.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	f.browser = rod.New().ControlURL(u)
	if err := f.browser.Connect(); err != nil {
		f.launcher.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources and stops the browser process.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
