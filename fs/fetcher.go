package fs

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/markify"
)

// Ensure Fetcher implements markify.Fetcher at compile time.
var _ markify.Fetcher = (*Fetcher)(nil)

// Fetcher reads HTML from local files, or from standard input for "-".
type Fetcher struct {
	stdin io.Reader
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithStdin sets the reader used for the "-" source.
// Defaults to os.Stdin.
func WithStdin(r io.Reader) FetcherOption {
	return func(f *Fetcher) {
		f.stdin = r
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{stdin: os.Stdin}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the content of the file at source.
func (f *Fetcher) Fetch(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if source == markify.StdinSource {
		data, err := io.ReadAll(f.stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if errors.Is(err, os.ErrNotExist) {
		return "", markify.Errorf(markify.ENOTFOUND, "file %q not found", source)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op; files are closed after each read.
func (f *Fetcher) Close() error {
	return nil
}
