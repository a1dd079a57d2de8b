package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/markify"
	markifyhttp "github.com/fwojciec/markify/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ markify.Fetcher = (*markifyhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := markifyhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends user agent", func(t *testing.T) {
		t.Parallel()

		ua := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua <- r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := markifyhttp.NewFetcher(markifyhttp.WithUserAgent("test-agent/2"))
		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "test-agent/2", <-ua)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := markifyhttp.NewFetcher(markifyhttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := markifyhttp.NewFetcher().Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns not found for 404", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		_, err := markifyhttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, markify.ENOTFOUND, markify.ErrorCode(err))
	})

	t.Run("returns error for other non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := markifyhttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}
