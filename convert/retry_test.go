package convert_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/markify"
	"github.com/fwojciec/markify/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{0, 0, 0}

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		html, err := convert.FetchWithRetryDelays(context.Background(), "https://example.com",
			func(context.Context, string) (string, error) {
				calls++
				return "<p>ok</p>", nil
			}, nil, delays)

		require.NoError(t, err)
		assert.Equal(t, "<p>ok</p>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after all delays with last error", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := convert.FetchWithRetryDelays(context.Background(), "https://example.com",
			func(context.Context, string) (string, error) {
				calls++
				return "", errors.New("timeout")
			}, nil, delays)

		require.EqualError(t, err, "timeout")
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry not found", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := convert.FetchWithRetryDelays(context.Background(), "https://example.com/missing",
			func(context.Context, string) (string, error) {
				calls++
				return "", markify.Errorf(markify.ENOTFOUND, "page not found")
			}, nil, delays)

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("logs each retry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		calls := 0
		_, err := convert.FetchWithRetryDelays(context.Background(), "https://example.com",
			func(context.Context, string) (string, error) {
				calls++
				if calls < 3 {
					return "", errors.New("flaky")
				}
				return "ok", nil
			}, logger, delays)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "attempt=2")
		assert.Contains(t, buf.String(), "attempt=3")
		assert.NotContains(t, buf.String(), "attempt=4")
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := convert.FetchWithRetryDelays(ctx, "https://example.com",
			func(context.Context, string) (string, error) {
				return "", errors.New("down")
			}, nil, []time.Duration{time.Minute})

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
