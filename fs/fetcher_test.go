package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/markify"
	"github.com/fwojciec/markify/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("reads local file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<p>Hi</p>"), 0644))

		html, err := fs.NewFetcher().Fetch(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "<p>Hi</p>", html)
	})

	t.Run("reads stdin for dash", func(t *testing.T) {
		t.Parallel()

		f := fs.NewFetcher(fs.WithStdin(strings.NewReader("<h1>Piped</h1>")))

		html, err := f.Fetch(context.Background(), "-")

		require.NoError(t, err)
		assert.Equal(t, "<h1>Piped</h1>", html)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewFetcher().Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.html"))

		require.Error(t, err)
		assert.Equal(t, markify.ENOTFOUND, markify.ErrorCode(err))
	})

	t.Run("respects canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewFetcher().Fetch(ctx, "page.html")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	require.NoError(t, fs.NewFetcher().Close())
}
