package markify_test

import (
	"testing"

	"github.com/fwojciec/markify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewURLFilter(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without patterns", func(t *testing.T) {
		t.Parallel()

		f, err := markify.NewURLFilter(nil, nil)

		require.NoError(t, err)
		assert.Nil(t, f)
		assert.True(t, f.Match("https://example.com/anything"))
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()

		_, err := markify.NewURLFilter([]string{"("}, nil)

		require.Error(t, err)
		assert.Equal(t, markify.EINVALID, markify.ErrorCode(err))
	})
}

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	f, err := markify.NewURLFilter([]string{`/docs/`}, []string{`/docs/old/`})
	require.NoError(t, err)

	tests := []struct {
		url  string
		want bool
	}{
		{url: "https://example.com/docs/intro", want: true},
		{url: "https://example.com/blog/post", want: false},
		{url: "https://example.com/docs/old/intro", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, f.Match(tt.url))
		})
	}
}
