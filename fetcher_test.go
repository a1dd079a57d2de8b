package markify_test

import (
	"testing"

	"github.com/fwojciec/markify"
	"github.com/stretchr/testify/assert"
)

func TestIsRemoteSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		want   bool
	}{
		{source: "https://example.com/docs", want: true},
		{source: "http://localhost:8080/", want: true},
		{source: "page.html", want: false},
		{source: "/var/www/index.html", want: false},
		{source: "-", want: false},
		{source: "file:///tmp/page.html", want: false},
		{source: "https://", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, markify.IsRemoteSource(tt.source))
		})
	}
}
