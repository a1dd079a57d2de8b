package markify_test

import (
	"testing"

	"github.com/fwojciec/markify"
	"github.com/stretchr/testify/assert"
)

func TestChomp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		prefix string
		core   string
		suffix string
	}{
		{name: "no whitespace", text: "link", core: "link"},
		{name: "both sides", text: " link ", prefix: " ", core: "link", suffix: " "},
		{name: "mixed whitespace kept verbatim", text: "\n\t link text \n", prefix: "\n\t ", core: "link text", suffix: " \n"},
		{name: "only whitespace", text: "   ", prefix: "   "},
		{name: "empty", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prefix, core, suffix := markify.Chomp(tt.text)

			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.core, core)
			assert.Equal(t, tt.suffix, suffix)
			assert.Equal(t, tt.text, prefix+core+suffix)
		})
	}
}
