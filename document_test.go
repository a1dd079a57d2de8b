package markify_test

import (
	"testing"

	"github.com/fwojciec/markify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		doc := &markify.Document{Source: "page.html", Content: "# Page"}

		require.NoError(t, doc.Validate())
	})

	t.Run("requires source", func(t *testing.T) {
		t.Parallel()

		doc := &markify.Document{Content: "# Page"}

		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, markify.EINVALID, markify.ErrorCode(err))
	})
}
