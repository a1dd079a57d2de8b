package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/markify/mock"
	mslog "github.com/fwojciec/markify/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "# Hi", nil
			},
		}

		conv := mslog.NewLoggingConverter(inner, logger)
		md, err := conv.Convert("<h1>Hi</h1>")

		require.NoError(t, err)
		assert.Equal(t, "# Hi", md)
		output := buf.String()
		assert.Contains(t, output, "msg=convert")
		assert.Contains(t, output, "bytes=11")
		assert.Contains(t, output, "markdown_bytes=4")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("bad input")
			},
		}

		conv := mslog.NewLoggingConverter(inner, logger)
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"bad input\"")
	})
}
