package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/bfscrawl/mock"
	bfsslog "github.com/fwojciec/bfscrawl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDebugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingProcessor_ExtractContent(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and returns inner result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageProcessor{
			ExtractContentFn: func(html string) (string, error) {
				return "# Title", nil
			},
		}

		p := bfsslog.NewLoggingProcessor(inner, newDebugLogger(&buf))
		content, err := p.ExtractContent("<h1>Title</h1>")

		require.NoError(t, err)
		assert.Equal(t, "# Title", content)
		output := buf.String()
		assert.Contains(t, output, "extract content")
		assert.Contains(t, output, "html_bytes=14")
		assert.Contains(t, output, "content_bytes=7")
	})

	t.Run("is silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageProcessor{
			ExtractContentFn: func(html string) (string, error) {
				return "", nil
			},
		}

		p := bfsslog.NewLoggingProcessor(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := p.ExtractContent("<p></p>")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingProcessor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("logs link count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageProcessor{
			ExtractLinksFn: func(html string, baseURL string) ([]string, error) {
				return []string{"https://a.test/1", "https://a.test/2"}, nil
			},
		}

		p := bfsslog.NewLoggingProcessor(inner, newDebugLogger(&buf))
		links, err := p.ExtractLinks("<html></html>", "https://a.test/")

		require.NoError(t, err)
		assert.Len(t, links, 2)
		output := buf.String()
		assert.Contains(t, output, "extract links")
		assert.Contains(t, output, "url=https://a.test/")
		assert.Contains(t, output, "links=2")
	})

	t.Run("logs error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageProcessor{
			ExtractLinksFn: func(html string, baseURL string) ([]string, error) {
				return nil, errors.New("bad base")
			},
		}

		p := bfsslog.NewLoggingProcessor(inner, newDebugLogger(&buf))
		_, err := p.ExtractLinks("<html></html>", "relative")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"bad base\"")
	})
}
