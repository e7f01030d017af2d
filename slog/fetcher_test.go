package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
	"github.com/fwojciec/bfscrawl/mock"
	bfsslog "github.com/fwojciec/bfscrawl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ bfscrawl.Fetcher = (*bfsslog.LoggingFetcher)(nil)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs page size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body>hi</body></html>", nil
			},
		}

		fetcher := bfsslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://a.test/page")

		require.NoError(t, err)
		assert.Equal(t, "<html><body>hi</body></html>", html)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://a.test/page")
		assert.Contains(t, output, "bytes=28")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failure with zero bytes and passes the error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		fetchErr := errors.New("HTTP 404 for https://a.test/missing")
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", fetchErr
			},
		}

		fetcher := bfsslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://a.test/missing")

		assert.Empty(t, html)
		require.ErrorIs(t, err, fetchErr)
		output := buf.String()
		assert.Contains(t, output, "url=https://a.test/missing")
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, `err="HTTP 404 for https://a.test/missing"`)
	})

	t.Run("failed fetch inside a crawl is logged and recorded as an empty page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		processor := &mock.PageProcessor{
			ExtractContentFn: func(html string) (string, error) { return html, nil },
			ExtractLinksFn:   func(html string, baseURL string) ([]string, error) { return nil, nil },
		}

		engine, err := crawl.NewEngine(bfsslog.NewLoggingFetcher(inner, logger), processor, bfscrawl.DefaultConfig())
		require.NoError(t, err)
		pages, err := engine.Crawl(context.Background(), "https://down.test/", nil)

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Empty(t, pages[0].Content)
		output := buf.String()
		assert.Contains(t, output, "url=https://down.test/")
		assert.Contains(t, output, `err="connection refused"`)
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("returns the inner fetcher's close error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeErr := errors.New("already closed")
		inner := &mock.Fetcher{
			CloseFn: func() error {
				return closeErr
			},
		}

		fetcher := bfsslog.NewLoggingFetcher(inner, logger)

		require.ErrorIs(t, fetcher.Close(), closeErr)
		assert.Empty(t, buf.String())
	})
}
