package bfscrawl

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch makes a single attempt to retrieve the URL and returns the
	// response body as text. Network errors, non-OK statuses and timeouts
	// are returned as errors; callers decide how to recover.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
