// Package readability narrows crawled pages to their main content
// using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/bfscrawl"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements bfscrawl.Extractor at compile time.
var _ bfscrawl.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the readable article content of the page as HTML.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", bfscrawl.Errorf(bfscrawl.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}
	return article.Content, nil
}
