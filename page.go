package bfscrawl

import "context"

// Page represents a crawled page.
type Page struct {
	URL     string `json:"url"`
	Depth   int    `json:"depth"`
	Content string `json:"content"` // Markdown
}

// Validate returns an error if the page contains invalid fields.
// Empty content is valid: a page whose fetch failed is recorded with no content.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Depth < 0 {
		return Errorf(EINVALID, "page depth must not be negative")
	}
	return nil
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a pending location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
