package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/bfscrawl"
)

// Crawl is a recorded crawl run.
type Crawl struct {
	ID        string
	StartURL  string
	CreatedAt time.Time
}

// FindCrawl returns the crawl with the given ID.
func (db *DB) FindCrawl(ctx context.Context, id string) (*Crawl, error) {
	var c Crawl
	var createdAt string
	err := db.QueryRowContext(ctx, `
		SELECT id, start_url, created_at FROM crawls WHERE id = ?
	`, id).Scan(&c.ID, &c.StartURL, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, bfscrawl.Errorf(bfscrawl.ENOTFOUND, "crawl not found")
	}
	if err != nil {
		return nil, err
	}

	c.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindPages returns the pages of a crawl in the order they were recorded.
func (db *DB) FindPages(ctx context.Context, crawlID string) ([]*bfscrawl.Page, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT url, depth, content FROM pages
		WHERE crawl_id = ?
		ORDER BY position
	`, crawlID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*bfscrawl.Page
	for rows.Next() {
		var p bfscrawl.Page
		if err := rows.Scan(&p.URL, &p.Depth, &p.Content); err != nil {
			return nil, err
		}
		pages = append(pages, &p)
	}
	return pages, rows.Err()
}
