package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bfscrawl.PageStore = (*PageStore)(nil)

// PageStore implements bfscrawl.PageStore using SQLite.
// All pages of one crawl are written in a single transaction which is
// opened on first use. Commit records the crawl; Abort leaves no trace.
type PageStore struct {
	db       *DB
	id       string
	startURL string
	tx       *sql.Tx
	position int
}

// NewPageStore creates a PageStore recording a crawl that began at startURL.
func NewPageStore(db *DB, startURL string) *PageStore {
	return &PageStore{
		db:       db,
		id:       uuid.New().String(),
		startURL: startURL,
	}
}

// CrawlID returns the identifier under which pages are recorded.
func (s *PageStore) CrawlID() string {
	return s.id
}

func (s *PageStore) begin(ctx context.Context) error {
	if s.tx != nil {
		return nil
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO crawls (id, start_url, created_at)
		VALUES (?, ?, ?)
	`, s.id, s.startURL, time.Now().UTC().Format(time.RFC3339)); err != nil {
		_ = tx.Rollback()
		return err
	}

	s.tx = tx
	return nil
}

// Save inserts the page at the next position of the crawl.
func (s *PageStore) Save(ctx context.Context, page *bfscrawl.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}
	if err := s.begin(ctx); err != nil {
		return err
	}

	_, err := s.tx.ExecContext(ctx, `
		INSERT INTO pages (crawl_id, position, url, depth, content, content_hash)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.id, s.position, page.URL, page.Depth, page.Content, crawl.ComputeHash(page.Content))
	if err != nil {
		return err
	}

	s.position++
	return nil
}

// Commit makes the crawl and its pages permanent.
func (s *PageStore) Commit() error {
	if err := s.begin(context.Background()); err != nil {
		return err
	}
	err := s.tx.Commit()
	s.tx = nil
	return err
}

// Abort discards every page saved since the store was created.
func (s *PageStore) Abort() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	return err
}
