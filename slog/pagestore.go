package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/bfscrawl"
)

// Ensure LoggingStore implements bfscrawl.PageStore.
var _ bfscrawl.PageStore = (*LoggingStore)(nil)

// LoggingStore wraps a PageStore with logging of saves and transaction outcome.
type LoggingStore struct {
	next   bfscrawl.PageStore
	logger *slog.Logger
	saved  int
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next bfscrawl.PageStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save logs the page being saved and delegates to the wrapped store.
func (s *LoggingStore) Save(ctx context.Context, page *bfscrawl.Page) error {
	err := s.next.Save(ctx, page)
	if err != nil {
		s.logger.Error("save page", "url", page.URL, "err", err)
		return err
	}
	s.saved++
	s.logger.Debug("save page", "url", page.URL, "depth", page.Depth, "bytes", len(page.Content))
	return nil
}

// Commit logs the number of pages committed.
func (s *LoggingStore) Commit() error {
	err := s.next.Commit()
	s.logger.Info("commit pages", "pages", s.saved, "err", err)
	return err
}

// Abort logs that pending pages were discarded.
func (s *LoggingStore) Abort() error {
	err := s.next.Abort()
	s.logger.Info("abort pages", "pages", s.saved, "err", err)
	return err
}
