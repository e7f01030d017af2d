package mock

import (
	"context"

	"github.com/fwojciec/bfscrawl"
)

var _ bfscrawl.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of bfscrawl.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *bfscrawl.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *bfscrawl.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
