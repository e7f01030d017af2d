package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
	"github.com/fwojciec/bfscrawl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ bfscrawl.PageStore = (*sqlite.PageStore)(nil)

func TestPageStore(t *testing.T) {
	t.Parallel()

	t.Run("commit persists crawl and pages in order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		store := sqlite.NewPageStore(db, "https://a.test/")

		require.NoError(t, store.Save(ctx, &bfscrawl.Page{URL: "https://a.test/", Depth: 0, Content: "root"}))
		require.NoError(t, store.Save(ctx, &bfscrawl.Page{URL: "https://a.test/b", Depth: 1, Content: ""}))
		require.NoError(t, store.Save(ctx, &bfscrawl.Page{URL: "https://a.test/a", Depth: 1, Content: "a"}))
		require.NoError(t, store.Commit())

		c, err := db.FindCrawl(ctx, store.CrawlID())
		require.NoError(t, err)
		assert.Equal(t, "https://a.test/", c.StartURL)
		assert.WithinDuration(t, time.Now(), c.CreatedAt, time.Minute)

		pages, err := db.FindPages(ctx, store.CrawlID())
		require.NoError(t, err)
		require.Len(t, pages, 3)
		assert.Equal(t, "https://a.test/", pages[0].URL)
		assert.Equal(t, "https://a.test/b", pages[1].URL)
		assert.Equal(t, 1, pages[1].Depth)
		assert.Empty(t, pages[1].Content)
		assert.Equal(t, "https://a.test/a", pages[2].URL)
	})

	t.Run("stores content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		store := sqlite.NewPageStore(db, "https://a.test/")

		require.NoError(t, store.Save(ctx, &bfscrawl.Page{URL: "https://a.test/", Content: "# Hello"}))
		require.NoError(t, store.Commit())

		var hash string
		err := db.QueryRowContext(ctx, "SELECT content_hash FROM pages WHERE crawl_id = ?", store.CrawlID()).Scan(&hash)
		require.NoError(t, err)
		assert.Equal(t, crawl.ComputeHash("# Hello"), hash)
	})

	t.Run("abort leaves no crawl behind", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		store := sqlite.NewPageStore(db, "https://a.test/")

		require.NoError(t, store.Save(ctx, &bfscrawl.Page{URL: "https://a.test/"}))
		require.NoError(t, store.Abort())

		_, err := db.FindCrawl(ctx, store.CrawlID())
		assert.Equal(t, bfscrawl.ENOTFOUND, bfscrawl.ErrorCode(err))

		pages, err := db.FindPages(ctx, store.CrawlID())
		require.NoError(t, err)
		assert.Empty(t, pages)
	})

	t.Run("abort without saves is a no-op", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPageStore(db, "https://a.test/")

		require.NoError(t, store.Abort())
	})

	t.Run("commit without saves records an empty crawl", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		store := sqlite.NewPageStore(db, "https://a.test/")

		require.NoError(t, store.Commit())

		_, err := db.FindCrawl(ctx, store.CrawlID())
		require.NoError(t, err)
		pages, err := db.FindPages(ctx, store.CrawlID())
		require.NoError(t, err)
		assert.Empty(t, pages)
	})

	t.Run("rejects invalid page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPageStore(db, "https://a.test/")

		err := store.Save(context.Background(), &bfscrawl.Page{URL: "https://a.test/", Depth: -1})
		require.Error(t, err)
		assert.Equal(t, bfscrawl.EINVALID, bfscrawl.ErrorCode(err))
	})

	t.Run("separate crawls get separate IDs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		a := sqlite.NewPageStore(db, "https://a.test/")
		b := sqlite.NewPageStore(db, "https://a.test/")

		assert.NotEqual(t, a.CrawlID(), b.CrawlID())
	})
}

func TestDB_FindCrawl_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	_, err := db.FindCrawl(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, bfscrawl.ENOTFOUND, bfscrawl.ErrorCode(err))
}
