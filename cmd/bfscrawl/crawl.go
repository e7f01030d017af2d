package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
	"github.com/fwojciec/bfscrawl/fs"
	bfsslog "github.com/fwojciec/bfscrawl/slog"
	"github.com/fwojciec/bfscrawl/sqlite"
	"golang.org/x/sync/errgroup"
)

// crawlResult holds the pages collected from one start URL.
type crawlResult struct {
	StartURL string           `json:"start_url"`
	Pages    []*bfscrawl.Page `json:"pages"`
}

// Run crawls every start URL, persists the results if requested
// and writes them to stdout.
func (c *CLI) Run(deps *Dependencies) error {
	cfg := bfscrawl.Config{
		MaxDepth:   c.MaxDepth,
		MaxPages:   c.MaxPages,
		OmitFailed: c.OmitFailed,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if c.Concurrency < 1 {
		return bfscrawl.Errorf(bfscrawl.EINVALID, "concurrency must be >= 1, got %d", c.Concurrency)
	}

	results, crawlErr := c.crawlAll(deps, cfg)

	for _, r := range results {
		fmt.Fprintf(deps.Stderr, "%s: %d pages (%s)\n",
			crawl.TruncateURL(r.StartURL, 60), len(r.Pages), crawl.FormatBytes(contentSize(r.Pages)))
	}

	// An interrupted run still prints what it collected but persists nothing.
	if crawlErr != nil {
		if err := c.write(deps.Stdout, results); err != nil {
			return err
		}
		return crawlErr
	}

	if err := c.save(deps, results); err != nil {
		return err
	}

	return c.write(deps.Stdout, results)
}

// crawlAll runs one independent crawl per start URL, at most
// Concurrency at a time. Results keep the order of the arguments and are
// returned even on error, holding the pages each crawl collected so far.
func (c *CLI) crawlAll(deps *Dependencies, cfg bfscrawl.Config) ([]crawlResult, error) {
	results := make([]crawlResult, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for i, startURL := range c.URLs {
		g.Go(func() error {
			engine, err := crawl.NewEngine(deps.Fetcher, deps.Processor, cfg)
			if err != nil {
				return err
			}

			logger := deps.Logger.With("start", startURL)
			pages, err := engine.Crawl(ctx, startURL, logProgress(logger))
			if pages == nil {
				pages = []*bfscrawl.Page{}
			}
			results[i] = crawlResult{StartURL: startURL, Pages: pages}
			if err != nil {
				return fmt.Errorf("crawl %s: %w", startURL, err)
			}
			return nil
		})
	}

	err := g.Wait()
	for i := range results {
		if results[i].StartURL == "" {
			results[i] = crawlResult{StartURL: c.URLs[i], Pages: []*bfscrawl.Page{}}
		}
	}
	return results, err
}

// save persists results to the file store and the database when requested.
func (c *CLI) save(deps *Dependencies, results []crawlResult) error {
	if c.Out != "" {
		out, err := filepath.Abs(c.Out)
		if err != nil {
			return err
		}
		if cwd, _ := os.Getwd(); out == cwd || out == filepath.Dir(out) {
			return bfscrawl.Errorf(bfscrawl.EINVALID, "output directory %q would replace the working directory", c.Out)
		}
		store := fs.NewFileStore(filepath.Dir(out), filepath.Base(out))
		var pages []*bfscrawl.Page
		for _, r := range results {
			pages = append(pages, r.Pages...)
		}
		if err := savePages(deps.Ctx, bfsslog.NewLoggingStore(store, deps.Logger), pages); err != nil {
			return fmt.Errorf("failed to write pages to %q: %w", c.Out, err)
		}
	}

	if c.Save {
		if err := os.MkdirAll(filepath.Dir(c.DB), 0755); err != nil {
			return err
		}
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: Set BFSCRAWL_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		defer db.Close()

		for _, r := range results {
			store := sqlite.NewPageStore(db, r.StartURL)
			if err := savePages(deps.Ctx, bfsslog.NewLoggingStore(store, deps.Logger), r.Pages); err != nil {
				return fmt.Errorf("failed to record crawl of %s: %w", r.StartURL, err)
			}
			deps.Logger.Debug("crawl recorded", "id", store.CrawlID(), "start", r.StartURL)
		}
	}

	return nil
}

// savePages saves every page and commits, or aborts on the first failure.
func savePages(ctx context.Context, store bfscrawl.PageStore, pages []*bfscrawl.Page) error {
	for _, page := range pages {
		if err := store.Save(ctx, page); err != nil {
			_ = store.Abort()
			return err
		}
	}
	return store.Commit()
}

// write renders results in the selected format.
func (c *CLI) write(w io.Writer, results []crawlResult) error {
	switch c.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "urls":
		for _, r := range results {
			for _, p := range r.Pages {
				if _, err := fmt.Fprintf(w, "%d\t%s\n", p.Depth, p.URL); err != nil {
					return err
				}
			}
		}
		return nil
	}

	var sections []string
	for _, r := range results {
		if s := bfscrawl.FormatPages(r.Pages); s != "" {
			sections = append(sections, s)
		}
	}
	if len(sections) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(sections, "\n\n"))
	return err
}

func contentSize(pages []*bfscrawl.Page) int {
	var n int
	for _, p := range pages {
		n += len(p.Content)
	}
	return n
}

// logProgress reports engine progress through the logger.
func logProgress(logger *slog.Logger) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			logger.Info("crawl started")
		case crawl.ProgressCompleted:
			logger.Info("page recorded", "url", e.URL, "depth", e.Depth, "completed", e.Completed)
		case crawl.ProgressFailed:
			logger.Warn("page failed", "url", e.URL, "depth", e.Depth, "err", e.Error)
		case crawl.ProgressSkipped:
			logger.Debug("page skipped", "url", e.URL, "depth", e.Depth, "reason", string(e.Reason))
		case crawl.ProgressFinished:
			logger.Info("crawl finished", "pages", e.Completed, "err", e.Error)
		}
	}
}
