// Package crawl provides the bounded breadth-first traversal engine.
// It drives fetching and processing of pages through injected
// collaborators and owns the frontier, seen-set and result collection.
package crawl

import (
	"context"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/bloom"
)

// Seen-set sizing.
const (
	// seenFalsePositiveRate is the Bloom prefilter rate for the seen-set.
	seenFalsePositiveRate = 0.01
	// maxSeenPresize caps the up-front allocation for very large page budgets.
	maxSeenPresize = 1 << 16
)

// Engine crawls from a start URL breadth-first, bounded by depth and page count.
// Each call to Crawl uses fresh traversal state, so an Engine may be reused
// sequentially. Crawl itself is single-threaded: one fetch is in flight at a time.
type Engine struct {
	Fetcher   bfscrawl.Fetcher
	Processor bfscrawl.PageProcessor
	Config    bfscrawl.Config

	// NewFrontier and NewSeenSet build per-crawl state. When nil, a FIFO
	// Frontier and a bloom-prefiltered set are used.
	NewFrontier func() bfscrawl.URLFrontier
	NewSeenSet  func(cfg bfscrawl.Config) bfscrawl.SeenSet
}

// NewEngine creates an Engine after validating the configuration.
func NewEngine(fetcher bfscrawl.Fetcher, processor bfscrawl.PageProcessor, cfg bfscrawl.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		Fetcher:   fetcher,
		Processor: processor,
		Config:    cfg,
	}, nil
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Depth     int
	Completed int // pages recorded so far
	Reason    SkipReason
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// String returns the lowercase name of the event type.
func (t ProgressType) String() string {
	switch t {
	case ProgressStarted:
		return "started"
	case ProgressCompleted:
		return "completed"
	case ProgressFailed:
		return "failed"
	case ProgressSkipped:
		return "skipped"
	case ProgressFinished:
		return "finished"
	}
	return "unknown"
}

// SkipReason explains why a dequeued entry was discarded without fetching.
type SkipReason string

const (
	SkipTooDeep SkipReason = "too_deep"
	SkipSeen    SkipReason = "seen"
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// traversal is the state of a single crawl.
type traversal struct {
	frontier bfscrawl.URLFrontier
	seen     bfscrawl.SeenSet
	pages    []*bfscrawl.Page
	progress ProgressFunc
}

func (t *traversal) report(event ProgressEvent) {
	if t.progress != nil {
		event.Completed = len(t.pages)
		t.progress(event)
	}
}

// Crawl visits pages reachable from startURL and returns them in dequeue order.
//
// A malformed or unreachable start URL is not an error: its fetch fails and,
// unless Config.OmitFailed is set, it is recorded with empty content.
// The only errors returned are an invalid Config and context cancellation;
// on cancellation the pages collected so far are returned alongside ctx.Err().
func (e *Engine) Crawl(ctx context.Context, startURL string, progress ProgressFunc) ([]*bfscrawl.Page, error) {
	cfg := e.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &traversal{
		frontier: e.newFrontier(),
		seen:     e.newSeenSet(cfg),
		pages:    make([]*bfscrawl.Page, 0, min(cfg.MaxPages, 64)),
		progress: progress,
	}
	t.frontier.Push(bfscrawl.FrontierEntry{URL: startURL, Depth: 0})
	t.report(ProgressEvent{Type: ProgressStarted, URL: startURL})

	for t.frontier.Len() > 0 && len(t.pages) < cfg.MaxPages {
		if err := ctx.Err(); err != nil {
			t.report(ProgressEvent{Type: ProgressFinished, Error: err})
			return t.pages, err
		}

		entry, _ := t.frontier.Pop()

		// Over-depth entries never touch the seen-set.
		if entry.Depth > cfg.MaxDepth {
			t.report(ProgressEvent{Type: ProgressSkipped, URL: entry.URL, Depth: entry.Depth, Reason: SkipTooDeep})
			continue
		}
		// Marked before fetching and kept regardless of the fetch outcome.
		if !t.seen.Add(entry.URL) {
			t.report(ProgressEvent{Type: ProgressSkipped, URL: entry.URL, Depth: entry.Depth, Reason: SkipSeen})
			continue
		}

		if err := e.visit(ctx, t, entry); err != nil {
			t.report(ProgressEvent{Type: ProgressFinished, Error: err})
			return t.pages, err
		}
	}

	t.report(ProgressEvent{Type: ProgressFinished})
	return t.pages, nil
}

func (e *Engine) newFrontier() bfscrawl.URLFrontier {
	if e.NewFrontier != nil {
		return e.NewFrontier()
	}
	return NewFrontier()
}

func (e *Engine) newSeenSet(cfg bfscrawl.Config) bfscrawl.SeenSet {
	if e.NewSeenSet != nil {
		return e.NewSeenSet(cfg)
	}
	return bloom.NewSet(uint(min(cfg.MaxPages, maxSeenPresize)), seenFalsePositiveRate)
}

// visit fetches and processes a single entry, records its page and
// enqueues its outbound links. It only returns an error on cancellation.
func (e *Engine) visit(ctx context.Context, t *traversal, entry bfscrawl.FrontierEntry) error {
	html, err := e.Fetcher.Fetch(ctx, entry.URL)
	if err != nil {
		// A failure caused by cancellation says nothing about the page.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		t.report(ProgressEvent{Type: ProgressFailed, URL: entry.URL, Depth: entry.Depth, Error: err})
		if e.Config.OmitFailed {
			return nil
		}
		html = ""
	}

	content, err := e.Processor.ExtractContent(html)
	if err != nil {
		t.report(ProgressEvent{Type: ProgressFailed, URL: entry.URL, Depth: entry.Depth, Error: err})
		content = ""
	}

	// Unparseable pages contribute no links.
	links, err := e.Processor.ExtractLinks(html, entry.URL)
	if err != nil {
		links = nil
	}

	t.pages = append(t.pages, &bfscrawl.Page{
		URL:     entry.URL,
		Depth:   entry.Depth,
		Content: content,
	})
	t.report(ProgressEvent{Type: ProgressCompleted, URL: entry.URL, Depth: entry.Depth})

	for _, link := range links {
		t.frontier.Push(bfscrawl.FrontierEntry{URL: link, Depth: entry.Depth + 1})
	}
	return nil
}
