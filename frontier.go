package bfscrawl

// FrontierEntry is a discovered URL waiting to be crawled.
type FrontierEntry struct {
	URL   string
	Depth int
}

// URLFrontier is the queue of entries driving a traversal.
type URLFrontier interface {
	// Push appends an entry to the frontier.
	Push(entry FrontierEntry)

	// Pop removes and returns the next entry.
	// Returns false if the frontier is empty.
	Pop() (FrontierEntry, bool)

	// Len returns the number of queued entries.
	Len() int
}

// SeenSet records URLs that are no longer eligible for crawling.
type SeenSet interface {
	// Add marks the URL as seen. Returns false if it was already seen.
	Add(url string) bool

	// Has reports whether the URL has been seen.
	Has(url string) bool

	// Len returns the number of seen URLs.
	Len() int
}
