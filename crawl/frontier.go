package crawl

import (
	"github.com/fwojciec/bfscrawl"
)

// Compile-time interface verification.
var _ bfscrawl.URLFrontier = (*Frontier)(nil)

// minCompactSize is the number of consumed slots below which the
// backing slice is never compacted.
const minCompactSize = 64

// Frontier is an in-memory FIFO queue of frontier entries.
// Entries are popped in the order they were pushed, which yields
// breadth-first traversal when children are pushed after their parent is popped.
// Frontier performs no deduplication; it is not safe for concurrent use.
type Frontier struct {
	entries []bfscrawl.FrontierEntry
	head    int
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Push appends an entry to the tail of the queue.
func (f *Frontier) Push(entry bfscrawl.FrontierEntry) {
	f.entries = append(f.entries, entry)
}

// Pop removes and returns the entry at the head of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (bfscrawl.FrontierEntry, bool) {
	if f.head == len(f.entries) {
		return bfscrawl.FrontierEntry{}, false
	}
	entry := f.entries[f.head]
	f.entries[f.head] = bfscrawl.FrontierEntry{}
	f.head++

	// Reclaim consumed slots once they dominate the backing array.
	if f.head >= minCompactSize && f.head*2 >= len(f.entries) {
		n := copy(f.entries, f.entries[f.head:])
		f.entries = f.entries[:n]
		f.head = 0
	}
	return entry, true
}

// Len returns the number of queued entries.
func (f *Frontier) Len() int {
	return len(f.entries) - f.head
}
