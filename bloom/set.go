// Package bloom provides URL deduplication backed by Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/bfscrawl"
)

// Ensure Set implements bfscrawl.SeenSet at compile time.
var _ bfscrawl.SeenSet = (*Set)(nil)

// Set is an exact URL set with a Bloom filter in front of it.
// Membership is decided by the map: a positive filter answer is confirmed
// against it, so false positives never cause a URL to be treated as seen.
// The filter never changes an answer; at crawl-sized sets it is not faster
// than the map lookup it guards. It backs EstimatedCount.
// Set is not safe for concurrent use.
type Set struct {
	filter *bloom.BloomFilter
	urls   map[string]struct{}
}

// NewSet creates a new Set sized for n expected URLs
// with the given false positive rate for the prefilter.
func NewSet(n uint, fpRate float64) *Set {
	if n == 0 {
		n = 1
	}
	return &Set{
		filter: bloom.NewWithEstimates(n, fpRate),
		urls:   make(map[string]struct{}, n),
	}
}

// Add marks the URL as seen. Returns false if it was already seen.
func (s *Set) Add(url string) bool {
	if s.Has(url) {
		return false
	}
	s.filter.AddString(url)
	s.urls[url] = struct{}{}
	return true
}

// Has reports whether the URL has been seen.
func (s *Set) Has(url string) bool {
	if !s.filter.TestString(url) {
		return false
	}
	_, ok := s.urls[url]
	return ok
}

// Len returns the number of seen URLs.
func (s *Set) Len() int {
	return len(s.urls)
}

// EstimatedCount returns the filter's approximation of the number of URLs added.
func (s *Set) EstimatedCount() uint {
	return uint(s.filter.ApproximatedSize())
}
