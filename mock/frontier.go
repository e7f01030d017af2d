package mock

import "github.com/fwojciec/bfscrawl"

// Compile-time interface verification.
var (
	_ bfscrawl.URLFrontier = (*URLFrontier)(nil)
	_ bfscrawl.SeenSet     = (*SeenSet)(nil)
)

// URLFrontier is a mock implementation of bfscrawl.URLFrontier.
type URLFrontier struct {
	PushFn func(entry bfscrawl.FrontierEntry)
	PopFn  func() (bfscrawl.FrontierEntry, bool)
	LenFn  func() int
}

func (f *URLFrontier) Push(entry bfscrawl.FrontierEntry) {
	f.PushFn(entry)
}

func (f *URLFrontier) Pop() (bfscrawl.FrontierEntry, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

// SeenSet is a mock implementation of bfscrawl.SeenSet.
type SeenSet struct {
	AddFn func(url string) bool
	HasFn func(url string) bool
	LenFn func() int
}

func (s *SeenSet) Add(url string) bool {
	return s.AddFn(url)
}

func (s *SeenSet) Has(url string) bool {
	return s.HasFn(url)
}

func (s *SeenSet) Len() int {
	return s.LenFn()
}
