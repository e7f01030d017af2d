package bfscrawl

// Default crawl limits.
const (
	DefaultMaxDepth = 2
	DefaultMaxPages = 1
)

// Config bounds a single crawl.
type Config struct {
	// MaxDepth is the largest number of link hops from the start URL
	// that will be fetched. Zero fetches only the start URL.
	MaxDepth int

	// MaxPages caps the number of pages in the result.
	MaxPages int

	// OmitFailed excludes pages whose fetch failed from the result instead of
	// recording them with empty content. Omitted pages do not count toward MaxPages.
	OmitFailed bool
}

// DefaultConfig returns a Config with the default limits.
func DefaultConfig() Config {
	return Config{
		MaxDepth: DefaultMaxDepth,
		MaxPages: DefaultMaxPages,
	}
}

// Validate returns an error if the limits cannot bound a crawl.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return Errorf(EINVALID, "max depth must be >= 0, got %d", c.MaxDepth)
	}
	if c.MaxPages < 1 {
		return Errorf(EINVALID, "max pages must be >= 1, got %d", c.MaxPages)
	}
	return nil
}
