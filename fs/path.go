// Package fs provides file-based storage for crawled pages.
package fs

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
)

// URLToPath converts a page URL to a relative file path rooted at its host.
// Example: https://example.com/docs/api/users → example.com/docs/api/users.md
//
// Distinct URLs map to distinct paths. Parts the directory layout cannot
// express (query, fragment, a non-canonical path) are folded into a short
// hash before the extension: https://example.com/list?page=2 → example.com/list.<hash>.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", bfscrawl.Errorf(bfscrawl.EINVALID, "invalid page URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", bfscrawl.Errorf(bfscrawl.EINVALID, "page URL %q has no host", rawURL)
	}

	for _, seg := range strings.Split(u.Path, "/") {
		if seg == ".." {
			return "", bfscrawl.Errorf(bfscrawl.EINVALID, "path traversal in page URL %q", rawURL)
		}
	}

	// Ports would put a colon in the directory name.
	host := strings.ReplaceAll(u.Host, ":", "_")

	p := path.Clean("/" + u.Path)
	base := host + p + ".md"
	canonical := p
	switch {
	case p == "/":
		base = host + "/index.md"
	case strings.HasSuffix(u.Path, "/"):
		// Trailing slash becomes index.md in that directory
		base = host + p + "/index.md"
		canonical = p + "/"
	}

	if u.Path == canonical && u.RawQuery == "" && !u.ForceQuery && u.Fragment == "" {
		return base, nil
	}

	key := fmt.Sprintf("%s?%t%s#%s", u.Path, u.ForceQuery, u.RawQuery, u.Fragment)
	suffix := crawl.ComputeHash(key)[:8]
	return strings.TrimSuffix(base, ".md") + "." + suffix + ".md", nil
}
