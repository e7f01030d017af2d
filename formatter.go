package bfscrawl

import "strings"

// FormatPages formats pages for display as a single markdown document.
// Pages are separated by blank lines.
func FormatPages(pages []*Page) string {
	if len(pages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		parts = append(parts, "## Page: "+page.URL+"\n"+page.Content)
	}

	return strings.Join(parts, "\n\n")
}
