package bfscrawl

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// Extractor narrows an HTML page down to its main content, removing
// boilerplate such as navigation, footers and sidebars.
type Extractor interface {
	Extract(html string) (contentHTML string, err error)
}

// PageProcessor turns raw HTML into page content and outbound links.
// Implementations must be pure functions of their inputs.
type PageProcessor interface {
	// ExtractContent converts markup to readable text. Link targets are
	// removed before conversion; anchor text is preserved.
	ExtractContent(html string) (string, error)

	// ExtractLinks returns the href of every anchor resolved against baseURL,
	// in document order. Hrefs that cannot be resolved are dropped.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
