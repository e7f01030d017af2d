// Package goquery implements bfscrawl.PageProcessor on top of goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bfscrawl"
)

// Ensure Processor implements bfscrawl.PageProcessor at compile time.
var _ bfscrawl.PageProcessor = (*Processor)(nil)

// Processor extracts outbound links and readable content from HTML pages.
// It holds no mutable state and is safe for concurrent use if its
// collaborators are.
type Processor struct {
	converter bfscrawl.Converter
	extractor bfscrawl.Extractor
}

// Option configures a Processor.
type Option func(*Processor)

// WithExtractor narrows pages to their main content before conversion.
// Pages the extractor cannot handle fall back to the full document.
func WithExtractor(e bfscrawl.Extractor) Option {
	return func(p *Processor) {
		p.extractor = e
	}
}

// NewProcessor creates a new Processor that renders content with converter.
func NewProcessor(converter bfscrawl.Converter, opts ...Option) *Processor {
	p := &Processor{converter: converter}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ExtractLinks returns the href of every anchor resolved against baseURL,
// in document order. Duplicates, fragments and external hosts are kept;
// hrefs that fail to parse are dropped.
func (p *Processor) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, bfscrawl.Errorf(bfscrawl.EINVALID, "invalid base URL: %v", err)
	}
	if !base.IsAbs() {
		return nil, bfscrawl.Errorf(bfscrawl.EINVALID, "base URL %q is not absolute", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bfscrawl.Errorf(bfscrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if resolved, ok := resolveURL(base, href); ok {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// ExtractContent strips link targets from the page and converts it to Markdown.
// Anchor text is preserved. Blank input yields empty content.
func (p *Processor) ExtractContent(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", bfscrawl.Errorf(bfscrawl.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find("a").RemoveAttr("href")

	stripped, err := doc.Html()
	if err != nil {
		return "", bfscrawl.Errorf(bfscrawl.EINVALID, "failed to render HTML: %v", err)
	}

	if p.extractor != nil {
		if main, err := p.extractor.Extract(stripped); err == nil && strings.TrimSpace(main) != "" {
			stripped = main
		}
	}

	return p.converter.Convert(stripped)
}

// resolveURL resolves href against base. Surrounding whitespace is ignored,
// and an empty href resolves to the base document itself.
func resolveURL(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}
