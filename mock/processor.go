package mock

import "github.com/fwojciec/bfscrawl"

// Compile-time interface verification.
var (
	_ bfscrawl.PageProcessor = (*PageProcessor)(nil)
	_ bfscrawl.Converter     = (*Converter)(nil)
	_ bfscrawl.Extractor     = (*Extractor)(nil)
)

// PageProcessor is a mock implementation of bfscrawl.PageProcessor.
type PageProcessor struct {
	ExtractContentFn func(html string) (string, error)
	ExtractLinksFn   func(html string, baseURL string) ([]string, error)
}

func (p *PageProcessor) ExtractContent(html string) (string, error) {
	return p.ExtractContentFn(html)
}

func (p *PageProcessor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return p.ExtractLinksFn(html, baseURL)
}

// Converter is a mock implementation of bfscrawl.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Extractor is a mock implementation of bfscrawl.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
