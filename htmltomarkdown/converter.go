// Package htmltomarkdown renders crawled HTML as Markdown, the readable
// text representation stored in bfscrawl.Page content.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/bfscrawl"
)

// Ensure Converter implements bfscrawl.Converter at compile time.
var _ bfscrawl.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// It is safe for concurrent use.
type Converter struct {
	conv *converter.Converter
}

// Option configures a Converter.
type Option func(*options)

type options struct {
	tables bool
}

// WithTables toggles GitHub-style table rendering. Enabled by default;
// when disabled, table cells are rendered as plain text.
func WithTables(enabled bool) Option {
	return func(o *options) {
		o.tables = enabled
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	o := options{tables: true}
	for _, opt := range opts {
		opt(&o)
	}

	plugins := []converter.Plugin{
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		strikethrough.NewStrikethroughPlugin(),
	}
	if o.tables {
		plugins = append(plugins, table.NewTablePlugin())
	}

	return &Converter{conv: converter.NewConverter(converter.WithPlugins(plugins...))}
}

// Convert transforms HTML content into Markdown.
// Blank input converts to an empty string.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", bfscrawl.Errorf(bfscrawl.EINVALID, "convert HTML: %v", err)
	}

	return strings.TrimSpace(result), nil
}
