package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements bfscrawl.Converter at compile time.
var _ bfscrawl.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Title</h1><h2>Subtitle</h2><p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>First</li><li>Second</li></ul><ol><li>One</li><li>Two</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "1. One")
		assert.Contains(t, md, "2. Two")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<pre><code class="language-go">package main</code></pre>`)

		require.NoError(t, err)
		assert.Contains(t, md, "```go")
		assert.Contains(t, md, "package main")
	})

	t.Run("converts emphasis", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><strong>Bold</strong> and <em>italic</em> text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts tables by default", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Name</th><th>Age</th></tr></thead>
<tbody><tr><td>Alice</td><td>30</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Name")
		assert.Contains(t, md, "Alice")
		assert.Contains(t, md, "|")
	})

	t.Run("keeps table text when tables are disabled", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithTables(false))
		md, err := conv.Convert(`<table><tr><td>Alice</td><td>30</td></tr></table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Alice")
		assert.Contains(t, md, "30")
	})

	t.Run("keeps anchor text of links without targets", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a>the guide</a> for details.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "the guide")
	})

	t.Run("returns empty string for blank input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("  \n\t")

		require.NoError(t, err)
		assert.Empty(t, md)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("\n\n<p>Body</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Body", md)
	})
}
