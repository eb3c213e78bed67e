package htmltomarkdown_test

import (
	"testing"

	"github.com/skarvsladd/wikisite"
	"github.com/skarvsladd/wikisite/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements wikisite.Converter at compile time.
var _ wikisite.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("keeps headings", func(t *testing.T) {
		t.Parallel()

		html := `<h2>History</h2><p>Founded in 1956.</p><h3>Early years</h3><p>Symbolic AI.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "## History")
		assert.Contains(t, md, "### Early years")
		assert.Contains(t, md, "Founded in 1956.")
	})

	t.Run("keeps unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>Reasoning</li><li>Planning</li><li>Learning</li></ul>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- Reasoning")
		assert.Contains(t, md, "- Planning")
		assert.Contains(t, md, "- Learning")
	})

	t.Run("keeps ordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ol><li>Perception</li><li>Action</li></ol>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "1. Perception")
		assert.Contains(t, md, "2. Action")
	})

	t.Run("keeps tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Year</th><th>Event</th></tr></thead>
<tbody><tr><td>1956</td><td>Dartmouth workshop</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Year")
		assert.Contains(t, md, "Dartmouth workshop")
		assert.Contains(t, md, "|")
	})

	t.Run("keeps emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<p><b>Artificial intelligence</b> is <i>intelligence</i> of machines.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Artificial intelligence**")
		assert.Contains(t, md, "*intelligence*")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n\n<p>Body</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Body", md)
	})

	t.Run("leaves at most one blank line between blocks", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("<p>One</p><div><br><br><br></div><p>Two</p>")

		require.NoError(t, err)
		assert.NotContains(t, md, "\n\n\n")
		assert.Contains(t, md, "One")
		assert.Contains(t, md, "Two")
	})

	t.Run("returns extraction error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, wikisite.EEXTRACT, wikisite.ErrorCode(err))
	})

	t.Run("returns extraction error when markup has no text", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert(`<div><span></span></div>`)

		require.Error(t, err)
		assert.Equal(t, wikisite.EEXTRACT, wikisite.ErrorCode(err))
	})
}
