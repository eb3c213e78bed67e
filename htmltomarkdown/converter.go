// Package htmltomarkdown renders cleaned article markup as Markdown so that
// headings, lists and tables survive the trip to the language model.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/skarvsladd/wikisite"
)

// blankRuns matches the gaps left behind by removed page furniture.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Ensure Converter implements wikisite.Converter at compile time.
var _ wikisite.Converter = (*Converter)(nil)

// Converter renders article HTML as Markdown with GFM tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms article HTML into Markdown.
// Returns EEXTRACT if the input or the rendered text is empty.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", wikisite.Errorf(wikisite.EEXTRACT, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", wikisite.Errorf(wikisite.EEXTRACT, "failed to convert article HTML: %v", err)
	}

	result = strings.TrimSpace(blankRuns.ReplaceAllString(result, "\n\n"))
	if result == "" {
		return "", wikisite.Errorf(wikisite.EEXTRACT, "no extractable text in article")
	}
	return result, nil
}
