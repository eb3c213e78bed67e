// Package goquery extracts article content from rendered Wikipedia HTML
// using CSS selectors.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/skarvsladd/wikisite"
)

// InfoboxImageSelector locates the article's representative image.
const InfoboxImageSelector = ".infobox img"

// DenylistSelectors are the regions stripped from the article body before
// its text is handed to the model.
var DenylistSelectors = []string{
	".mw-editsection",
	".toc",
	".reflist",
	".references",
	".infobox",
	".thumb",
	"style",
	"script",
	".navbox",
	".metadata",
}

// Ensure Extractor implements wikisite.Extractor at compile time.
var _ wikisite.Extractor = (*Extractor)(nil)

// Extractor strips non-content regions from Wikipedia article HTML.
// Links are unwrapped to their text so only prose reaches the model.
type Extractor struct {
	denylist string
}

// NewExtractor creates a new Extractor using DenylistSelectors.
func NewExtractor() *Extractor {
	return &Extractor{denylist: strings.Join(DenylistSelectors, ", ")}
}

// Extract processes raw HTML and returns the article content.
func (e *Extractor) Extract(html string, baseURL string) (*wikisite.ExtractResult, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, wikisite.Errorf(wikisite.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wikisite.Errorf(wikisite.EEXTRACT, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, wikisite.Errorf(wikisite.EEXTRACT, "could not find article body")
	}

	// The infobox is removed below, so its image must be read first.
	var imageURL string
	if src, ok := doc.Find(InfoboxImageSelector).First().Attr("src"); ok {
		imageURL = resolveImageURL(base, src)
	}

	body.Find(e.denylist).Remove()
	body.Find("a").Contents().Unwrap()

	if strings.TrimSpace(body.Text()) == "" {
		return nil, wikisite.Errorf(wikisite.EEXTRACT, "could not find any article text")
	}

	content, err := body.Html()
	if err != nil {
		return nil, wikisite.Errorf(wikisite.EEXTRACT, "failed to render article body: %v", err)
	}

	return &wikisite.ExtractResult{
		Title:       strings.TrimSpace(doc.Find("h1").First().Text()),
		ContentHTML: content,
		ImageURL:    imageURL,
	}, nil
}

// resolveImageURL makes a protocol-relative or relative src absolute.
// Returns empty string if src cannot be parsed.
func resolveImageURL(base *url.URL, src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	if strings.HasPrefix(src, "//") {
		src = "https:" + src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
