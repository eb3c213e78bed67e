package wikisite

// ExtractResult holds the content extracted from an article page.
type ExtractResult struct {
	// Title is the page's top-level heading. Empty if the page has none.
	Title string

	// ContentHTML is the body markup with non-content regions removed.
	ContentHTML string

	// ImageURL is the absolute URL of the infobox image, if any.
	ImageURL string
}

// Extractor extracts article content from rendered HTML, removing
// navigation, citation and layout regions.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The baseURL is used to resolve relative image URLs.
	Extract(html string, baseURL string) (*ExtractResult, error)
}
