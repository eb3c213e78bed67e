package mock

import "github.com/skarvsladd/wikisite"

var _ wikisite.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikisite.Extractor.
type Extractor struct {
	ExtractFn func(html, baseURL string) (*wikisite.ExtractResult, error)
}

func (e *Extractor) Extract(html, baseURL string) (*wikisite.ExtractResult, error) {
	return e.ExtractFn(html, baseURL)
}
