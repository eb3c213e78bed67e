package mock

import "github.com/skarvsladd/wikisite"

var _ wikisite.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikisite.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
