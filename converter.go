package wikisite

// Converter turns extracted article markup into the plain-text form sent to
// the cleaning model. Empty results are EEXTRACT.
type Converter interface {
	Convert(html string) (string, error)
}
