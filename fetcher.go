package wikisite

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the document at url.
	// Non-success responses are reported as EFETCH with the status attached.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
