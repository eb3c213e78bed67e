package wikisite

import "context"

// Default preview viewport, a typical desktop browser window.
const (
	PreviewWidth  = 1280
	PreviewHeight = 800
)

// Previewer renders a generated site in a browser and captures the first
// screen as a PNG image. Failures are EPREVIEW.
type Previewer interface {
	Preview(ctx context.Context, html string) ([]byte, error)
	Close() error
}
