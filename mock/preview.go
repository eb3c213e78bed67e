package mock

import (
	"context"

	"github.com/skarvsladd/wikisite"
)

var _ wikisite.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of wikisite.Previewer.
type Previewer struct {
	PreviewFn func(ctx context.Context, html string) ([]byte, error)
	CloseFn   func() error
}

func (p *Previewer) Preview(ctx context.Context, html string) ([]byte, error) {
	return p.PreviewFn(ctx, html)
}

func (p *Previewer) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}
