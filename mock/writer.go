package mock

import (
	"context"

	"github.com/skarvsladd/wikisite"
)

var _ wikisite.SiteWriter = (*SiteWriter)(nil)

// SiteWriter is a mock implementation of wikisite.SiteWriter.
type SiteWriter struct {
	WriteSiteFn func(ctx context.Context, site *wikisite.Site) ([]string, error)
}

func (w *SiteWriter) WriteSite(ctx context.Context, site *wikisite.Site) ([]string, error) {
	return w.WriteSiteFn(ctx, site)
}
