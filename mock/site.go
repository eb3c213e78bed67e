package mock

import (
	"context"
	"io"

	"github.com/skarvsladd/wikisite"
)

var _ wikisite.SiteGenerator = (*SiteGenerator)(nil)

// SiteGenerator is a mock implementation of wikisite.SiteGenerator.
type SiteGenerator struct {
	GenerateSiteFn func(ctx context.Context, prompt string) (string, error)
}

func (g *SiteGenerator) GenerateSite(ctx context.Context, prompt string) (string, error) {
	return g.GenerateSiteFn(ctx, prompt)
}

var _ wikisite.ImageGenerator = (*ImageGenerator)(nil)

// ImageGenerator is a mock implementation of wikisite.ImageGenerator.
type ImageGenerator struct {
	GenerateImageFn func(ctx context.Context, prompt string) (*wikisite.Image, error)
}

func (g *ImageGenerator) GenerateImage(ctx context.Context, prompt string) (*wikisite.Image, error) {
	return g.GenerateImageFn(ctx, prompt)
}

var _ wikisite.SiteBuilder = (*SiteBuilder)(nil)

// SiteBuilder is a mock implementation of wikisite.SiteBuilder.
type SiteBuilder struct {
	BuildSiteFn func(ctx context.Context, req wikisite.BuildRequest) (*wikisite.Site, error)
}

func (b *SiteBuilder) BuildSite(ctx context.Context, req wikisite.BuildRequest) (*wikisite.Site, error) {
	return b.BuildSiteFn(ctx, req)
}

var _ wikisite.Packager = (*Packager)(nil)

// Packager is a mock implementation of wikisite.Packager.
type Packager struct {
	PackageFn func(w io.Writer, site *wikisite.Site) error
}

func (p *Packager) Package(w io.Writer, site *wikisite.Site) error {
	return p.PackageFn(w, site)
}
