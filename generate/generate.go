// Package generate turns a Wikipedia article into a single-page website.
// It coordinates article retrieval, site generation and the hero image
// step, reporting each stage to an optional progress callback.
package generate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/skarvsladd/wikisite"
)

// Ensure Generator implements wikisite.SiteBuilder.
var _ wikisite.SiteBuilder = (*Generator)(nil)

// Generator orchestrates the article-to-site pipeline.
type Generator struct {
	Articles wikisite.ArticleSource
	Sites    wikisite.SiteGenerator

	// Images is optional. When nil, articles without an image get no hero.
	Images wikisite.ImageGenerator

	// Tokens is optional. When set, the site prompt size is logged.
	Tokens wikisite.TokenCounter

	Logger *slog.Logger
}

// BuildSite runs every stage in order and returns the finished site. Any
// failure other than hero image generation aborts the run.
func (g *Generator) BuildSite(ctx context.Context, req wikisite.BuildRequest) (*wikisite.Site, error) {
	if err := req.Design.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, wikisite.Errorf(wikisite.EINVALID, "Please enter a Wikipedia URL.")
	}

	logger := g.logger()
	id := uuid.NewString()
	logger = logger.With("run", id)
	progress := func(s wikisite.Stage) {
		logger.Debug("stage", "stage", string(s))
		if req.Progress != nil {
			req.Progress(s)
		}
	}

	progress(wikisite.StageFetch)
	article, err := g.Articles.FetchArticle(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, wikisite.Errorf(wikisite.EEXTRACT, "Could not extract readable content from the Wikipedia page.")
	}

	logger.Info("article",
		"title", article.Title,
		"chars", len(article.Content),
		"source_sections", wikisite.TopLevel(article.Outline),
		"image", article.ImageURL != "",
	)

	progress(wikisite.StageGenerate)
	prompt := wikisite.BuildSitePrompt(article.Content, article.Title, req.Design)
	g.logTokens(ctx, logger, prompt)
	html, err := g.Sites.GenerateSite(ctx, prompt)
	if err != nil {
		return nil, err
	}

	source := wikisite.ImageSourceNone
	var hero *wikisite.HeroImage
	switch {
	case article.ImageURL != "":
		progress(wikisite.StageImage)
		hero = wikisite.ArticleHeroImage(article.Title, article.ImageURL)
		source = wikisite.ImageSourceArticle
	case g.Images != nil:
		progress(wikisite.StageImagine)
		imagePrompt := wikisite.BuildImagePrompt(article.Title, req.Design.Palette)
		if img := GenerateHeroImage(ctx, g.Images, imagePrompt, logger); img != nil {
			hero = wikisite.GeneratedHeroImage(article.Title, img)
			source = wikisite.ImageSourceGenerated
		}
	}
	html = wikisite.SpliceHeroImage(html, hero)

	site := &wikisite.Site{
		ID:          id,
		Title:       article.Title,
		HTML:        html,
		Framework:   req.Design.Framework,
		ImageSource: source,
	}
	logger.Info("site generated",
		"title", site.Title,
		"framework", string(site.Framework),
		"image", string(site.ImageSource),
		"checksum", site.Checksum(),
	)
	return site, nil
}

// GenerateHeroImage requests one image and returns nil if the request fails
// or comes back empty. Failures are logged as warnings and never returned.
func GenerateHeroImage(ctx context.Context, images wikisite.ImageGenerator, prompt string, logger *slog.Logger) *wikisite.Image {
	img, err := images.GenerateImage(ctx, prompt)
	if err != nil {
		logger.Warn("hero image generation failed", "err", err)
		return nil
	}
	if img == nil || len(img.Data) == 0 {
		logger.Warn("hero image generation returned no image")
		return nil
	}
	return img
}

func (g *Generator) logTokens(ctx context.Context, logger *slog.Logger, prompt string) {
	if g.Tokens == nil {
		return
	}
	n, err := g.Tokens.CountTokens(ctx, prompt)
	if err != nil {
		logger.Warn("count prompt tokens", "err", err)
		return
	}
	logger.Info("site prompt", "tokens", n)
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.Logger
}
