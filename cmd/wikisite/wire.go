package main

import (
	"context"
	"log/slog"

	"github.com/skarvsladd/wikisite"
	"github.com/skarvsladd/wikisite/gemini"
	"github.com/skarvsladd/wikisite/generate"
	"github.com/skarvsladd/wikisite/goquery"
	"github.com/skarvsladd/wikisite/htmltomarkdown"
	whttp "github.com/skarvsladd/wikisite/http"
	"github.com/skarvsladd/wikisite/openai"
	"github.com/skarvsladd/wikisite/rod"
	wslog "github.com/skarvsladd/wikisite/slog"
	"github.com/skarvsladd/wikisite/wikipedia"
)

// models are the provider-specific collaborators of a Generator.
type models struct {
	cleaner wikisite.Cleaner
	sites   wikisite.SiteGenerator
	images  wikisite.ImageGenerator
	tokens  wikisite.TokenCounter
}

// NewBuilder wires the site generation pipeline for the configured provider.
func NewBuilder(ctx context.Context, cfg *Config, logger *slog.Logger) (*generate.Generator, error) {
	var m *models
	var err error
	switch cfg.Provider {
	case ProviderGemini:
		m, err = geminiModels(ctx, cfg, logger)
	case ProviderOpenAI:
		m, err = openaiModels(cfg)
	default:
		return nil, wikisite.Errorf(wikisite.EINVALID, "unknown provider %q: must be %s or %s", cfg.Provider, ProviderGemini, ProviderOpenAI)
	}
	if err != nil {
		return nil, err
	}

	opts := []whttp.Option{
		whttp.WithTimeout(cfg.FetchTimeout),
		whttp.WithUserAgent(cfg.UserAgent),
	}
	if cfg.FetchRPS > 0 {
		opts = append(opts, whttp.WithRateLimit(cfg.FetchRPS))
	}

	g := &generate.Generator{
		Articles: &wikipedia.Source{
			Fetcher:   wslog.NewLoggingFetcher(whttp.NewFetcher(opts...), logger),
			Extractor: goquery.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
			Cleaner:   wslog.NewLoggingCleaner(m.cleaner, logger),
		},
		Sites:  wslog.NewLoggingSiteGenerator(m.sites, logger),
		Tokens: m.tokens,
		Logger: logger,
	}
	if !cfg.NoImage {
		g.Images = wslog.NewLoggingImageGenerator(m.images, logger)
	}
	return g, nil
}

func geminiModels(ctx context.Context, cfg *Config, logger *slog.Logger) (*models, error) {
	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	m := &models{
		cleaner: gemini.NewCleaner(client, cfg.CleanModel),
		sites:   gemini.NewSiteGenerator(client, cfg.SiteModel),
		images:  gemini.NewImageGenerator(client, cfg.ImageModel),
	}
	if cfg.CountTokens {
		tc, err := gemini.NewTokenCounter(cfg.SiteModel)
		if err != nil {
			logger.Warn("token counting disabled", "err", err)
		} else {
			m.tokens = tc
		}
	}
	return m, nil
}

func openaiModels(cfg *Config) (*models, error) {
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	if err != nil {
		return nil, err
	}
	return &models{
		cleaner: openai.NewCleaner(client, cfg.CleanModel),
		sites:   openai.NewSiteGenerator(client, cfg.SiteModel),
		images:  openai.NewImageGenerator(client, cfg.ImageModel),
	}, nil
}

// NewPreviewer launches headless Chrome for site screenshots.
func NewPreviewer(logger *slog.Logger) (wikisite.Previewer, error) {
	browser, err := rod.NewBrowser()
	if err != nil {
		return nil, wikisite.Errorf(wikisite.EPREVIEW, "Failed to start preview browser: %v", err)
	}
	return wslog.NewLoggingPreviewer(rod.NewPreviewer(browser), logger), nil
}
