// Package slog provides logging decorators for the wikisite services. Each
// decorator logs the operation, payload sizes, duration and error after the
// wrapped call returns.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/skarvsladd/wikisite"
)

// Ensure LoggingFetcher implements wikisite.Fetcher.
var _ wikisite.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   wikisite.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wikisite.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Ensure LoggingCleaner implements wikisite.Cleaner.
var _ wikisite.Cleaner = (*LoggingCleaner)(nil)

// LoggingCleaner wraps a Cleaner with logging.
type LoggingCleaner struct {
	next   wikisite.Cleaner
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner.
func NewLoggingCleaner(next wikisite.Cleaner, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, logger: logger}
}

// Clean delegates to the wrapped cleaner and logs input and output sizes.
func (c *LoggingCleaner) Clean(ctx context.Context, text string) (cleaned string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("clean",
			"in", len(text),
			"out", len(cleaned),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clean(ctx, text)
}

// Ensure LoggingSiteGenerator implements wikisite.SiteGenerator.
var _ wikisite.SiteGenerator = (*LoggingSiteGenerator)(nil)

// LoggingSiteGenerator wraps a SiteGenerator with logging.
type LoggingSiteGenerator struct {
	next   wikisite.SiteGenerator
	logger *slog.Logger
}

// NewLoggingSiteGenerator creates a new LoggingSiteGenerator.
func NewLoggingSiteGenerator(next wikisite.SiteGenerator, logger *slog.Logger) *LoggingSiteGenerator {
	return &LoggingSiteGenerator{next: next, logger: logger}
}

// GenerateSite delegates to the wrapped generator and logs prompt and
// document sizes.
func (g *LoggingSiteGenerator) GenerateSite(ctx context.Context, prompt string) (html string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate site",
			"prompt", len(prompt),
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateSite(ctx, prompt)
}

// Ensure LoggingImageGenerator implements wikisite.ImageGenerator.
var _ wikisite.ImageGenerator = (*LoggingImageGenerator)(nil)

// LoggingImageGenerator wraps an ImageGenerator with logging.
type LoggingImageGenerator struct {
	next   wikisite.ImageGenerator
	logger *slog.Logger
}

// NewLoggingImageGenerator creates a new LoggingImageGenerator.
func NewLoggingImageGenerator(next wikisite.ImageGenerator, logger *slog.Logger) *LoggingImageGenerator {
	return &LoggingImageGenerator{next: next, logger: logger}
}

// GenerateImage delegates to the wrapped generator and logs the image size.
func (g *LoggingImageGenerator) GenerateImage(ctx context.Context, prompt string) (img *wikisite.Image, err error) {
	defer func(begin time.Time) {
		var size int
		if img != nil {
			size = len(img.Data)
		}
		g.logger.Info("generate image",
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateImage(ctx, prompt)
}

// Ensure LoggingPreviewer implements wikisite.Previewer.
var _ wikisite.Previewer = (*LoggingPreviewer)(nil)

// LoggingPreviewer wraps a Previewer with logging.
type LoggingPreviewer struct {
	next   wikisite.Previewer
	logger *slog.Logger
}

// NewLoggingPreviewer creates a new LoggingPreviewer.
func NewLoggingPreviewer(next wikisite.Previewer, logger *slog.Logger) *LoggingPreviewer {
	return &LoggingPreviewer{next: next, logger: logger}
}

// Preview delegates to the wrapped previewer and logs the screenshot size.
func (p *LoggingPreviewer) Preview(ctx context.Context, html string) (img []byte, err error) {
	defer func(begin time.Time) {
		p.logger.Info("preview",
			"html", len(html),
			"bytes", len(img),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Preview(ctx, html)
}

// Close delegates to the wrapped previewer.
func (p *LoggingPreviewer) Close() error {
	return p.next.Close()
}
