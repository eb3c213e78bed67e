package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/skarvsladd/wikisite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *Config
	Builder  wikisite.SiteBuilder
	Packager wikisite.Packager

	// NewWriter opens a directory writer for --dir output.
	NewWriter func(dir string) wikisite.SiteWriter

	// NewPreviewer starts a browser for screenshots. Callers close it.
	NewPreviewer func() (wikisite.Previewer, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config       string        `help:"Config file (yaml, json or toml)" type:"path"`
	Verbose      bool          `short:"v" help:"Enable debug logging"`
	Provider     string        `help:"Model provider: gemini or openai"`
	CleanModel   string        `help:"Model used to clean article text"`
	SiteModel    string        `help:"Model used to generate the website"`
	ImageModel   string        `help:"Model used to generate hero images"`
	NoImage      bool          `help:"Never generate a hero image"`
	CountTokens  bool          `help:"Log the site prompt token count (gemini only)"`
	FetchTimeout time.Duration `help:"Timeout for Wikipedia requests"`
	FetchRPS     float64       `name:"fetch-rps" help:"Maximum Wikipedia requests per second"`

	Generate GenerateCmd `cmd:"" help:"Generate a website from a Wikipedia article"`
	Fonts    FontsCmd    `cmd:"" help:"List available fonts"`
	Serve    ServeCmd    `cmd:"" help:"Serve the website generator over HTTP"`
}

// Apply overrides file and environment configuration with flags that were
// set on the command line.
func (c *CLI) Apply(cfg *Config) {
	if c.Provider != "" {
		cfg.Provider = c.Provider
	}
	if c.CleanModel != "" {
		cfg.CleanModel = c.CleanModel
	}
	if c.SiteModel != "" {
		cfg.SiteModel = c.SiteModel
	}
	if c.ImageModel != "" {
		cfg.ImageModel = c.ImageModel
	}
	if c.NoImage {
		cfg.NoImage = true
	}
	if c.CountTokens {
		cfg.CountTokens = true
	}
	if c.FetchTimeout > 0 {
		cfg.FetchTimeout = c.FetchTimeout
	}
	if c.FetchRPS > 0 {
		cfg.FetchRPS = c.FetchRPS
	}
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL         string   `arg:"" help:"Wikipedia article URL"`
	Color       []string `short:"c" sep:"none" help:"Palette color (repeatable, 2 to 8)"`
	Palette     string   `short:"p" type:"existingfile" help:"Import the palette from a .json or .css file"`
	HeadingFont string   `help:"Heading font (see 'wikisite fonts')"`
	BodyFont    string   `help:"Body font (see 'wikisite fonts')"`
	Framework   string   `short:"f" enum:"tailwind,css,react" default:"tailwind" help:"Output framework: tailwind, css or react"`
	Depth       string   `short:"d" enum:"summary,multi-section,comprehensive" default:"multi-section" help:"Content depth"`
	Out         string   `short:"o" default:"ai-generated-website.zip" help:"Zip archive to write"`
	Dir         string   `type:"path" help:"Write the site files into this directory instead of a zip archive"`
	HTML        bool     `help:"Write the HTML document to stdout instead of a zip archive"`
	Screenshot  string   `type:"path" help:"Also save a PNG preview of the site rendered in headless Chrome"`
}

// FontsCmd is the "fonts" subcommand.
type FontsCmd struct {
	URLs bool `name:"urls" help:"Show stylesheet URLs"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string `help:"Listen address (default from config, :8080)"`
	Preview bool   `help:"Enable /api/preview screenshots (launches headless Chrome)"`
}
