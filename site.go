package wikisite

import (
	"context"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ImageSource records where a site's hero image came from.
type ImageSource string

// Hero image sources.
const (
	ImageSourceNone      ImageSource = "none"
	ImageSourceArticle   ImageSource = "article"
	ImageSourceGenerated ImageSource = "generated"
)

// Site is a generated single-page website.
type Site struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	HTML        string      `json:"html"`
	Framework   Framework   `json:"framework"`
	ImageSource ImageSource `json:"imageSource"`
}

// Checksum returns a stable hash of the site's HTML.
func (s *Site) Checksum() string {
	return strconv.FormatUint(xxhash.Sum64String(s.HTML), 16)
}

// Site file names.
const (
	IndexFile  = "index.html"
	ReadmeFile = "README.md"
)

// ReactReadme is shipped alongside React sites, which run in the browser
// from CDN scripts and need no build step.
const ReactReadme = "This is a lightweight React site that runs in the browser using CDNs. Simply open index.html to view it."

// SiteFile is one file of a packaged site.
type SiteFile struct {
	Name    string
	Content string
}

// Files returns the files that make up the site on disk: index.html, plus
// README.md for React sites.
func (s *Site) Files() []SiteFile {
	files := []SiteFile{{Name: IndexFile, Content: s.HTML}}
	if s.Framework == FrameworkReact {
		files = append(files, SiteFile{Name: ReadmeFile, Content: ReactReadme})
	}
	return files
}

// Image is a generated image.
type Image struct {
	Data     []byte
	MIMEType string
}

// Stage identifies a step of site generation for progress reporting.
type Stage string

// Generation stages, in order.
const (
	StageFetch    Stage = "Fetching & cleaning Wikipedia content..."
	StageGenerate Stage = "Generating website structure..."
	StageImage    Stage = "Using image from Wikipedia..."
	StageImagine  Stage = "Generating header image..."
)

// ProgressFunc is called as site generation moves between stages.
type ProgressFunc func(Stage)

// BuildRequest asks for a site to be built from an article URL.
type BuildRequest struct {
	URL    string
	Design Design

	// Progress, if set, receives stage changes.
	Progress ProgressFunc
}

// SiteGenerator asks a language model for a complete HTML document.
type SiteGenerator interface {
	// GenerateSite sends the prompt with a structured response schema and
	// returns the document from SiteResponseField.
	// Returns EGENERATE if the response does not contain the field.
	GenerateSite(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator creates a single 16:9 image from a prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (*Image, error)
}

// SiteBuilder runs the full pipeline from article URL to website.
type SiteBuilder interface {
	BuildSite(ctx context.Context, req BuildRequest) (*Site, error)
}

// Packager writes a site as a downloadable archive.
type Packager interface {
	// Package writes the archive to w.
	// Returns EPACKAGE if the archive cannot be created.
	Package(w io.Writer, site *Site) error
}

// SiteWriter writes a site's files unpacked.
type SiteWriter interface {
	// WriteSite writes every file of the site and returns their paths.
	// Returns EPACKAGE if a file cannot be written.
	WriteSite(ctx context.Context, site *Site) ([]string, error)
}
