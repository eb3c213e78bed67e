// Package wikipedia implements wikisite.ArticleSource on top of the
// per-wiki REST content endpoint. It coordinates fetching, extraction,
// conversion and model cleaning of a single article.
package wikipedia

import (
	"context"
	"net/url"
	"strings"

	"github.com/skarvsladd/wikisite"
)

// ArticleRef identifies an article on a specific wiki.
type ArticleRef struct {
	// Host is the wiki host, e.g. en.wikipedia.org.
	Host string

	// ID is the escaped trailing path segment, e.g. Artificial_intelligence.
	ID string
}

// ParseURL derives the wiki host and article identifier from an article URL.
// Returns EINVALID if the URL has no host or no trailing path segment.
func ParseURL(rawURL string) (*ArticleRef, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, wikisite.Errorf(wikisite.EINVALID, "Please enter a Wikipedia URL.")
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, wikisite.Errorf(wikisite.EINVALID, "Invalid Wikipedia URL %q: expected a link such as https://en.wikipedia.org/wiki/Octopus", rawURL)
	}

	path := u.EscapedPath()
	id := path[strings.LastIndex(path, "/")+1:]
	if id == "" {
		return nil, wikisite.Errorf(wikisite.EINVALID, "Invalid Wikipedia URL: Could not extract article title from %q", rawURL)
	}

	return &ArticleRef{Host: u.Host, ID: id}, nil
}

// BaseURL returns the wiki root used to resolve relative links.
func (r *ArticleRef) BaseURL() string {
	return "https://" + r.Host
}

// ContentURL returns the REST endpoint serving the rendered article HTML.
func (r *ArticleRef) ContentURL() string {
	return r.BaseURL() + "/api/rest_v1/page/html/" + r.ID
}

// DisplayTitle humanizes the identifier for use when the page has no heading.
func (r *ArticleRef) DisplayTitle() string {
	id, err := url.PathUnescape(r.ID)
	if err != nil {
		id = r.ID
	}
	return strings.ReplaceAll(id, "_", " ")
}

// Ensure Source implements wikisite.ArticleSource at compile time.
var _ wikisite.ArticleSource = (*Source)(nil)

// Source fetches, extracts and cleans Wikipedia articles.
type Source struct {
	Fetcher   wikisite.Fetcher
	Extractor wikisite.Extractor
	Converter wikisite.Converter
	Cleaner   wikisite.Cleaner
}

// FetchArticle retrieves the article behind rawURL. Each step runs once;
// the first failure aborts the whole operation.
func (s *Source) FetchArticle(ctx context.Context, rawURL string) (*wikisite.Article, error) {
	ref, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, ref.ContentURL())
	if err != nil {
		return nil, err
	}

	extracted, err := s.Extractor.Extract(html, ref.BaseURL())
	if err != nil {
		return nil, err
	}

	text, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	title := extracted.Title
	if title == "" {
		title = ref.DisplayTitle()
	}

	content, err := s.Cleaner.Clean(ctx, text)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, wikisite.Errorf(wikisite.EEXTRACT, "Could not extract readable content from the Wikipedia article. Please check the URL.")
	}

	return &wikisite.Article{
		Title:    title,
		Content:  content,
		ImageURL: extracted.ImageURL,
		Outline:  wikisite.Outline(text),
	}, nil
}
