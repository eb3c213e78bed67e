// Package http provides the HTTP side of wikisite: a Fetcher for the
// Wikipedia REST API and a gin-based Server for browser clients.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/skarvsladd/wikisite"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies the client to Wikimedia, which rejects
// requests without a descriptive agent.
const DefaultUserAgent = "wikisite/1.0 (https://github.com/skarvsladd/wikisite)"

// Ensure Fetcher implements wikisite.Fetcher at compile time.
var _ wikisite.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered article HTML using plain HTTP requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *HostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified or not positive.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header. An empty agent keeps
// DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithRateLimit caps outgoing requests per second to each host. Requests
// wait for a token rather than failing. Zero or negative disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = NewHostLimiter(rps)
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", wikisite.Errorf(wikisite.EINVALID, "invalid request URL %q: %v", rawURL, err)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", wikisite.Errorf(wikisite.EFETCH, "failed to fetch %s: %v", rawURL, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", wikisite.Errorf(wikisite.EINVALID, "invalid request URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", wikisite.Errorf(wikisite.EFETCH, "failed to fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", wikisite.StatusErrorf(resp.StatusCode, "Failed to fetch Wikipedia article. Status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wikisite.Errorf(wikisite.EFETCH, "failed to read %s: %v", rawURL, err)
	}

	return string(body), nil
}
