// Package http provides an HTTP-based implementation of noto.Fetcher for
// news sites that serve readable article HTML without JavaScript, plus
// sitemap-based article discovery.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/noto-news/noto"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// defaultUserAgent is a current desktop browser string. News sites
// routinely serve consent interstitials or 403s to obvious bots.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

// Ensure Fetcher implements noto.Fetcher at compile time.
var _ noto.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static pages only.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	language  string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLanguage sets the Accept-Language header value.
func WithLanguage(lang string) Option {
	return func(f *Fetcher) {
		f.language = lang
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
		language:  "fr-FR,fr;q=0.9,en;q=0.5",
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
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", f.language)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return "", noto.Errorf(noto.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode == http.StatusNotFound:
		return "", noto.Errorf(noto.ENOTFOUND, "HTTP 404 for %s", url)
	default:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
