// Package rod provides a Chrome-based implementation of noto.Fetcher for
// news sites that hide article bodies behind JavaScript rendering or
// consent walls.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/noto-news/noto"
)

// DefaultFetchTimeout bounds one rendered fetch.
// Kept consistent with http.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements noto.Fetcher at compile time.
var _ noto.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
	closed   atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-fetch timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a Fetcher backed by a headless Chrome browser
// configured for a French reading locale. Close must be called when the
// Fetcher is no longer needed.
//
// Returns an EUNAVAILABLE error when Chrome/Chromium cannot be found or
// launched; callers treat that as "run without browser rendering".
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("lang", "fr-FR").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, noto.Errorf(noto.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, noto.Errorf(noto.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML. It waits for
// the DOM to go stable so late-hydrating article bodies and dismissible
// consent overlays have settled.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", noto.Errorf(noto.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if _, err := page.SetExtraHeaders([]string{"Accept-Language", "fr-FR,fr;q=0.9"}); err != nil {
		return "", err
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	// Best effort: a still-mutating DOM only costs the remaining timeout.
	_ = page.WaitDOMStable(300*time.Millisecond, 0)

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	if f.browser != nil {
		err = f.browser.Close()
	}
	if f.launcher != nil {
		f.launcher.Kill()
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}
