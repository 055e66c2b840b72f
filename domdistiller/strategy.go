// Package domdistiller provides an extraction strategy wrapping the DOM
// distiller article-parsing algorithm.
package domdistiller

import (
	"context"
	"net/url"
	"strings"
	"time"

	distiller "github.com/markusmobius/go-domdistiller"
	"github.com/noto-news/noto"
	"github.com/noto-news/noto/extract"
)

// Name identifies this strategy in the fallback chain.
const Name = "domdistiller"

const minContentChars = 200

// Ensure Strategy implements noto.ExtractStrategy at compile time.
var _ noto.ExtractStrategy = (*Strategy)(nil)

// Strategy extracts article text with go-domdistiller's text output.
type Strategy struct {
	fetcher noto.Fetcher
}

// NewStrategy creates a Strategy that fetches pages with the given fetcher.
func NewStrategy(fetcher noto.Fetcher) *Strategy {
	return &Strategy{fetcher: fetcher}
}

// Extract fetches the URL and returns cleaned, quality-scored text.
func (s *Strategy) Extract(ctx context.Context, rawURL, title string) (*noto.ExtractionResult, error) {
	start := time.Now()

	html, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	opts := &distiller.Options{}
	if parsed, err := url.Parse(rawURL); err == nil {
		opts.OriginalURL = parsed
	}

	result, err := distiller.ApplyForReader(strings.NewReader(html), opts)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(result.Text)
	if len(text) < minContentChars {
		return nil, noto.Errorf(noto.ENOTFOUND, "domdistiller produced %d chars for %s", len(text), rawURL)
	}

	cleaned := extract.CleanText(text)

	return &noto.ExtractionResult{
		Content:        cleaned,
		Method:         Name,
		QualityScore:   extract.ScoreQuality(cleaned, rawURL, title),
		Length:         len(cleaned),
		ProcessingTime: time.Since(start).Seconds(),
	}, nil
}

// Name implements noto.ExtractStrategy.
func (s *Strategy) Name() string { return Name }
