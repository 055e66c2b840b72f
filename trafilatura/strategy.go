// Package trafilatura provides the primary extraction strategy, wrapping
// go-trafilatura's structured content extraction.
package trafilatura

import (
	"context"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"github.com/noto-news/noto"
	"github.com/noto-news/noto/extract"
)

// Name identifies this strategy in the fallback chain.
const Name = "trafilatura"

// minContentChars rejects results too thin to summarize.
const minContentChars = 200

// Ensure Strategy implements noto.ExtractStrategy at compile time.
var _ noto.ExtractStrategy = (*Strategy)(nil)

// Strategy extracts article text with go-trafilatura, configured for
// precision on French news sites.
type Strategy struct {
	fetcher noto.Fetcher
	opts    trafilatura.Options
}

// NewStrategy creates a Strategy that fetches pages with the given fetcher.
func NewStrategy(fetcher noto.Fetcher) *Strategy {
	return &Strategy{
		fetcher: fetcher,
		opts: trafilatura.Options{
			EnableFallback:  true,
			TargetLanguage:  "fr",
			ExcludeComments: true,
			ExcludeTables:   true,
			Focus:           trafilatura.FavorPrecision,
		},
	}
}

// Extract fetches the URL and returns cleaned, quality-scored text.
func (s *Strategy) Extract(ctx context.Context, url, title string) (*noto.ExtractionResult, error) {
	start := time.Now()

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	result, err := trafilatura.Extract(strings.NewReader(html), s.opts)
	if err != nil {
		return nil, err
	}

	text := result.ContentText
	if len(text) < minContentChars {
		return nil, noto.Errorf(noto.ENOTFOUND, "trafilatura produced %d chars for %s", len(text), url)
	}

	cleaned := extract.CleanText(text)

	return &noto.ExtractionResult{
		Content:        cleaned,
		Method:         Name,
		QualityScore:   extract.ScoreQuality(cleaned, url, title),
		Length:         len(cleaned),
		ProcessingTime: time.Since(start).Seconds(),
	}, nil
}

// Name implements noto.ExtractStrategy.
func (s *Strategy) Name() string { return Name }
