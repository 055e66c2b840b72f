// Package readability provides an extraction strategy wrapping the
// readability algorithm from go-readability.
package readability

import (
	"context"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/noto-news/noto"
	"github.com/noto-news/noto/extract"
)

// Name identifies this strategy in the fallback chain.
const Name = "readability"

const minContentChars = 200

// Ensure Strategy implements noto.ExtractStrategy at compile time.
var _ noto.ExtractStrategy = (*Strategy)(nil)

// Strategy extracts article text using the readability algorithm.
type Strategy struct {
	fetcher noto.Fetcher
}

// NewStrategy creates a Strategy that fetches pages with the given fetcher.
func NewStrategy(fetcher noto.Fetcher) *Strategy {
	return &Strategy{fetcher: fetcher}
}

// Extract fetches the URL and returns cleaned, quality-scored text.
func (s *Strategy) Extract(ctx context.Context, url, title string) (*noto.ExtractionResult, error) {
	start := time.Now()

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return nil, err
	}

	text := article.TextContent
	if len(text) < minContentChars {
		return nil, noto.Errorf(noto.ENOTFOUND, "readability produced %d chars for %s", len(text), url)
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
