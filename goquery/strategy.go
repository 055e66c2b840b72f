// Package goquery provides the generic markup-scraping fallback strategy:
// last in the chain, it pulls text out of common article containers with
// CSS selectors and no article-detection heuristics.
package goquery

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/noto-news/noto"
	"github.com/noto-news/noto/extract"
)

// Name identifies this strategy in the fallback chain.
const Name = "goquery"

const minContentChars = 200

// contentSelectors are tried in order; the first match wins. Ordered from
// most to least specific, tuned for French news site markup.
var contentSelectors = []string{
	"article .content",
	"article .article-content",
	".post-content",
	".entry-content",
	"article",
	"main .content",
	".article-body",
	".story-body",
	"main",
}

// strippedElements never contain article prose.
const strippedElements = "script, style, nav, header, footer, aside, iframe"

// Ensure Strategy implements noto.ExtractStrategy at compile time.
var _ noto.ExtractStrategy = (*Strategy)(nil)

// Strategy scrapes article text with CSS selectors. It is the least
// precise strategy and exists so extraction degrades instead of failing
// when the smarter algorithms produce nothing.
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

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	doc.Find(strippedElements).Remove()

	var content string
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			content = normalizeSpace(sel.Text())
			break
		}
	}
	if content == "" {
		content = normalizeSpace(doc.Find("body").Text())
	}

	if len(content) < minContentChars {
		return nil, noto.Errorf(noto.ENOTFOUND, "goquery produced %d chars for %s", len(content), url)
	}

	cleaned := extract.CleanText(content)

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

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
