package noto

import "context"

// ExtractionResult holds cleaned article text produced by one extraction
// strategy, together with the quality assessment used to rank strategies.
type ExtractionResult struct {
	// Content is the cleaned plain-text article body.
	Content string `json:"content"`

	// Method names the strategy that produced the content.
	Method string `json:"method"`

	// QualityScore is a heuristic [0,1] estimate of how well-formed and
	// substantive the content is. Callers requiring high confidence must
	// treat scores below the engine's acceptance threshold as failure.
	QualityScore float64 `json:"qualityScore"`

	// Length is len(Content) in bytes.
	Length int `json:"length"`

	// ProcessingTime is how long the strategy took, in seconds.
	ProcessingTime float64 `json:"processingTime"`
}

// Fetcher retrieves raw HTML from URLs. Implementations may use plain HTTP
// or browser automation for JavaScript-rendered pages.
type Fetcher interface {
	// Fetch returns the page HTML. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ExtractStrategy is one independent algorithm for converting a web page
// into cleaned article text.
//
// A strategy that cannot produce a usable result returns (nil, err); the
// engine treats any error as "this strategy scored zero" and moves on, so
// strategies never need to distinguish failure modes for the caller.
type ExtractStrategy interface {
	// Name identifies the strategy ("trafilatura", "readability", ...).
	Name() string

	// Extract fetches the URL and returns cleaned, quality-scored text.
	// The title, when known, improves quality scoring.
	Extract(ctx context.Context, url, title string) (*ExtractionResult, error)
}

// Converter transforms page HTML into Markdown. Used by the CLI
// extraction preview, not by the scoring path.
type Converter interface {
	Convert(html string) (markdown string, err error)
}

// Extractor produces the best available extraction for a URL.
type Extractor interface {
	// ExtractWithFallback tries strategies in order and returns the best
	// acceptable result, or (nil, nil) when every strategy failed or none
	// met the acceptance threshold. It never returns an error for
	// per-strategy failures.
	ExtractWithFallback(ctx context.Context, url, title, preferred string) (*ExtractionResult, error)
}
