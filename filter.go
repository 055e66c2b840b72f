package noto

import "context"

// ContentScore is the four-axis assessment of one sentence against one
// user interest. Each axis is clamped to [0,1]; Final is a convex
// combination of the axes and therefore also in [0,1].
type ContentScore struct {
	// Relevance is semantic or keyword relevance to the interest.
	Relevance float64 `json:"relevance"`

	// Locale is relevance to the national news context.
	Locale float64 `json:"locale"`

	// Quality is content quality (anti-filler, information density).
	Quality float64 `json:"quality"`

	// Factual is the likelihood of the sentence being factual rather
	// than hallucinated or stale.
	Factual float64 `json:"factual"`

	// Final is the weighted combination of the four axes.
	Final float64 `json:"final"`

	// Reasons lists human-readable explanations for deductions and
	// boosts, in the order they were applied.
	Reasons []string `json:"reasons,omitempty"`
}

// ScoredSentence pairs a sentence with its score.
type ScoredSentence struct {
	Sentence string
	Score    ContentScore
}

// FilterHealth reports whether the sentence filter and its optional
// embedding backend are operational.
type FilterHealth struct {
	Healthy           bool    `json:"healthy"`
	EmbedderAvailable bool    `json:"embedderAvailable"`
	TestScore         float64 `json:"testScore"`
	CachedInterests   int     `json:"cachedInterests"`
}

// SentenceFilter selects high-signal sentences for a user interest.
type SentenceFilter interface {
	// ScoreContent scores one sentence against one interest.
	ScoreContent(ctx context.Context, sentence, interest string) ContentScore

	// FilterSentences scores sentences, keeps those with a final score at
	// or above threshold, and returns them sorted by descending score.
	FilterSentences(ctx context.Context, sentences []string, interest string, threshold float64) []ScoredSentence

	// TopContent returns up to maxItems sentence strings with final score
	// at or above minScore, best first. Score metadata is discarded at
	// this boundary.
	TopContent(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string

	// HealthCheck scores a canned sentence and reports filter status.
	HealthCheck(ctx context.Context) FilterHealth
}

// Embedder converts text to a dense vector for semantic similarity.
// An unavailable backend is expressed by not configuring an Embedder at
// construction time, never by per-call probing.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
