package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/noto-news/noto"
)

// Ensure LoggingFilter implements noto.SentenceFilter.
var _ noto.SentenceFilter = (*LoggingFilter)(nil)

// LoggingFilter wraps a SentenceFilter with selection logging.
type LoggingFilter struct {
	next   noto.SentenceFilter
	logger *slog.Logger
}

// NewLoggingFilter creates a new LoggingFilter.
func NewLoggingFilter(next noto.SentenceFilter, logger *slog.Logger) *LoggingFilter {
	return &LoggingFilter{next: next, logger: logger}
}

// ScoreContent delegates to the wrapped filter.
func (f *LoggingFilter) ScoreContent(ctx context.Context, sentence, interest string) noto.ContentScore {
	return f.next.ScoreContent(ctx, sentence, interest)
}

// FilterSentences logs how many sentences survived and delegates.
func (f *LoggingFilter) FilterSentences(ctx context.Context, sentences []string, interest string, threshold float64) (kept []noto.ScoredSentence) {
	defer func(begin time.Time) {
		f.logger.Info("filter sentences",
			"interest", interest,
			"in", len(sentences),
			"kept", len(kept),
			"threshold", threshold,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.FilterSentences(ctx, sentences, interest, threshold)
}

// TopContent logs the selection size and delegates.
func (f *LoggingFilter) TopContent(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) (top []string) {
	defer func(begin time.Time) {
		f.logger.Info("top content",
			"interest", interest,
			"in", len(sentences),
			"selected", len(top),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.TopContent(ctx, sentences, interest, maxItems, minScore)
}

// HealthCheck logs the filter health and delegates.
func (f *LoggingFilter) HealthCheck(ctx context.Context) noto.FilterHealth {
	health := f.next.HealthCheck(ctx)
	f.logger.Info("filter health",
		"healthy", health.Healthy,
		"embedder", health.EmbedderAvailable,
		"testScore", health.TestScore,
	)
	return health
}
