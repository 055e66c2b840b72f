// Package slog provides logging decorators for the extraction and
// filtering interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/noto-news/noto"
)

// Ensure LoggingExtractor implements noto.Extractor.
var _ noto.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-URL outcome logging.
type LoggingExtractor struct {
	next   noto.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next noto.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractWithFallback logs method, quality and duration of the
// extraction and delegates to the wrapped extractor.
func (e *LoggingExtractor) ExtractWithFallback(ctx context.Context, url, title, preferred string) (result *noto.ExtractionResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"method", result.Method,
				"quality", result.QualityScore,
				"chars", result.Length,
			)
		} else {
			attrs = append(attrs, "method", "(none)")
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.ExtractWithFallback(ctx, url, title, preferred)
}
