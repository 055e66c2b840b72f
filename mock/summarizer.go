package mock

import (
	"context"

	"github.com/noto-news/noto"
)

var _ noto.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of noto.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, brief *noto.Brief) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, brief *noto.Brief) (string, error) {
	return s.SummarizeFn(ctx, brief)
}

var _ noto.SentenceFilter = (*SentenceFilter)(nil)

// SentenceFilter is a mock implementation of noto.SentenceFilter.
type SentenceFilter struct {
	ScoreContentFn    func(ctx context.Context, sentence, interest string) noto.ContentScore
	FilterSentencesFn func(ctx context.Context, sentences []string, interest string, threshold float64) []noto.ScoredSentence
	TopContentFn      func(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string
	HealthCheckFn     func(ctx context.Context) noto.FilterHealth
}

func (f *SentenceFilter) ScoreContent(ctx context.Context, sentence, interest string) noto.ContentScore {
	return f.ScoreContentFn(ctx, sentence, interest)
}

func (f *SentenceFilter) FilterSentences(ctx context.Context, sentences []string, interest string, threshold float64) []noto.ScoredSentence {
	return f.FilterSentencesFn(ctx, sentences, interest, threshold)
}

func (f *SentenceFilter) TopContent(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string {
	return f.TopContentFn(ctx, sentences, interest, maxItems, minScore)
}

func (f *SentenceFilter) HealthCheck(ctx context.Context) noto.FilterHealth {
	return f.HealthCheckFn(ctx)
}
