// Package filter scores sentences against user interests along four
// axes (relevance, locale fit, quality, factuality) and selects the
// best ones. Embedding similarity is used when an embedder is
// configured; keyword heuristics keep the filter serviceable without
// one.
package filter

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/noto-news/noto"
)

// Default axis weights. They sum to 1, keeping Final in [0,1].
const (
	DefaultRelevanceWeight = 0.40
	DefaultLocaleWeight    = 0.25
	DefaultQualityWeight   = 0.25
	DefaultFactualWeight   = 0.10
)

// healthSentence is a known-good sentence used by HealthCheck: French,
// factual, squarely in the national news locale.
const (
	healthSentence = "Le gouvernement français annonce de nouvelles mesures économiques."
	healthInterest = "politique"
)

// localeAnchor is the text embedded once to anchor locale similarity.
const localeAnchor = "actualités France politique économie société gouvernement"

// Ensure Filter implements noto.SentenceFilter at compile time.
var _ noto.SentenceFilter = (*Filter)(nil)

// Weights are the per-axis weights of the final score.
type Weights struct {
	Relevance float64
	Locale    float64
	Quality   float64
	Factual   float64
}

// Filter implements noto.SentenceFilter. The zero value is not usable;
// use NewFilter.
type Filter struct {
	embedder noto.Embedder
	weights  Weights
	stale    []string

	mu            sync.Mutex
	interestCache map[string][]float32
	anchorOnce    sync.Once
	anchorVec     []float32
}

// Option configures a Filter.
type Option func(*Filter)

// WithEmbedder enables embedding-based relevance and locale scoring.
func WithEmbedder(e noto.Embedder) Option {
	return func(f *Filter) { f.embedder = e }
}

// WithWeights overrides the default axis weights. Callers are expected
// to keep the weights summing to 1.
func WithWeights(w Weights) Option {
	return func(f *Filter) { f.weights = w }
}

// WithStaleReferences replaces the lowercased phrases whose presence
// marks a sentence as outdated. The default list is a heuristic seed
// and needs periodic refreshing.
func WithStaleReferences(refs []string) Option {
	return func(f *Filter) { f.stale = refs }
}

// NewFilter creates a Filter with default weights and no embedder.
func NewFilter(opts ...Option) *Filter {
	f := &Filter{
		weights: Weights{
			Relevance: DefaultRelevanceWeight,
			Locale:    DefaultLocaleWeight,
			Quality:   DefaultQualityWeight,
			Factual:   DefaultFactualWeight,
		},
		stale:         staleReferences,
		interestCache: make(map[string][]float32),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ScoreContent scores one sentence against one interest.
func (f *Filter) ScoreContent(ctx context.Context, sentence, interest string) noto.ContentScore {
	var score noto.ContentScore
	var reason string

	score.Relevance, reason = f.relevance(ctx, sentence, interest)
	score.Reasons = append(score.Reasons, "relevance: "+reason)

	score.Locale, reason = f.locale(ctx, sentence)
	score.Reasons = append(score.Reasons, "locale: "+reason)

	score.Quality, reason = quality(sentence)
	score.Reasons = append(score.Reasons, "quality: "+reason)

	score.Factual, reason = f.factual(sentence)
	score.Reasons = append(score.Reasons, "factual: "+reason)

	score.Final = clamp01(f.weights.Relevance*score.Relevance +
		f.weights.Locale*score.Locale +
		f.weights.Quality*score.Quality +
		f.weights.Factual*score.Factual)

	return score
}

// minSentenceChars discards fragments too short to carry a fact.
const minSentenceChars = 10

// FilterSentences scores sentences, drops short fragments, those below
// threshold and near-duplicates of higher-scored keepers, and returns
// the rest sorted best first.
func (f *Filter) FilterSentences(ctx context.Context, sentences []string, interest string, threshold float64) []noto.ScoredSentence {
	scored := make([]noto.ScoredSentence, 0, len(sentences))
	for _, sentence := range sentences {
		if len(strings.TrimSpace(sentence)) < minSentenceChars {
			continue
		}
		s := f.ScoreContent(ctx, sentence, interest)
		if s.Final >= threshold {
			scored = append(scored, noto.ScoredSentence{Sentence: sentence, Score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.Final > scored[j].Score.Final
	})

	deduper := NewDeduper()
	kept := scored[:0]
	for _, s := range scored {
		if deduper.Add(s.Sentence) {
			kept = append(kept, s)
		}
	}
	return kept
}

// TopContent returns up to maxItems sentence strings scoring at least
// minScore, best first.
func (f *Filter) TopContent(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string {
	if maxItems <= 0 {
		return nil
	}
	scored := f.FilterSentences(ctx, sentences, interest, minScore)
	if len(scored) > maxItems {
		scored = scored[:maxItems]
	}
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.Sentence
	}
	return out
}

// HealthCheck scores a canned sentence. The filter is healthy when the
// canned score clears 0.5, which it does on keyword signal alone.
func (f *Filter) HealthCheck(ctx context.Context) noto.FilterHealth {
	score := f.ScoreContent(ctx, healthSentence, healthInterest)

	embedderOK := false
	if f.embedder != nil {
		_, err := f.embedder.Embed(ctx, healthSentence)
		embedderOK = err == nil
	}

	f.mu.Lock()
	cached := len(f.interestCache)
	f.mu.Unlock()

	return noto.FilterHealth{
		Healthy:           score.Final > 0.5,
		EmbedderAvailable: embedderOK,
		TestScore:         score.Final,
		CachedInterests:   cached,
	}
}

// interestEmbedding returns the cached embedding for an interest,
// computing it on first use. Interests are few and long-lived, so the
// cache is unbounded.
func (f *Filter) interestEmbedding(ctx context.Context, interest string) ([]float32, error) {
	f.mu.Lock()
	if vec, ok := f.interestCache[interest]; ok {
		f.mu.Unlock()
		return vec, nil
	}
	f.mu.Unlock()

	vec, err := f.embedder.Embed(ctx, interest)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.interestCache[interest] = vec
	f.mu.Unlock()
	return vec, nil
}

// anchorEmbedding lazily embeds the locale anchor text. A failed first
// attempt disables the anchor term for the filter's lifetime.
func (f *Filter) anchorEmbedding(ctx context.Context) []float32 {
	f.anchorOnce.Do(func() {
		if vec, err := f.embedder.Embed(ctx, localeAnchor); err == nil {
			f.anchorVec = vec
		}
	})
	return f.anchorVec
}
