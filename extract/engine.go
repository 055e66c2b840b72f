package extract

import (
	"context"

	"github.com/noto-news/noto"
)

// Thresholds governing result acceptance.
const (
	// DefaultAcceptThreshold is the minimal quality score for a result to
	// be retained at all.
	DefaultAcceptThreshold = 0.3

	// DefaultShortCircuitThreshold is the quality score at which the
	// engine stops trying further strategies.
	DefaultShortCircuitThreshold = 0.8
)

// Ensure Engine implements noto.Extractor at compile time.
var _ noto.Extractor = (*Engine)(nil)

// Engine tries an ordered chain of extraction strategies and keeps the
// best-scoring result. Strategy failures are absorbed, never propagated:
// downstream summarization can always proceed with whatever survived, and
// the caller decides how much quality it requires.
//
// Each ExtractWithFallback call owns its own state; the only shared
// mutable state is the bounded result cache, which is internally locked.
type Engine struct {
	strategies   []noto.ExtractStrategy
	cache        *resultCache
	accept       float64
	shortCircuit float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithAcceptThreshold overrides the minimal quality score for retention.
func WithAcceptThreshold(v float64) Option {
	return func(e *Engine) { e.accept = v }
}

// WithShortCircuitThreshold overrides the early-return quality score.
func WithShortCircuitThreshold(v float64) Option {
	return func(e *Engine) { e.shortCircuit = v }
}

// WithCacheSize overrides the result cache capacity.
func WithCacheSize(n int) Option {
	return func(e *Engine) { e.cache = newResultCache(n) }
}

// NewEngine creates an Engine over the given strategies, ordered by
// empirically observed effectiveness (best first).
func NewEngine(strategies []noto.ExtractStrategy, opts ...Option) *Engine {
	e := &Engine{
		strategies:   strategies,
		cache:        newResultCache(DefaultCacheSize),
		accept:       DefaultAcceptThreshold,
		shortCircuit: DefaultShortCircuitThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractWithFallback tries each strategy in order until one produces a
// result above the short-circuit threshold, otherwise returns the best
// result above the acceptance threshold. It returns (nil, nil) when no
// strategy produced an acceptable result; absence is not an error.
//
// If preferred names a known strategy it is tried first. Results are
// cached by URL for the process lifetime.
func (e *Engine) ExtractWithFallback(ctx context.Context, url, title, preferred string) (*noto.ExtractionResult, error) {
	if len(e.strategies) == 0 {
		return nil, nil
	}

	if cached, ok := e.cache.get(url); ok {
		return cached, nil
	}

	var (
		best      *noto.ExtractionResult
		bestScore float64
	)

	for _, strategy := range e.order(preferred) {
		if err := ctx.Err(); err != nil {
			break
		}

		result, err := strategy.Extract(ctx, url, title)
		if err != nil || result == nil {
			// A failed strategy scores zero; move on.
			continue
		}

		if result.QualityScore <= e.accept {
			continue
		}

		if result.QualityScore > e.shortCircuit {
			e.cache.put(url, result)
			return result, nil
		}

		if result.QualityScore > bestScore {
			best = result
			bestScore = result.QualityScore
		}
	}

	if best != nil {
		e.cache.put(url, best)
	}
	return best, nil
}

// CacheLen reports how many results are currently cached.
func (e *Engine) CacheLen() int {
	return e.cache.len()
}

// StrategyNames lists the configured strategies in chain order.
func (e *Engine) StrategyNames() []string {
	names := make([]string, 0, len(e.strategies))
	for _, s := range e.strategies {
		names = append(names, s.Name())
	}
	return names
}

// order returns the strategy chain with the preferred strategy, when
// known, moved to the front.
func (e *Engine) order(preferred string) []noto.ExtractStrategy {
	if preferred == "" {
		return e.strategies
	}

	idx := -1
	for i, s := range e.strategies {
		if s.Name() == preferred {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return e.strategies
	}

	ordered := make([]noto.ExtractStrategy, 0, len(e.strategies))
	ordered = append(ordered, e.strategies[idx])
	ordered = append(ordered, e.strategies[:idx]...)
	ordered = append(ordered, e.strategies[idx+1:]...)
	return ordered
}
