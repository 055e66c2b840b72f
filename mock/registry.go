package mock

import "github.com/noto-news/noto"

var _ noto.SourceRegistry = (*SourceRegistry)(nil)

// SourceRegistry is a mock implementation of noto.SourceRegistry.
type SourceRegistry struct {
	ProfileFn           func(url string) noto.SourceProfile
	ShouldSkipFn        func(url string) bool
	PreferredStrategyFn func(url string) string
	RankFn              func(results []noto.SearchResult) []noto.SearchResult
}

func (r *SourceRegistry) Profile(url string) noto.SourceProfile {
	return r.ProfileFn(url)
}

func (r *SourceRegistry) ShouldSkip(url string) bool {
	return r.ShouldSkipFn(url)
}

func (r *SourceRegistry) PreferredStrategy(url string) string {
	return r.PreferredStrategyFn(url)
}

func (r *SourceRegistry) Rank(results []noto.SearchResult) []noto.SearchResult {
	return r.RankFn(results)
}
