package pipeline_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noto-news/noto"
	"github.com/noto-news/noto/bloom"
	"github.com/noto-news/noto/compress"
	"github.com/noto-news/noto/mock"
	"github.com/noto-news/noto/pipeline"
)

// passthroughRegistry ranks nothing and skips nothing.
func passthroughRegistry() *mock.SourceRegistry {
	return &mock.SourceRegistry{
		RankFn:              func(results []noto.SearchResult) []noto.SearchResult { return results },
		ShouldSkipFn:        func(string) bool { return false },
		PreferredStrategyFn: func(string) string { return "" },
	}
}

func okExtractor(content string) *mock.Extractor {
	return &mock.Extractor{
		ExtractWithFallbackFn: func(_ context.Context, url, _, _ string) (*noto.ExtractionResult, error) {
			return &noto.ExtractionResult{
				Content:      content,
				Method:       "trafilatura",
				QualityScore: 0.9,
				Length:       len(content),
			}, nil
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("extracts ranked results in order", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Registry:    passthroughRegistry(),
			Extractor:   okExtractor("Le contenu extrait de l'article complet."),
			RetryDelays: []time.Duration{},
		}

		results := []noto.SearchResult{
			{URL: "https://lci.fr/a", Title: "A"},
			{URL: "https://rfi.fr/b", Title: "B"},
		}

		out, err := p.Run(ctx, results, "", nil)
		require.NoError(t, err)
		require.Len(t, out.Articles, 2)
		assert.Equal(t, "https://lci.fr/a", out.Articles[0].Source.URL)
		assert.Equal(t, "https://rfi.fr/b", out.Articles[1].Source.URL)
		assert.Equal(t, "trafilatura", out.Articles[0].Method)
		assert.Zero(t, out.Failed)
	})

	t.Run("skips blocked and seen sources", func(t *testing.T) {
		t.Parallel()

		registry := passthroughRegistry()
		registry.ShouldSkipFn = func(url string) bool { return url == "https://lemonde.fr/a" }

		seen := bloom.NewSeenFilter()
		seen.Add("https://lci.fr/deja-vu")

		p := &pipeline.Pipeline{
			Registry:    registry,
			Extractor:   okExtractor("Contenu."),
			Seen:        seen,
			RetryDelays: []time.Duration{},
		}

		out, err := p.Run(ctx, []noto.SearchResult{
			{URL: "https://lemonde.fr/a"},
			{URL: "https://lci.fr/deja-vu"},
			{URL: "https://lci.fr/nouveau"},
			{URL: ""},
		}, "", nil)
		require.NoError(t, err)
		assert.Len(t, out.Articles, 1)
		assert.Equal(t, 3, out.Skipped)
	})

	t.Run("extraction does not mark URLs seen", func(t *testing.T) {
		t.Parallel()

		seen := bloom.NewSeenFilter()
		p := &pipeline.Pipeline{
			Registry:    passthroughRegistry(),
			Extractor:   okExtractor("Contenu de l'article."),
			Seen:        seen,
			RetryDelays: []time.Duration{},
		}

		results := []noto.SearchResult{{URL: "https://lci.fr/a"}}

		// Several runs over the same results, one per interest, must all
		// yield the article; only delivery marks it seen.
		for _, interest := range []string{"politique", "économie"} {
			out, err := p.Run(ctx, results, interest, nil)
			require.NoError(t, err)
			assert.Len(t, out.Articles, 1, "interest %s", interest)
			assert.Zero(t, out.Skipped, "interest %s", interest)
		}

		p.MarkDelivered([]string{"https://lci.fr/a"})

		out, err := p.Run(ctx, results, "politique", nil)
		require.NoError(t, err)
		assert.Empty(t, out.Articles)
		assert.Equal(t, 1, out.Skipped)
	})

	t.Run("compresses articles to the budget", func(t *testing.T) {
		t.Parallel()

		long := ""
		for i := 0; i < 40; i++ {
			long += "Le gouvernement annonce une hausse de 5% du budget pour l'année prochaine. "
		}

		p := &pipeline.Pipeline{
			Registry:    passthroughRegistry(),
			Extractor:   okExtractor(long),
			Compressor:  compress.NewCompressor(),
			Budget:      300,
			RetryDelays: []time.Duration{},
		}

		out, err := p.Run(ctx, []noto.SearchResult{{URL: "https://lci.fr/a"}}, "politique", nil)
		require.NoError(t, err)
		require.Len(t, out.Articles, 1)
		assert.LessOrEqual(t, len(out.Articles[0].Content), 300)
	})

	t.Run("counts failures without aborting the run", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractWithFallbackFn: func(_ context.Context, url, _, _ string) (*noto.ExtractionResult, error) {
				if url == "https://lci.fr/bad" {
					return nil, errors.New("fetch failed")
				}
				return &noto.ExtractionResult{Content: "ok", Method: "readability", Length: 2}, nil
			},
		}

		p := &pipeline.Pipeline{
			Registry:    passthroughRegistry(),
			Extractor:   extractor,
			RetryDelays: []time.Duration{},
		}

		out, err := p.Run(ctx, []noto.SearchResult{
			{URL: "https://lci.fr/bad"},
			{URL: "https://lci.fr/good"},
		}, "", nil)
		require.NoError(t, err)
		assert.Len(t, out.Articles, 1)
		assert.Equal(t, 1, out.Failed)
	})

	t.Run("counts exhausted extractions without a snippet as failed", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractWithFallbackFn: func(context.Context, string, string, string) (*noto.ExtractionResult, error) {
				return nil, nil
			},
		}

		p := &pipeline.Pipeline{
			Registry:    passthroughRegistry(),
			Extractor:   extractor,
			RetryDelays: []time.Duration{},
		}

		out, err := p.Run(ctx, []noto.SearchResult{{URL: "https://lci.fr/thin"}}, "", nil)
		require.NoError(t, err)
		assert.Empty(t, out.Articles)
		assert.Equal(t, 1, out.Failed)
	})

	t.Run("falls back to the snippet when extraction exhausts", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractWithFallbackFn: func(context.Context, string, string, string) (*noto.ExtractionResult, error) {
				return nil, nil
			},
		}

		p := &pipeline.Pipeline{
			Registry:    passthroughRegistry(),
			Extractor:   extractor,
			RetryDelays: []time.Duration{},
		}

		out, err := p.Run(ctx, []noto.SearchResult{{
			URL:     "https://lci.fr/consent-wall",
			Snippet: "Le conseil municipal adopte le budget 2026 avec une hausse de 3%.",
		}}, "", nil)
		require.NoError(t, err)
		require.Len(t, out.Articles, 1)
		assert.Equal(t, "snippet", out.Articles[0].Method)
		assert.Contains(t, out.Articles[0].Content, "budget 2026")
		assert.Zero(t, out.Failed)
	})

	t.Run("passes URL-less records through on their snippet", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Registry:    passthroughRegistry(),
			Extractor:   okExtractor("Contenu."),
			RetryDelays: []time.Duration{},
		}

		out, err := p.Run(ctx, []noto.SearchResult{{
			Snippet: "Une dépêche sans lien mais avec un résumé exploitable.",
		}}, "", nil)
		require.NoError(t, err)
		require.Len(t, out.Articles, 1)
		assert.Equal(t, "snippet", out.Articles[0].Method)
		assert.Zero(t, out.Skipped)
	})

	t.Run("records stats per attempt", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var recorded []noto.ExtractionStat
		stats := &mock.SourceStatsService{
			RecordExtractionFn: func(_ context.Context, stat noto.ExtractionStat) error {
				mu.Lock()
				recorded = append(recorded, stat)
				mu.Unlock()
				return nil
			},
		}

		p := &pipeline.Pipeline{
			Registry:    passthroughRegistry(),
			Extractor:   okExtractor("Contenu."),
			Stats:       stats,
			RetryDelays: []time.Duration{},
		}

		_, err := p.Run(ctx, []noto.SearchResult{{URL: "https://lci.fr/a"}}, "", nil)
		require.NoError(t, err)
		require.Len(t, recorded, 1)
		assert.Equal(t, "lci.fr", recorded[0].Domain)
		assert.True(t, recorded[0].Success)
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var events []pipeline.ProgressEvent
		p := &pipeline.Pipeline{
			Registry:    passthroughRegistry(),
			Extractor:   okExtractor("Contenu."),
			RetryDelays: []time.Duration{},
		}

		_, err := p.Run(ctx, []noto.SearchResult{
			{URL: "https://lci.fr/a"},
			{URL: "https://rfi.fr/b"},
		}, "", func(e pipeline.ProgressEvent) {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
		})
		require.NoError(t, err)
		assert.Len(t, events, 2)
		assert.Equal(t, 2, events[len(events)-1].Total)
	})
}

func TestExtractWithRetryDelays(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("retries transient errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		result, err := pipeline.ExtractWithRetryDelays(ctx, func(context.Context) (*noto.ExtractionResult, error) {
			attempts++
			if attempts < 3 {
				return nil, errors.New("transient")
			}
			return &noto.ExtractionResult{Content: "ok"}, nil
		}, []time.Duration{time.Millisecond, time.Millisecond})

		require.NoError(t, err)
		assert.Equal(t, "ok", result.Content)
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry a nil result", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		result, err := pipeline.ExtractWithRetryDelays(ctx, func(context.Context) (*noto.ExtractionResult, error) {
			attempts++
			return nil, nil
		}, []time.Duration{time.Millisecond})

		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 1, attempts)
	})

	t.Run("returns the last error after exhausting retries", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		_, err := pipeline.ExtractWithRetryDelays(ctx, func(context.Context) (*noto.ExtractionResult, error) {
			attempts++
			return nil, errors.New("still broken")
		}, []time.Duration{time.Millisecond})

		require.Error(t, err)
		assert.Equal(t, 2, attempts)
	})
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("spaces requests within one domain", func(t *testing.T) {
		t.Parallel()

		limiter := pipeline.NewDomainLimiter(50) // 20ms between requests

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "lci.fr"))
		require.NoError(t, limiter.Wait(context.Background(), "lci.fr"))
		assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	})

	t.Run("does not couple distinct domains", func(t *testing.T) {
		t.Parallel()

		limiter := pipeline.NewDomainLimiter(1)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "lci.fr"))
		require.NoError(t, limiter.Wait(context.Background(), "rfi.fr"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := pipeline.NewDomainLimiter(0.1)
		require.NoError(t, limiter.Wait(context.Background(), "lci.fr"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		require.Error(t, limiter.Wait(ctx, "lci.fr"))
	})
}
