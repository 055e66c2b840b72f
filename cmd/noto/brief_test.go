package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noto-news/noto"
	main "github.com/noto-news/noto/cmd/noto"
	"github.com/noto-news/noto/mock"
	"github.com/noto-news/noto/pipeline"
)

// briefPipeline builds a pipeline whose extractor always returns content.
func briefPipeline(content string) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Registry: &mock.SourceRegistry{
			RankFn:              func(results []noto.SearchResult) []noto.SearchResult { return results },
			ShouldSkipFn:        func(url string) bool { return false },
			PreferredStrategyFn: func(url string) string { return "" },
		},
		Extractor: &mock.Extractor{
			ExtractWithFallbackFn: func(ctx context.Context, url, title, preferred string) (*noto.ExtractionResult, error) {
				return &noto.ExtractionResult{Content: content, Method: "trafilatura", Length: len(content)}, nil
			},
		},
		RetryDelays: []time.Duration{},
	}
}

func TestBriefCmd(t *testing.T) {
	t.Parallel()

	t.Run("builds and writes a brief", func(t *testing.T) {
		t.Parallel()

		content := "Le gouvernement annonce une hausse de 12% des investissements. " +
			"La Bourse de Paris progresse nettement ce trimestre."

		deps, stdout, stderr := testDeps()
		deps.Pipeline = briefPipeline(content)
		deps.Filter = &mock.SentenceFilter{
			TopContentFn: func(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string {
				assert.Equal(t, "économie", interest)
				assert.Equal(t, 5, maxItems)
				assert.InDelta(t, 0.5, minScore, 0.001)
				require.NotEmpty(t, sentences)
				return sentences[:1]
			},
		}
		var written *noto.Brief
		deps.Writer = &mock.BriefWriter{
			WriteBriefFn: func(ctx context.Context, brief *noto.Brief) error {
				written = brief
				return nil
			},
		}

		path := writeTempFile(t, `[{"url":"https://lci.fr/a","title":"Titre A"}]`)
		cmd := &main.BriefCmd{
			Results:   path,
			Interests: []string{"économie"},
			User:      "Camille",
			OutDir:    t.TempDir(),
			Budget:    1200,
			Sentences: 5,
			Threshold: 0.5,
		}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, written)
		assert.NotEmpty(t, written.ID)
		assert.Equal(t, "Camille", written.UserName)
		require.Len(t, written.Sections, 1)
		assert.Equal(t, "économie", written.Sections[0].Interest)
		assert.Contains(t, written.Sections[0].Sentences[0], "investissements")
		assert.Empty(t, written.Narrative)

		assert.Contains(t, stdout.String(), "written to")
		assert.Contains(t, stdout.String(), written.ID)
		assert.Contains(t, stderr.String(), "1 articles, 0 skipped, 0 failed")
	})

	t.Run("one section per interest", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()
		deps.Pipeline = briefPipeline("Une phrase suffisamment longue pour le filtre.")
		deps.Filter = &mock.SentenceFilter{
			TopContentFn: func(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string {
				if interest == "sport" {
					return []string{"Le club parisien remporte le championnat après un match serré."}
				}
				return []string{"Un nouveau festival de musique s'ouvre à Lyon cette semaine."}
			},
		}
		var written *noto.Brief
		deps.Writer = &mock.BriefWriter{
			WriteBriefFn: func(ctx context.Context, brief *noto.Brief) error {
				written = brief
				return nil
			},
		}

		path := writeTempFile(t, `[{"url":"https://lci.fr/a"}]`)
		cmd := &main.BriefCmd{
			Results:   path,
			Interests: []string{"sport", "culture"},
			Sentences: 5,
			Threshold: 0.5,
		}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, written)
		require.Len(t, written.Sections, 2)
		assert.Equal(t, "sport", written.Sections[0].Interest)
		assert.Equal(t, "culture", written.Sections[1].Interest)
	})

	t.Run("a story matching two interests is told once", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Pipeline = briefPipeline("Une phrase suffisamment longue pour le filtre.")
		shared := "Le gouvernement annonce un plan commun pour le sport et la culture."
		deps.Filter = &mock.SentenceFilter{
			TopContentFn: func(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string {
				return []string{shared}
			},
		}
		var written *noto.Brief
		deps.Writer = &mock.BriefWriter{
			WriteBriefFn: func(ctx context.Context, brief *noto.Brief) error {
				written = brief
				return nil
			},
		}

		path := writeTempFile(t, `[{"url":"https://lci.fr/a"}]`)
		cmd := &main.BriefCmd{
			Results:   path,
			Interests: []string{"sport", "culture"},
			Sentences: 5,
			Threshold: 0.5,
		}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, written)
		require.Len(t, written.Sections, 1)
		assert.Equal(t, "sport", written.Sections[0].Interest)
		assert.Equal(t, []string{shared}, written.Sections[0].Sentences)
		assert.Contains(t, stderr.String(), "section skipped")
	})

	t.Run("summarize fills the narrative", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()
		deps.Pipeline = briefPipeline("Une phrase suffisamment longue pour le filtre.")
		deps.Filter = &mock.SentenceFilter{
			TopContentFn: func(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string {
				return sentences
			},
		}
		deps.Summarizer = &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, brief *noto.Brief) (string, error) {
				return "Bonjour, voici votre brief du jour.", nil
			},
		}
		var written *noto.Brief
		deps.Writer = &mock.BriefWriter{
			WriteBriefFn: func(ctx context.Context, brief *noto.Brief) error {
				written = brief
				return nil
			},
		}

		path := writeTempFile(t, `[{"url":"https://lci.fr/a"}]`)
		cmd := &main.BriefCmd{
			Results:   path,
			Interests: []string{"sport"},
			Sentences: 5,
			Threshold: 0.5,
			Summarize: true,
		}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, written)
		assert.Equal(t, "Bonjour, voici votre brief du jour.", written.Narrative)
	})

	t.Run("summarize without summarizer is unavailable", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Pipeline = briefPipeline("Une phrase suffisamment longue pour le filtre.")
		deps.Filter = &mock.SentenceFilter{
			TopContentFn: func(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string {
				return sentences
			},
		}

		path := writeTempFile(t, `[{"url":"https://lci.fr/a"}]`)
		cmd := &main.BriefCmd{
			Results:   path,
			Interests: []string{"sport"},
			Sentences: 5,
			Threshold: 0.5,
			Summarize: true,
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, noto.EUNAVAILABLE, noto.ErrorCode(err))
		assert.Contains(t, stderr.String(), "GEMINI_API_KEY")
	})

	t.Run("interest with no kept sentences is skipped", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Pipeline = briefPipeline("Une phrase suffisamment longue pour le filtre.")
		deps.Filter = &mock.SentenceFilter{
			TopContentFn: func(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string {
				if interest == "astrologie" {
					return nil
				}
				return sentences
			},
		}
		var written *noto.Brief
		deps.Writer = &mock.BriefWriter{
			WriteBriefFn: func(ctx context.Context, brief *noto.Brief) error {
				written = brief
				return nil
			},
		}

		path := writeTempFile(t, `[{"url":"https://lci.fr/a"}]`)
		cmd := &main.BriefCmd{
			Results:   path,
			Interests: []string{"astrologie", "sport"},
			Sentences: 5,
			Threshold: 0.5,
		}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, written)
		require.Len(t, written.Sections, 1)
		assert.Equal(t, "sport", written.Sections[0].Interest)
		assert.Contains(t, stderr.String(), "section skipped")
	})

	t.Run("no usable content at all is not found", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()
		deps.Pipeline = briefPipeline("Une phrase suffisamment longue pour le filtre.")
		deps.Filter = &mock.SentenceFilter{
			TopContentFn: func(ctx context.Context, sentences []string, interest string, maxItems int, minScore float64) []string {
				return nil
			},
		}

		path := writeTempFile(t, `[{"url":"https://lci.fr/a"}]`)
		cmd := &main.BriefCmd{
			Results:   path,
			Interests: []string{"sport"},
			Sentences: 5,
			Threshold: 0.5,
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, noto.ENOTFOUND, noto.ErrorCode(err))
	})

	t.Run("invalid JSON is rejected", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()
		path := writeTempFile(t, "not json")

		cmd := &main.BriefCmd{Results: path, Interests: []string{"sport"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, noto.EINVALID, noto.ErrorCode(err))
	})

	t.Run("empty results are rejected", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()
		path := writeTempFile(t, "[]")

		cmd := &main.BriefCmd{Results: path, Interests: []string{"sport"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, noto.EINVALID, noto.ErrorCode(err))
	})
}
