package goquery_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/noto-news/noto"
	"github.com/noto-news/noto/goquery"
	"github.com/noto-news/noto/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ noto.ExtractStrategy = (*goquery.Strategy)(nil)

const articleBody = `Le gouvernement a annoncé mardi une hausse de 12% des investissements publics dans les infrastructures de transport. Selon le ministère, cette enveloppe de 3 milliards d'euros sera répartie sur cinq ans entre les régions. Les élus locaux saluent une décision attendue depuis des années. Les travaux devraient commencer dès le printemps prochain dans les zones prioritaires identifiées par l'étude nationale.`

func fetcherReturning(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return html, nil
		},
	}
}

func TestStrategy_Extract(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("extracts from article element", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<nav><a href="/">Accueil</a><a href="/politique">Politique</a></nav>
<article><p>` + articleBody + `</p></article>
<footer>Mentions légales</footer>
</body>
</html>`

		s := goquery.NewStrategy(fetcherReturning(html))
		result, err := s.Extract(ctx, "https://example.fr/article", "Hausse des investissements")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, goquery.Name, result.Method)
		assert.Contains(t, result.Content, "investissements")
		assert.NotContains(t, result.Content, "Accueil")
		assert.Greater(t, result.QualityScore, 0.0)
		assert.Equal(t, len(result.Content), result.Length)
	})

	t.Run("falls back to body when no selector matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><p>` + articleBody + `</p></div></body></html>`

		s := goquery.NewStrategy(fetcherReturning(html))
		result, err := s.Extract(ctx, "https://example.fr/article", "")

		require.NoError(t, err)
		assert.Contains(t, result.Content, "milliards")
	})

	t.Run("strips script and style content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<script>window.dataLayer = [];</script>
<style>.ad { display: none; }</style>
<article><p>` + articleBody + `</p></article>
</body></html>`

		s := goquery.NewStrategy(fetcherReturning(html))
		result, err := s.Extract(ctx, "https://example.fr/article", "")

		require.NoError(t, err)
		assert.NotContains(t, result.Content, "dataLayer")
		assert.NotContains(t, result.Content, "display: none")
	})

	t.Run("rejects thin pages", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewStrategy(fetcherReturning(`<html><body><article>Trop court.</article></body></html>`))
		result, err := s.Extract(ctx, "https://example.fr/short", "")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, noto.ENOTFOUND, noto.ErrorCode(err))
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		s := goquery.NewStrategy(fetcher)
		result, err := s.Extract(ctx, "https://example.fr/down", "")

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("prefers specific selectors over main", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>Sommaire de la page avec beaucoup de liens. ` + strings.Repeat("Lien. ", 50) + `</main>
<div class="post-content"><p>` + articleBody + `</p></div>
</body></html>`

		s := goquery.NewStrategy(fetcherReturning(html))
		result, err := s.Extract(ctx, "https://example.fr/article", "")

		require.NoError(t, err)
		assert.Contains(t, result.Content, "investissements")
		assert.NotContains(t, result.Content, "Sommaire")
	})
}
