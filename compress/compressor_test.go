package compress_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noto-news/noto/compress"
)

func TestCompressor_ExtractKeyFacts(t *testing.T) {
	t.Parallel()

	c := compress.NewCompressor()

	t.Run("returns short content unchanged", func(t *testing.T) {
		t.Parallel()
		content := "Le PSG a remporté le match 3-1 contre Lyon hier soir."
		got := c.ExtractKeyFacts(content, "football", 500)
		assert.Equal(t, content, got)
	})

	t.Run("returns empty for empty content", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", c.ExtractKeyFacts("", "sport", 300))
	})

	t.Run("returns empty for non-positive budget", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", c.ExtractKeyFacts("Du contenu quelconque.", "sport", 0))
	})

	t.Run("never exceeds the budget", func(t *testing.T) {
		t.Parallel()
		content := longSportArticle()
		require.Greater(t, len(content), 300)
		for _, max := range []int{100, 300, 1000, 2000} {
			got := c.ExtractKeyFacts(content, "football", max)
			assert.LessOrEqual(t, len(got), max, "budget %d", max)
			assert.NotEmpty(t, got, "budget %d", max)
		}
	})

	t.Run("stays valid UTF-8 at every budget", func(t *testing.T) {
		t.Parallel()
		content := strings.Repeat("Le gouvernement annonce une hausse de 12% des investissements liés à l'écologie et à l'énergie. ", 10)
		for max := 60; max <= 200; max += 7 {
			got := c.ExtractKeyFacts(content, "économie", max)
			assert.True(t, utf8.ValidString(got), "budget %d produced %q", max, got)
			assert.LessOrEqual(t, len(got), max)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		content := longSportArticle()
		first := c.ExtractKeyFacts(content, "football", 300)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, c.ExtractKeyFacts(content, "football", 300))
		}
	})

	t.Run("is idempotent once within budget", func(t *testing.T) {
		t.Parallel()
		content := longSportArticle()
		once := c.ExtractKeyFacts(content, "football", 400)
		again := c.ExtractKeyFacts(once, "football", 400)
		assert.Equal(t, once, again)
	})

	t.Run("prefers factual sentences over filler", func(t *testing.T) {
		t.Parallel()
		content := strings.Join([]string{
			"C'est vraiment quelque chose d'intéressant à regarder ce week-end pour tout le monde.",
			"Le chiffre d'affaires de Renault a augmenté de 12% au troisième trimestre selon le groupe.",
			"Il y a beaucoup de choses à dire sur ce sujet et on pourrait en parler longtemps encore.",
			"Encore d'autres considérations générales sans la moindre information concrète ni précise ici.",
		}, " ")
		got := c.ExtractKeyFacts(content, "économie", 120)
		assert.Contains(t, got, "12%")
	})

	t.Run("drops noise sentences", func(t *testing.T) {
		t.Parallel()
		content := strings.Join([]string{
			"Newsletter : inscrivez-vous pour recevoir nos meilleures offres chaque matin sans engagement.",
			"Lire aussi tous nos articles sur le sujet dans notre dossier complet mis à jour.",
			"Le gouvernement a annoncé hier une hausse de 5% du budget de la défense pour 2026.",
			"Photo : AFP / Thomas Martin pour l'ensemble des illustrations de cet article récent.",
		}, " ")
		got := c.ExtractKeyFacts(content, "politique", 150)
		assert.Contains(t, got, "5%")
		assert.NotContains(t, got, "Newsletter")
		assert.NotContains(t, got, "Photo")
	})

	t.Run("ends with terminal punctuation", func(t *testing.T) {
		t.Parallel()
		got := c.ExtractKeyFacts(longSportArticle(), "football", 350)
		require.NotEmpty(t, got)
		last := got[len(got)-1]
		assert.True(t, last == '.' || last == '!' || last == '?',
			"got terminal byte %q", last)
	})

	t.Run("compresses a long article to a small budget", func(t *testing.T) {
		t.Parallel()
		content := longSportArticle()
		require.Greater(t, len(content), 3000)
		got := c.ExtractKeyFacts(content, "football", 300)
		assert.LessOrEqual(t, len(got), 300)
		assert.Greater(t, len(got), 100)
	})

	t.Run("nil recognizer still compresses", func(t *testing.T) {
		t.Parallel()
		bare := compress.NewCompressor(compress.WithRecognizer(nil))
		got := bare.ExtractKeyFacts(longSportArticle(), "football", 300)
		assert.LessOrEqual(t, len(got), 300)
		assert.NotEmpty(t, got)
	})
}

func TestCategoryKeywords(t *testing.T) {
	t.Parallel()

	t.Run("known category", func(t *testing.T) {
		t.Parallel()
		kws := compress.CategoryKeywords("football")
		assert.Contains(t, kws, "match")
	})

	t.Run("category embedded in a longer label", func(t *testing.T) {
		t.Parallel()
		kws := compress.CategoryKeywords("actualité football français")
		assert.Contains(t, kws, "match")
	})

	t.Run("unknown category falls back to its own tokens", func(t *testing.T) {
		t.Parallel()
		kws := compress.CategoryKeywords("apiculture urbaine")
		assert.Contains(t, kws, "apiculture")
		assert.Contains(t, kws, "urbaine")
	})

	t.Run("empty category yields generic terms", func(t *testing.T) {
		t.Parallel()
		assert.NotEmpty(t, compress.CategoryKeywords(""))
	})
}

// longSportArticle builds a multi-paragraph French sports article mixing
// factual sentences, quotes and filler.
func longSportArticle() string {
	paragraphs := []string{
		"Le Paris Saint-Germain a remporté une victoire éclatante 4-1 contre l'Olympique de Marseille dimanche soir au Parc des Princes.",
		"Kylian Mbappé a inscrit un doublé en première période, portant son total à 18 buts cette saison en championnat.",
		"Selon l'entraîneur Luis Enrique, cette victoire confirme la progression de l'équipe depuis le début de la saison.",
		"Le club parisien compte désormais 12 points d'avance sur son dauphin après 25 journées de championnat.",
		"C'était une soirée agréable pour les nombreux supporters venus assister à cette rencontre au sommet.",
		"Les statistiques montrent une possession de 64% pour les Parisiens, avec 22 tirs dont 9 cadrés.",
		"Le transfert record de 180 millions d'euros continue de faire parler dans les couloirs du club.",
		"L'Olympique de Marseille a déclaré vouloir réagir dès le prochain match contre Lens samedi prochain.",
		"Il faut dire que l'ambiance dans le stade était vraiment exceptionnelle du début à la fin du match.",
		"Le défenseur Marquinhos a confirmé en zone mixte que le vestiaire restait concentré sur le titre.",
		"La Ligue a annoncé une hausse de 8% des droits télévisés pour la saison prochaine selon plusieurs sources.",
		"Beaucoup d'observateurs estiment que cette équipe peut viser encore plus haut cette année en Europe.",
		"Le match retour est programmé le 15 mars 2026 au stade Vélodrome devant 65000 spectateurs attendus.",
		"Les joueurs ont célébré cette victoire avec leurs supporters pendant de longues minutes après le coup de sifflet final.",
	}
	return strings.Join(paragraphs, " ") + " " + strings.Join(paragraphs, " ")
}
