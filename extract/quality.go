package extract

import "strings"

// functionWords are common French function words; their presence ratio is
// a cheap signal that the text is real prose in the target language rather
// than a blocked-page stub or navigation dump.
var functionWords = []string{
	"le", "la", "les", "de", "du", "des", "et", "est", "dans", "pour", "avec", "sur",
}

// attributionPhrases mark news-register prose (quotes, sourcing).
var attributionPhrases = []string{
	"selon", "a déclaré", "a annoncé", "rapporte", "affirme", "précise",
	"according to", "announced", "reports",
}

// blockIndicators appear in error pages and bot walls.
var blockIndicators = []string{
	"403", "404", "access denied", "blocked", "error", "forbidden", "not found",
}

// ScoreQuality estimates how well-formed and substantive extracted text is,
// clamped to [0,1]. The score rewards a 500-3000 character length band,
// function-word density, and attribution phrases; it penalizes error-page
// indicators heavily and adds a small bonus for lexical overlap between
// title and content.
func ScoreQuality(content, url, title string) float64 {
	if content == "" {
		return 0
	}

	var score float64
	lower := strings.ToLower(content)

	switch length := len(content); {
	case length >= 500 && length <= 3000:
		score += 0.3
	case length >= 300 && length < 500:
		score += 0.2
	case length > 3000:
		score += 0.1
	}

	var hits int
	for _, w := range functionWords {
		if strings.Contains(lower, " "+w+" ") {
			hits++
		}
	}
	score += float64(hits) / float64(len(functionWords)) * 0.2

	var attribution float64
	for _, phrase := range attributionPhrases {
		if strings.Contains(lower, phrase) {
			attribution += 0.05
		}
	}
	score += min(attribution, 0.2)

	for _, indicator := range blockIndicators {
		if strings.Contains(lower, indicator) {
			score -= 0.5
			break
		}
	}

	if len(title) > 5 {
		score += titleOverlap(lower, title) * 0.1
	}

	return max(0, min(score, 1))
}

// titleOverlap returns the fraction of title words present in the content.
func titleOverlap(contentLower, title string) float64 {
	titleWords := strings.Fields(strings.ToLower(title))
	if len(titleWords) == 0 {
		return 0
	}

	contentWords := make(map[string]bool)
	for _, w := range strings.Fields(contentLower) {
		contentWords[w] = true
	}

	var common int
	seen := make(map[string]bool, len(titleWords))
	for _, w := range titleWords {
		if seen[w] {
			continue
		}
		seen[w] = true
		if contentWords[w] {
			common++
		}
	}

	return float64(common) / float64(len(seen))
}
