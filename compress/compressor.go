// Package compress bounds article text to a character budget by scoring
// sentences for importance (entities, factual patterns, keyword classes)
// and greedily keeping the best ones. It is a best-effort, explainable
// approximation of a knapsack selection, not a lossless summary.
package compress

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/noto-news/noto"
)

// DefaultMaxChars is the compression budget when the caller supplies none.
const DefaultMaxChars = 1200

// minSentenceChars filters fragments too short to carry a fact.
const minSentenceChars = 10

// minTruncationChars is the smallest budget remainder worth filling with a
// truncated sentence.
const minTruncationChars = 50

// Ensure Compressor implements noto.Compressor at compile time.
var _ noto.Compressor = (*Compressor)(nil)

// Factual pattern bonuses: percentages carry the most signal, monetary
// amounts next, other numeric/date/comparison patterns share a base bonus.
var factualPatterns = []struct {
	name  string
	re    *regexp.Regexp
	bonus float64
}{
	{"percentage", regexp.MustCompile(`[+-]?\d+[,.]?\d*\s*%`), 2.0},
	{"monetary", regexp.MustCompile(`(?i)\d+[,.]?\d*\s*(milliards?|millions?|euros?|€|\$|dollars?)`), 1.5},
	{"date", regexp.MustCompile(`(?i)\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|(janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)\s+\d{4}|\b\d{4}\b`), 1.0},
	{"number", regexp.MustCompile(`(?i)\d+[,.]\d+(\s*(millions?|milliards?|milliers?))?`), 1.0},
	{"comparison", regexp.MustCompile(`(?i)(après|contre|vs|par rapport à|comparé à)\s+[+-]?\d+[,.]?\d*\s*%`), 1.0},
}

// noiseSentencePatterns match navigation, credits and other non-prose
// lines that slip through extraction.
var noiseSentencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-z]+\s*:`),            // category prefixes
	regexp.MustCompile(`^\w+\s*\d+\s*:`),              // time prefixes
	regexp.MustCompile(`^(Lire|Voir|Découvrir|Plus)`), // navigation imperatives
	regexp.MustCompile(`(?i)(newsletter|abonnement|publicité)`),
	regexp.MustCompile(`^\s*\d+[.]\s*$`),         // bare numbers
	regexp.MustCompile(`^(Source|Crédit|Photo)`), // credit lines
}

var (
	sentenceSplitRE = regexp.MustCompile(`(?:[.!?])\s+`)
	spaceRE         = regexp.MustCompile(`\s+`)
)

// sentenceScore is the ephemeral per-sentence record used during one
// compression call.
type sentenceScore struct {
	text   string
	score  float64
	length int
}

// Compressor compresses long text under a character budget, preferring
// sentences dense in entities, figures and newsworthy vocabulary.
// Scoring is pure; a Compressor is safe for concurrent use.
type Compressor struct {
	recognizer noto.EntityRecognizer
}

// Option configures a Compressor.
type Option func(*Compressor)

// WithRecognizer sets the entity recognizer. A nil recognizer disables
// the entity term: it contributes zero to every sentence.
func WithRecognizer(r noto.EntityRecognizer) Option {
	return func(c *Compressor) { c.recognizer = r }
}

// NewCompressor creates a Compressor with the heuristic entity recognizer.
func NewCompressor(opts ...Option) *Compressor {
	c := &Compressor{recognizer: NewHeuristicRecognizer()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExtractKeyFacts returns content compressed to at most maxChars. Content
// already within budget is returned unchanged. Selection is deterministic:
// identical input always yields identical output.
func (c *Compressor) ExtractKeyFacts(content, interestCategory string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	if content == "" || len(content) <= maxChars {
		return content
	}

	sentences := SplitSentences(content)

	scored := make([]sentenceScore, 0, len(sentences))
	for _, sentence := range sentences {
		score := c.sentenceImportance(sentence, interestCategory)
		if score > 0 {
			scored = append(scored, sentenceScore{
				text:   strings.TrimSpace(sentence),
				score:  score,
				length: len(sentence),
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	var (
		selected   []string
		totalChars int
	)
	for _, s := range scored {
		if totalChars+s.length+2 <= maxChars { // +2 for the ". " separator
			selected = append(selected, s.text)
			totalChars += s.length + 2
			continue
		}
		// The next sentence does not fit whole; truncate it into the
		// remaining budget only if enough room is left to be meaningful.
		available := maxChars - totalChars - 3 // -3 for "..."
		if available > minTruncationChars {
			selected = append(selected, truncateRunes(s.text, available)+"...")
		}
		break
	}

	result := reconstruct(selected)
	if len(result) > maxChars {
		result = truncateRunes(result, maxChars)
	}
	return result
}

// truncateRunes cuts s to at most n bytes without splitting a rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// sentenceImportance scores one sentence. The score is additive and
// unbounded; higher means more worth keeping.
func (c *Compressor) sentenceImportance(sentence, interestCategory string) float64 {
	var score float64
	lower := strings.ToLower(sentence)

	// Substantial sentences carry more facts; very long ones ramble.
	switch length := len(sentence); {
	case length >= 20 && length <= 200:
		score += 1.0
	case length > 200:
		score += 0.7
	default:
		score += 0.3
	}

	if c.recognizer != nil {
		for _, entity := range c.recognizer.Recognize(sentence) {
			switch entity.Kind {
			case noto.EntityPerson:
				score += 2.0
			case noto.EntityOrg:
				score += 1.5
			case noto.EntityPlace:
				score += 1.2
			default:
				score += 0.8
			}
		}
	}

	for _, p := range factualPatterns {
		if matches := len(p.re.FindAllString(sentence, -1)); matches > 0 {
			score += float64(matches) * p.bonus
		}
	}

	for tier, keywords := range importanceKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score += tierBonus[tier]
			}
		}
	}

	if interestCategory != "" {
		for _, kw := range CategoryKeywords(interestCategory) {
			if strings.Contains(lower, kw) {
				score += 1.0
			}
		}
	}

	for _, marker := range temporalMarkers {
		if strings.Contains(lower, marker) {
			score += 0.5
		}
	}

	for _, marker := range attributionMarkers {
		if strings.Contains(lower, marker) {
			score += 1.0
		}
	}

	return score
}

// CategoryKeywords returns the scoring vocabulary for an interest
// category. Unknown categories fall back to the tokens of the category
// name itself plus generic news terms.
func CategoryKeywords(category string) []string {
	if category == "" {
		return genericNewsTerms
	}

	lower := strings.ToLower(category)

	var found []string
	for key, keywords := range categoryKeywords {
		if strings.Contains(lower, key) {
			found = append(found, keywords...)
			continue
		}
		for _, word := range strings.Fields(key) {
			if strings.Contains(lower, word) {
				found = append(found, keywords...)
				break
			}
		}
	}
	if len(found) > 0 {
		return found
	}

	normalized := strings.NewReplacer("_", " ", "-", " ").Replace(category)
	var terms []string
	for _, term := range strings.Fields(normalized) {
		if len(term) > 2 {
			terms = append(terms, strings.ToLower(term))
		}
	}
	if len(terms) > 0 {
		return append(terms, genericNewsTerms...)
	}
	return genericNewsTerms
}

// SplitSentences splits content on sentence-terminal punctuation after
// whitespace normalization and drops short or noisy fragments.
func SplitSentences(content string) []string {
	content = spaceRE.ReplaceAllString(strings.TrimSpace(content), " ")

	var sentences []string
	start := 0
	for _, loc := range sentenceSplitRE.FindAllStringIndex(content, -1) {
		// Keep the terminal punctuation, drop the following whitespace.
		sentences = append(sentences, content[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(content) {
		sentences = append(sentences, content[start:])
	}

	filtered := sentences[:0]
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if len(s) > minSentenceChars && !isNoiseSentence(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func isNoiseSentence(sentence string) bool {
	for _, re := range noiseSentencePatterns {
		if re.MatchString(sentence) {
			return true
		}
	}
	return false
}

// reconstruct joins selected sentences with ". " separators and ensures
// terminal punctuation.
func reconstruct(sentences []string) string {
	if len(sentences) == 0 {
		return ""
	}

	var b strings.Builder
	for i, s := range sentences {
		if i > 0 {
			b.WriteString(". ")
		}
		b.WriteString(strings.TrimSuffix(s, "."))
	}

	result := b.String()
	if !strings.HasSuffix(result, ".") && !strings.HasSuffix(result, "!") && !strings.HasSuffix(result, "?") {
		result += "."
	}
	return result
}
