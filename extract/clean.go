// Package extract provides the multi-strategy content extraction engine:
// an ordered fallback chain over extraction strategies, shared text
// cleaning, heuristic quality scoring, and a bounded per-process result
// cache.
package extract

import (
	"regexp"
	"strings"
)

// noisePatterns match boilerplate that survives article extraction on
// French news sites: cookie banners, newsletter calls to action, share
// widgets, copyright notices and stray navigation fragments. The list is a
// tuning seed, not a complete taxonomy.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Accepter et fermer`),
	regexp.MustCompile(`(?i)Accepter les cookies`),
	regexp.MustCompile(`(?i)Politique de confidentialité`),
	regexp.MustCompile(`(?i)Mentions légales`),
	regexp.MustCompile(`(?i)S'abonner à la newsletter`),
	regexp.MustCompile(`(?i)Suivez-nous sur`),
	regexp.MustCompile(`(?i)Partager sur.*?(\s|$)`),
	regexp.MustCompile(`©.*?\d{4}`),
	regexp.MustCompile(`(?i)Tous droits réservés`),
	regexp.MustCompile(`(?i)La question du jour`),
	regexp.MustCompile(`(?i)Top news`),
	regexp.MustCompile(`(?i)Vos émissions en replay`),
	regexp.MustCompile(`(?i)REPLAY\..*?(\s|$)`),
	regexp.MustCompile(`(?i)Lire la suite.*?(\s|$)`),
	regexp.MustCompile(`^\w+\s*:\s*`), // category prefixes like "Sport: "
}

var (
	whitespaceRE    = regexp.MustCompile(`\s+`)
	multiPeriodRE   = regexp.MustCompile(`\.{2,}`)
	periodSpacingRE = regexp.MustCompile(`\s*\.\s*`)
)

// CleanText normalizes extracted article text: collapses whitespace,
// removes boilerplate noise, drops a leading fragment shorter than four
// words (a stray navigation artifact), drops a trailing word shorter than
// three characters, and normalizes repeated punctuation.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRE.ReplaceAllString(text, " ")

	for _, re := range noisePatterns {
		text = re.ReplaceAllString(text, "")
	}

	// A first "sentence" of fewer than 4 words is almost always a nav
	// artifact rather than article prose.
	if sentences := strings.Split(text, "."); len(sentences) > 1 {
		if len(strings.Fields(sentences[0])) < 4 {
			text = strings.Join(sentences[1:], ".")
		}
	}

	// Trailing fragments cut mid-word are worse than nothing.
	if words := strings.Fields(text); len(words) > 0 && len(words[len(words)-1]) < 3 {
		text = strings.Join(words[:len(words)-1], " ")
	}

	text = strings.Join(strings.Fields(text), " ")
	text = multiPeriodRE.ReplaceAllString(text, ".")
	text = periodSpacingRE.ReplaceAllString(text, ". ")

	return strings.TrimSpace(text)
}
