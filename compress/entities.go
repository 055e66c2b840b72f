package compress

import (
	"strings"
	"unicode"

	"github.com/noto-news/noto"
)

// Ensure HeuristicRecognizer implements noto.EntityRecognizer at compile time.
var _ noto.EntityRecognizer = (*HeuristicRecognizer)(nil)

// orgMarkers suggest an organization when found inside a capitalized span.
var orgMarkers = []string{
	"banque", "ministère", "assemblée", "commission", "université", "institut",
	"fédération", "association", "groupe", "société",
	"bank", "ministry", "commission", "university", "institute", "federation", "group",
}

// placeMarkers are well-known country/city names used to tag place spans.
// Coverage is deliberately small; unknown capitalized spans fall back to
// the person/other heuristics.
var placeMarkers = map[string]bool{
	"france": true, "paris": true, "marseille": true, "lyon": true,
	"europe": true, "bruxelles": true, "allemagne": true, "italie": true,
	"espagne": true, "londres": true, "washington": true, "chine": true,
	"états-unis": true, "royaume-uni": true, "japon": true, "russie": true,
}

// HeuristicRecognizer is a best-effort entity recognizer used when no real
// NER model is configured. It treats maximal spans of capitalized words as
// entity candidates and classifies them with marker-word lookups:
// multi-word spans default to person, marker-bearing spans to org or
// place, single capitalized words to other.
type HeuristicRecognizer struct{}

// NewHeuristicRecognizer creates a HeuristicRecognizer.
func NewHeuristicRecognizer() *HeuristicRecognizer {
	return &HeuristicRecognizer{}
}

// Recognize finds capitalized-span entity candidates in text.
// Sentence-initial single words are skipped since their capitalization
// carries no signal.
func (r *HeuristicRecognizer) Recognize(text string) []noto.Entity {
	words := strings.Fields(text)

	var entities []noto.Entity
	seen := make(map[string]bool)

	i := 0
	for i < len(words) {
		if !isCapitalized(words[i]) {
			i++
			continue
		}

		j := i
		for j < len(words) && isCapitalized(words[j]) {
			j++
		}
		span := strings.Join(words[i:j], " ")
		spanStart := i
		i = j

		span = strings.Trim(span, ".,;:!?\"'«»()")
		if len(span) < 2 || isNumeric(span) {
			continue
		}
		// A lone sentence-initial capital is just orthography.
		if spanStart == 0 && !strings.Contains(span, " ") {
			continue
		}
		key := strings.ToLower(span)
		if seen[key] {
			continue
		}
		seen[key] = true

		entities = append(entities, noto.Entity{Text: span, Kind: classify(span)})
	}

	return entities
}

func classify(span string) noto.EntityKind {
	lower := strings.ToLower(span)

	if placeMarkers[lower] {
		return noto.EntityPlace
	}
	for _, marker := range orgMarkers {
		if strings.Contains(lower, marker) {
			return noto.EntityOrg
		}
	}
	if strings.Contains(span, " ") {
		return noto.EntityPerson
	}
	return noto.EntityOther
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return false
		}
	}
	return true
}
