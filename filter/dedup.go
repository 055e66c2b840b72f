package filter

import "strings"

// DefaultSimilarityThreshold is the word-overlap ratio above which two
// sentences are considered duplicates.
const DefaultSimilarityThreshold = 0.6

// Deduper tracks sentences already seen and rejects near-duplicates by
// word overlap. It is not safe for concurrent use; each filtering pass
// owns its own Deduper.
type Deduper struct {
	threshold float64
	seen      []map[string]bool
}

// NewDeduper creates a Deduper with the default similarity threshold.
func NewDeduper() *Deduper {
	return &Deduper{threshold: DefaultSimilarityThreshold}
}

// NewDeduperThreshold creates a Deduper with a custom threshold.
func NewDeduperThreshold(threshold float64) *Deduper {
	return &Deduper{threshold: threshold}
}

// Add records a sentence and reports whether it was new. A sentence too
// similar to any previously added one is rejected.
func (d *Deduper) Add(sentence string) bool {
	words := wordSet(sentence)
	for _, prev := range d.seen {
		if overlap(words, prev) > d.threshold {
			return false
		}
	}
	d.seen = append(d.seen, words)
	return true
}

// Similar reports whether two sentences exceed the overlap threshold.
func (d *Deduper) Similar(a, b string) bool {
	return overlap(wordSet(a), wordSet(b)) > d.threshold
}

// overlap is the count of shared words divided by the size of the
// smaller set. Empty sets never overlap.
func overlap(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	smaller, larger := a, b
	if len(b) < len(a) {
		smaller, larger = b, a
	}
	var common int
	for w := range smaller {
		if larger[w] {
			common++
		}
	}
	return float64(common) / float64(len(smaller))
}

func wordSet(sentence string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(sentence)) {
		w = strings.Trim(w, ".,;:!?\"'«»()")
		if w != "" {
			set[w] = true
		}
	}
	return set
}
