package sources

import (
	"sort"
	"strings"

	"github.com/noto-news/noto"
)

// recencyMarkers in a published date string indicate a very fresh article.
var recencyMarkers = []string{"today", "il y a", "hours ago", "minutes ago"}

// Rank orders search results from most to least promising for extraction.
// The score combines the domain's trust priority with a bonus for French
// sources, the observed success rate, the snippet length, and recency; a
// sort-stable descending order keeps ties in input order.
func (r *Registry) Rank(results []noto.SearchResult) []noto.SearchResult {
	ranked := make([]noto.SearchResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return r.sourceScore(ranked[i]) > r.sourceScore(ranked[j])
	})

	return ranked
}

func (r *Registry) sourceScore(result noto.SearchResult) float64 {
	p := r.Profile(result.URL)

	score := float64(p.Priority)

	switch p.Trust {
	case noto.TrustTrusted:
		if p.Language == "fr" {
			score += 2
		}
		score += p.SuccessRate * 2
	case noto.TrustSuspicious:
		score -= 2
	}

	if len(result.Snippet) > 200 {
		score++
	}

	if result.PublishedDate != "" {
		date := strings.ToLower(result.PublishedDate)
		for _, marker := range recencyMarkers {
			if strings.Contains(date, marker) {
				score++
				break
			}
		}
	}

	return score
}
