package filter

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// relevance estimates topical fit between content and the user interest.
// With an embedder configured it is the cosine similarity of the two
// texts remapped from [-1,1] to [0,1]. Without one (or when embedding
// fails) it falls back to keyword overlap.
func (f *Filter) relevance(ctx context.Context, content, interest string) (float64, string) {
	if f.embedder != nil {
		interestVec, err := f.interestEmbedding(ctx, interest)
		if err == nil {
			contentVec, err := f.embedder.Embed(ctx, content)
			if err == nil {
				sim := cosineSimilarity(interestVec, contentVec)
				return clamp01((sim + 1) / 2), "embedding similarity"
			}
		}
	}
	return keywordRelevance(content, interest)
}

// keywordRelevance is the degraded-mode relevance estimate: a direct
// interest mention is a strong signal, related vocabulary accrues
// smaller credit.
func keywordRelevance(content, interest string) (float64, string) {
	lowerContent := strings.ToLower(content)
	lowerInterest := strings.ToLower(strings.TrimSpace(interest))

	if lowerInterest != "" && strings.Contains(lowerContent, lowerInterest) {
		return 0.9, "direct interest mention"
	}

	var hits int
	for key, keywords := range relatedKeywords {
		if !strings.Contains(lowerInterest, key) {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(lowerContent, kw) {
				hits++
			}
		}
	}
	if hits > 0 {
		score := math.Min(0.3+float64(hits)*0.2, 0.8)
		return score, fmt.Sprintf("%d related keywords", hits)
	}
	return 0.1, "no keyword overlap"
}

// locale scores how anchored content is in the reader's locale. Tiered
// keyword hits accrue additively; the embedding term, when available,
// adds up to 0.2 of anchor similarity.
func (f *Filter) locale(ctx context.Context, content string) (float64, string) {
	lower := strings.ToLower(content)

	var score float64
	var reasons []string

	for _, ind := range localeHighIndicators {
		if strings.Contains(lower, ind) {
			score += 0.3
			reasons = append(reasons, ind)
		}
	}
	for _, ind := range localeMediumIndicators {
		if strings.Contains(lower, ind) {
			score += 0.15
			reasons = append(reasons, ind)
		}
	}
	for _, ind := range localeContextIndicators {
		if strings.Contains(lower, ind) {
			score += 0.1
			reasons = append(reasons, ind)
		}
	}

	if f.embedder != nil {
		if anchor := f.anchorEmbedding(ctx); anchor != nil {
			if vec, err := f.embedder.Embed(ctx, content); err == nil {
				score += 0.2 * clamp01(cosineSimilarity(anchor, vec))
				reasons = append(reasons, "anchor similarity")
			}
		}
	}

	if len(reasons) == 0 {
		return clamp01(score), "no locale signal"
	}
	return clamp01(score), strings.Join(reasons, ", ")
}

// quality scores writing quality on [0,1]. Boilerplate is near-fatal,
// filler and awkward length cost less, reported action earns a small
// bonus.
func quality(content string) (float64, string) {
	score := 1.0
	var reasons []string

	var fillerHits, boilerplateHits int
	for _, re := range fillerPatterns {
		if re.MatchString(content) {
			fillerHits++
		}
	}
	if fillerHits > 0 {
		score -= 0.3 * float64(fillerHits)
		reasons = append(reasons, fmt.Sprintf("filler x%d", fillerHits))
	}
	for _, re := range boilerplatePatterns {
		if re.MatchString(content) {
			boilerplateHits++
		}
	}
	if boilerplateHits > 0 {
		score -= 0.8 * float64(boilerplateHits)
		reasons = append(reasons, fmt.Sprintf("boilerplate x%d", boilerplateHits))
	}
	switch length := len(content); {
	case length < 30:
		score -= 0.2
		reasons = append(reasons, "too short")
	case length > 300:
		score -= 0.1
		reasons = append(reasons, "too long")
	}
	if enumerationPattern.MatchString(content) {
		score -= 0.4
		reasons = append(reasons, "enumeration")
	}

	lower := strings.ToLower(content)
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			score += 0.1
			reasons = append(reasons, "action verb")
			break
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	if len(reasons) == 0 {
		return score, "clean"
	}
	return score, strings.Join(reasons, ", ")
}

// factual starts neutral at 0.5, rewards checkable claims and heavily
// penalizes references known to be outdated.
func (f *Filter) factual(content string) (float64, string) {
	score := 0.5
	var reasons []string

	for _, re := range factualIndicators {
		if re.MatchString(content) {
			score += 0.15
			reasons = append(reasons, "factual indicator")
		}
	}

	lower := strings.ToLower(content)
	for _, ref := range f.stale {
		if strings.Contains(lower, ref) {
			score -= 0.8
			reasons = append(reasons, "stale reference")
			break
		}
	}

	if len(reasons) == 0 {
		return clamp01(score), "neutral"
	}
	return clamp01(score), strings.Join(reasons, ", ")
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths or zero vectors yield 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
