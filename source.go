package noto

import "context"

// TrustTier classifies how much a source domain can be relied on for
// extraction. Blocked domains are skipped entirely; suspicious domains are
// attempted last; unknown domains get neutral treatment.
type TrustTier string

// TrustTier values.
const (
	TrustBlocked    TrustTier = "blocked"
	TrustSuspicious TrustTier = "suspicious"
	TrustTrusted    TrustTier = "trusted"
	TrustUnknown    TrustTier = "unknown"
)

// SourceProfile describes what to expect when extracting from a domain.
// Profiles are static knowledge loaded at startup; they never change during
// the process lifetime.
type SourceProfile struct {
	// Domain is the normalized host name (no www. prefix, no port).
	Domain string

	// Trust is the domain's trust tier.
	Trust TrustTier

	// ExpectedChars is the typical cleaned-article length for the domain.
	ExpectedChars int

	// SuccessRate is the observed extraction success rate in [0,1].
	SuccessRate float64

	// PreferredStrategy names the extraction strategy that historically
	// works best for the domain. Empty means no preference.
	PreferredStrategy string

	// Language is the dominant content language ("fr", "en", "multi").
	Language string

	// Category loosely groups the source (news, business, regional, ...).
	Category string

	// Priority ranks the source for selection; higher is better. Trusted
	// sources use 6-10, unknown 5, suspicious 3, blocked 0.
	Priority int

	// Reason explains a blocked or suspicious classification.
	Reason string
}

// SearchResult is one record returned by the search/collection layer.
// A missing URL means the record cannot be extracted and is passed through
// as-is (snippet only).
type SearchResult struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	Snippet       string `json:"snippet,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
}

// ArticleDiscoverer finds recent article URLs published by a source
// domain, as a supplemental collection path beside search results.
type ArticleDiscoverer interface {
	// DiscoverArticles returns up to limit recent articles for a domain,
	// newest first when publication dates are available. A domain without
	// a discoverable sitemap yields an empty slice, not an error.
	DiscoverArticles(ctx context.Context, domain string, limit int) ([]SearchResult, error)
}

// SourceRegistry answers trust and strategy questions about source domains.
type SourceRegistry interface {
	// Profile returns the profile for the URL's domain. Unknown domains
	// return a neutral profile, never an error.
	Profile(url string) SourceProfile

	// ShouldSkip reports whether extraction for the URL should be skipped
	// entirely (blocked domain).
	ShouldSkip(url string) bool

	// PreferredStrategy returns the preferred extraction strategy name for
	// the URL's domain, or "" when there is no preference.
	PreferredStrategy(url string) string

	// Rank orders search results from most to least promising for
	// extraction, combining trust priority, language, observed success
	// rate, snippet length and recency.
	Rank(results []SearchResult) []SearchResult
}

// ExtractionStat records the outcome of one extraction attempt for a domain.
type ExtractionStat struct {
	Domain  string
	Success bool
	Chars   int
}

// DomainStats aggregates extraction outcomes for a domain.
type DomainStats struct {
	Domain      string  `json:"domain"`
	Attempts    int     `json:"attempts"`
	Successes   int     `json:"successes"`
	SuccessRate float64 `json:"successRate"`
	AvgChars    int     `json:"avgChars"`
}

// SourceStatsService persists per-domain extraction outcomes so source
// ranking can be tuned against observed behavior.
type SourceStatsService interface {
	// RecordExtraction stores the outcome of one extraction attempt.
	RecordExtraction(ctx context.Context, stat ExtractionStat) error

	// DomainStats returns aggregated stats for a domain.
	// Returns ENOTFOUND if the domain has no recorded attempts.
	DomainStats(ctx context.Context, domain string) (*DomainStats, error)

	// TopDomains returns up to limit domains ordered by success rate.
	TopDomains(ctx context.Context, limit int) ([]*DomainStats, error)
}
