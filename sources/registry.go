// Package sources provides the static knowledge base of news source
// domains: trust tiers, expected extraction quality, and preferred
// extraction strategies. Lookups are pure and require no I/O.
package sources

import (
	"net/url"
	"strings"

	"github.com/noto-news/noto"
)

// Ensure Registry implements noto.SourceRegistry at compile time.
var _ noto.SourceRegistry = (*Registry)(nil)

// DefaultStrategy is assumed for domains without a recorded preference.
const DefaultStrategy = "trafilatura"

// Registry answers trust and strategy questions about source domains from
// static profile tables. The tables are data, not code: they are seeded
// with empirically validated sources and can be replaced wholesale via
// options without touching lookup logic.
type Registry struct {
	profiles   map[string]noto.SourceProfile
	blocked    map[string]string
	suspicious map[string]string
}

// Option configures a Registry.
type Option func(*Registry)

// WithProfiles replaces the trusted-source table.
func WithProfiles(profiles []noto.SourceProfile) Option {
	return func(r *Registry) {
		r.profiles = make(map[string]noto.SourceProfile, len(profiles))
		for _, p := range profiles {
			r.profiles[p.Domain] = p
		}
	}
}

// WithBlocked replaces the blocked-domain table (domain → reason).
func WithBlocked(blocked map[string]string) Option {
	return func(r *Registry) { r.blocked = blocked }
}

// WithSuspicious replaces the suspicious-domain table (domain → reason).
func WithSuspicious(suspicious map[string]string) Option {
	return func(r *Registry) { r.suspicious = suspicious }
}

// NewRegistry creates a Registry seeded with the default source tables.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		profiles:   make(map[string]noto.SourceProfile, len(trustedSources)),
		blocked:    blockedSites,
		suspicious: suspiciousDomains,
	}
	for _, p := range trustedSources {
		r.profiles[p.Domain] = p
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Domain extracts the normalized domain from a URL: lowercased host with
// any www. prefix and port removed. Unparseable or non-HTTP URLs return
// "unknown".
func Domain(rawURL string) string {
	if rawURL == "" || !(strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://")) {
		return "unknown"
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")
	if i := strings.IndexByte(host, ':'); i > 0 {
		host = host[:i]
	}
	if host == "" {
		return "unknown"
	}
	return host
}

// Profile returns the profile for the URL's domain. Unknown domains get a
// neutral profile; blocked and suspicious domains carry their reason.
func (r *Registry) Profile(rawURL string) noto.SourceProfile {
	domain := Domain(rawURL)

	if p, ok := r.profiles[domain]; ok {
		return p
	}
	if reason, ok := r.blocked[domain]; ok {
		return noto.SourceProfile{
			Domain: domain,
			Trust:  noto.TrustBlocked,
			Reason: reason,
		}
	}
	if reason, ok := r.suspicious[domain]; ok {
		return noto.SourceProfile{
			Domain:            domain,
			Trust:             noto.TrustSuspicious,
			Priority:          3,
			PreferredStrategy: DefaultStrategy,
			Reason:            reason,
		}
	}
	return noto.SourceProfile{
		Domain:            domain,
		Trust:             noto.TrustUnknown,
		ExpectedChars:     1000,
		SuccessRate:       0.5,
		Priority:          5,
		PreferredStrategy: DefaultStrategy,
	}
}

// ShouldSkip reports whether the URL's domain is blocked.
func (r *Registry) ShouldSkip(rawURL string) bool {
	_, ok := r.blocked[Domain(rawURL)]
	return ok
}

// PreferredStrategy returns the preferred extraction strategy for the
// URL's domain.
func (r *Registry) PreferredStrategy(rawURL string) string {
	return r.Profile(rawURL).PreferredStrategy
}

// FrenchSources returns the domains of trusted French-language sources,
// optionally restricted to a category.
func (r *Registry) FrenchSources(category string) []string {
	var out []string
	for domain, p := range r.profiles {
		if p.Language != "fr" {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, domain)
	}
	return out
}
