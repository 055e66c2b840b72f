package sources

import "github.com/noto-news/noto"

// trustedSources is the seed table of validated sources with observed
// extraction performance. Priority 10 is reserved for domains with
// excellent extraction (>5000 chars typical); lower tiers degrade from
// there. The table covers French and English news coverage only and is a
// starting seed, not a complete taxonomy.
var trustedSources = []noto.SourceProfile{
	// Tier 1: excellent extraction.
	{Domain: "lci.fr", Trust: noto.TrustTrusted, Priority: 10, PreferredStrategy: "trafilatura", ExpectedChars: 8800, SuccessRate: 0.95, Category: "news", Language: "fr"},
	{Domain: "lepoint.fr", Trust: noto.TrustTrusted, Priority: 10, PreferredStrategy: "trafilatura", ExpectedChars: 8200, SuccessRate: 0.90, Category: "news", Language: "fr"},

	// Tier 2: very good extraction.
	{Domain: "challenges.fr", Trust: noto.TrustTrusted, Priority: 9, PreferredStrategy: "domdistiller", ExpectedChars: 4000, SuccessRate: 0.85, Category: "business", Language: "fr"},
	{Domain: "france24.com", Trust: noto.TrustTrusted, Priority: 9, PreferredStrategy: "trafilatura", ExpectedChars: 3500, SuccessRate: 0.88, Category: "international", Language: "fr"},
	{Domain: "rfi.fr", Trust: noto.TrustTrusted, Priority: 9, PreferredStrategy: "trafilatura", ExpectedChars: 3500, SuccessRate: 0.87, Category: "international", Language: "fr"},
	{Domain: "slate.fr", Trust: noto.TrustTrusted, Priority: 9, PreferredStrategy: "trafilatura", ExpectedChars: 3600, SuccessRate: 0.82, Category: "analysis", Language: "fr"},
	{Domain: "franceinter.fr", Trust: noto.TrustTrusted, Priority: 9, PreferredStrategy: "trafilatura", ExpectedChars: 3000, SuccessRate: 0.80, Category: "news", Language: "fr"},

	// Tier 3: good extraction.
	{Domain: "rtl.fr", Trust: noto.TrustTrusted, Priority: 8, PreferredStrategy: "trafilatura", ExpectedChars: 2900, SuccessRate: 0.78, Category: "news", Language: "fr"},
	{Domain: "huffingtonpost.fr", Trust: noto.TrustTrusted, Priority: 8, PreferredStrategy: "trafilatura", ExpectedChars: 2500, SuccessRate: 0.75, Category: "opinion", Language: "fr"},
	{Domain: "ladepeche.fr", Trust: noto.TrustTrusted, Priority: 8, PreferredStrategy: "trafilatura", ExpectedChars: 1800, SuccessRate: 0.72, Category: "regional", Language: "fr"},
	{Domain: "lexpress.fr", Trust: noto.TrustTrusted, Priority: 8, PreferredStrategy: "trafilatura", ExpectedChars: 1800, SuccessRate: 0.70, Category: "news", Language: "fr"},
	{Domain: "europe1.fr", Trust: noto.TrustTrusted, Priority: 8, PreferredStrategy: "trafilatura", ExpectedChars: 1700, SuccessRate: 0.75, Category: "news", Language: "fr"},
	{Domain: "sudouest.fr", Trust: noto.TrustTrusted, Priority: 7, PreferredStrategy: "trafilatura", ExpectedChars: 4800, SuccessRate: 0.68, Category: "regional", Language: "fr"},

	// Tier 4: acceptable extraction.
	{Domain: "20minutes.fr", Trust: noto.TrustTrusted, Priority: 7, PreferredStrategy: "trafilatura", ExpectedChars: 1400, SuccessRate: 0.85, Category: "popular", Language: "fr"},
	{Domain: "cnews.fr", Trust: noto.TrustTrusted, Priority: 6, PreferredStrategy: "trafilatura", ExpectedChars: 1200, SuccessRate: 0.65, Category: "news", Language: "fr"},
	{Domain: "marianne.net", Trust: noto.TrustTrusted, Priority: 7, PreferredStrategy: "trafilatura", ExpectedChars: 2000, SuccessRate: 0.70, Category: "opinion", Language: "fr"},

	// Reliable international sources.
	{Domain: "euronews.com", Trust: noto.TrustTrusted, Priority: 8, PreferredStrategy: "trafilatura", ExpectedChars: 2500, SuccessRate: 0.80, Category: "international", Language: "multi"},
	{Domain: "apnews.com", Trust: noto.TrustTrusted, Priority: 7, PreferredStrategy: "domdistiller", ExpectedChars: 2000, SuccessRate: 0.75, Category: "international", Language: "en"},
	{Domain: "bbc.com", Trust: noto.TrustTrusted, Priority: 6, PreferredStrategy: "readability", ExpectedChars: 1800, SuccessRate: 0.60, Category: "international", Language: "en"},
	{Domain: "theguardian.com", Trust: noto.TrustTrusted, Priority: 6, PreferredStrategy: "domdistiller", ExpectedChars: 2200, SuccessRate: 0.55, Category: "international", Language: "en"},
}

// blockedSites are domains where extraction reliably fails; they are
// skipped before any network fetch.
var blockedSites = map[string]string{
	"lemonde.fr":      "paywall and Cloudflare anti-bot",
	"lefigaro.fr":     "paywall and anti-scraping protection",
	"reuters.com":     "sophisticated anti-bot",
	"bfmtv.com":       "extraction consistently empty",
	"franceinfo.fr":   "anti-bot protection",
	"francetvinfo.fr": "extraction empty",
	"ouest-france.fr": "recurring download failures",
	"leparisien.fr":   "paywall and restrictions",
	"lavoixdunord.fr": "download failures",
	"aljazeera.com":   "removed on request",
}

// suspiciousDomains often fail extraction but are worth a last-resort try.
var suspiciousDomains = map[string]string{
	"nouvelobs.com": "slow responses and short content",
	"liberation.fr": "intermittent anti-bot protection",
	"latribune.fr":  "partial paywall",
}
