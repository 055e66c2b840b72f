package compress

// Importance keyword tiers. Bilingual French/English coverage of
// growth/decline/record/announcement vocabulary; a tuning seed rather
// than a complete taxonomy.
var importanceKeywords = map[string][]string{
	"high": {
		"inflation", "croissance", "hausse", "baisse", "chute", "rebond",
		"record", "historique", "nouveau", "première fois", "jamais",
		"annonce", "confirme", "révèle", "selon", "données", "chiffres",
		"résultats", "bilan", "performance", "évolution", "tendance",
		"breakthrough", "announces", "reveals", "confirms", "reports",
		"unprecedented", "historic", "first time", "never before",
	},
	"medium": {
		"estime", "prévoit", "attend", "projette", "anticipe",
		"analyse", "étude", "rapport", "enquête", "sondage",
		"estimates", "expects", "projects", "forecasts", "predicts",
		"analysis", "study", "report", "survey", "research",
	},
	"context": {
		"contexte", "situation", "environnement", "cadre",
		"background", "historique", "précédent",
		"context", "environment", "framework",
	},
}

// Per-tier keyword bonuses.
var tierBonus = map[string]float64{
	"high":    1.5,
	"medium":  1.0,
	"context": 0.5,
}

// categoryKeywords maps interest categories to topical vocabulary used for
// category-specific sentence boosts.
var categoryKeywords = map[string][]string{
	// Economics and finance.
	"économie": {"économie", "économique", "inflation", "croissance", "pib", "emploi", "chômage", "prix", "marché", "finance", "bourse", "action", "euro", "dollar"},
	"finance":  {"finance", "financier", "banque", "crédit", "investissement", "bourse", "action", "obligation", "rendement"},
	"economy":  {"economy", "economic", "inflation", "growth", "gdp", "employment", "unemployment", "market", "finance"},

	// Sports.
	"football":   {"football", "foot", "match", "équipe", "joueur", "club", "ligue", "champion", "but", "score", "fifa", "coupe"},
	"sport":      {"sport", "sportif", "compétition", "victoire", "défaite", "performance", "record", "champion", "olympique"},
	"basketball": {"basketball", "nba", "basket", "équipe", "joueur", "match", "score", "playoff"},

	// Politics.
	"politique": {"politique", "gouvernement", "ministre", "président", "député", "sénat", "parlement", "élection", "vote", "réforme"},
	"politics":  {"politics", "government", "minister", "president", "parliament", "election", "vote", "reform"},

	// Technology.
	"technologie": {"tech", "technologie", "numérique", "intelligence artificielle", "ia", "innovation", "startup", "application", "logiciel"},
	"technology":  {"tech", "technology", "digital", "artificial intelligence", "ai", "innovation", "startup", "software", "app"},
	"crypto":      {"crypto", "bitcoin", "ethereum", "blockchain", "nft", "defi", "cryptomonnaie"},

	// Health.
	"santé":  {"santé", "médical", "hôpital", "patient", "traitement", "maladie", "vaccin", "épidémie", "médicament"},
	"health": {"health", "medical", "hospital", "patient", "treatment", "disease", "vaccine", "epidemic"},

	// Entertainment.
	"cinéma":  {"cinéma", "film", "acteur", "réalisateur", "oscar", "festival", "sortie"},
	"cinema":  {"cinema", "movie", "film", "actor", "director", "oscar", "festival"},
	"musique": {"musique", "album", "artiste", "concert", "chanson", "streaming"},
	"music":   {"music", "album", "artist", "concert", "song", "streaming"},

	// Environment.
	"environnement": {"environnement", "écologie", "climat", "pollution", "carbone", "énergies renouvelables"},
	"environment":   {"environment", "ecology", "climate", "pollution", "carbon", "renewable energy"},

	// Science.
	"science": {"science", "recherche", "étude", "découverte", "innovation", "laboratoire"},
	"space":   {"espace", "nasa", "spacex", "astronaute", "satellite", "planète"},
}

// genericNewsTerms are the fallback when no category vocabulary matches.
var genericNewsTerms = []string{"actualité", "news", "information", "annonce"}

// temporalMarkers indicate recent information, which matters more in a
// daily brief.
var temporalMarkers = []string{
	"aujourd'hui", "hier", "cette semaine", "ce mois", "récent", "dernier", "nouveau",
	"today", "yesterday", "this week", "recent",
}

// attributionMarkers indicate a credible, citable source.
var attributionMarkers = []string{
	"selon", "insee", "ministère", "gouvernement", "banque de france", "expert", "analyse",
	"according to",
}
