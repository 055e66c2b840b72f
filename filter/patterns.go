package filter

import "regexp"

// fillerPatterns match low-information prose: meta commentary, vague
// hedging, reader-facing boilerplate.
var fillerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)il faut dire que`),
	regexp.MustCompile(`(?i)comme chacun sait`),
	regexp.MustCompile(`(?i)on peut (dire|penser|imaginer) que`),
	regexp.MustCompile(`(?i)d'une certaine (manière|façon)`),
	regexp.MustCompile(`(?i)en quelque sorte`),
	regexp.MustCompile(`(?i)pour ainsi dire`),
	regexp.MustCompile(`(?i)c'est (vraiment|évidemment) `),
	regexp.MustCompile(`(?i)beaucoup de (choses|gens pensent)`),
	regexp.MustCompile(`(?i)reste à (voir|savoir)`),
	regexp.MustCompile(`(?i)seul l'avenir (nous le )?dira`),
}

// boilerplatePatterns match reader-facing site chrome that survived
// extraction.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)cliquez ici`),
	regexp.MustCompile(`(?i)abonnez-vous`),
	regexp.MustCompile(`(?i)suivez[- ]nous`),
	regexp.MustCompile(`(?i)inscrivez-vous`),
	regexp.MustCompile(`(?i)newsletter`),
	regexp.MustCompile(`(?i)tous droits réservés`),
	regexp.MustCompile(`(?i)lire (aussi|la suite)`),
	regexp.MustCompile(`(?i)article réservé aux abonnés`),
	regexp.MustCompile(`(?i)partag(er|ez) (sur|cet)`),
}

// enumerationPattern matches announcement-style enumerations: a "will
// include" verb followed by a long comma run carries no reportable fact.
var enumerationPattern = regexp.MustCompile(`(?i)(qui inclura|comprendra|comportera).*(,.*){3,}`)

// Locale indicator tiers. High-tier tokens anchor content firmly in
// French national news, medium-tier in the wider European sphere,
// context-tier in international coverage relevant to a French reader.
var (
	localeHighIndicators = []string{
		"france", "français", "française", "paris", "macron", "ministre",
		"gouvernement", "assemblée nationale", "sénat", "élysée", "matignon",
		"hexagone", "régions françaises", "préfecture",
	}
	localeMediumIndicators = []string{
		"europe", "européen", "européenne", "euro", "bruxelles", "union européenne",
		"commission européenne", "bce", "zone euro", "schengen",
	}
	localeContextIndicators = []string{
		"international", "mondial", "mondiale", "global", "planète", "onu",
		"otan", "g7", "g20",
	}
)

// factualIndicators match concrete, checkable claims: figures, dates,
// named attributions.
var factualIndicators = []*regexp.Regexp{
	regexp.MustCompile(`[+-]?\d+[,.]?\d*\s*%`),
	regexp.MustCompile(`(?i)\d+[,.]?\d*\s*(milliards?|millions?|euros?|€)`),
	regexp.MustCompile(`(?i)(selon|d'après)\s+[A-ZÀ-Ü]`),
	regexp.MustCompile(`(?i)a (déclaré|annoncé|confirmé|précisé)`),
	regexp.MustCompile(`(?i)(lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche)\s+\d{1,2}`),
	regexp.MustCompile(`\b(19|20)\d{2}\b`),
}

// staleReferences name people in roles they no longer hold. A sentence
// asserting one of these as current is presumed recycled or outdated.
var staleReferences = []string{
	"ministre des finances, bruno le maire",
	"ministre de l'économie bruno le maire",
	"premier ministre édouard philippe",
	"premier ministre jean castex",
	"président donald trump",
	"chancelière angela merkel",
}

// actionVerbs mark sentences reporting something happening now.
var actionVerbs = []string{
	"annonce", "déclare", "confirme", "révèle", "lance", "présente",
	"dévoile", "adopte", "vote", "signe",
}

// relatedKeywords maps an interest category to vocabulary used by the
// keyword fallback when no embedder is available.
var relatedKeywords = map[string][]string{
	"économie":      {"croissance", "inflation", "pib", "emploi", "chômage", "entreprise", "marché", "investissement", "hausse", "baisse", "budget", "fiscal"},
	"finance":       {"bourse", "action", "taux", "banque", "crédit", "dette", "euro", "marché", "investisseur"},
	"politique":     {"gouvernement", "ministre", "assemblée", "loi", "élection", "député", "sénat", "réforme", "vote"},
	"football":      {"match", "but", "équipe", "joueur", "championnat", "ligue", "club", "entraîneur", "victoire"},
	"sport":         {"match", "victoire", "compétition", "équipe", "champion", "tournoi", "record"},
	"technologie":   {"intelligence artificielle", "numérique", "startup", "innovation", "logiciel", "données", "internet"},
	"santé":         {"hôpital", "médecin", "patient", "traitement", "vaccin", "maladie", "épidémie"},
	"environnement": {"climat", "carbone", "énergie", "renouvelable", "pollution", "biodiversité", "réchauffement"},
	"culture":       {"film", "musique", "festival", "exposition", "artiste", "livre", "théâtre"},
	"science":       {"recherche", "étude", "chercheur", "découverte", "laboratoire", "espace"},
}
