package noto

// EntityKind classifies a recognized named entity.
type EntityKind string

// EntityKind values.
const (
	EntityPerson EntityKind = "person"
	EntityOrg    EntityKind = "org"
	EntityPlace  EntityKind = "place"
	EntityOther  EntityKind = "other"
)

// Entity is a named entity found in text.
type Entity struct {
	Text string
	Kind EntityKind
}

// EntityRecognizer finds named entities in text. Implementations may wrap a
// real NER model or use best-effort heuristics; the compressor treats a nil
// recognizer as "no entity signal" and scores without it.
type EntityRecognizer interface {
	Recognize(text string) []Entity
}

// Compressor bounds article text to a character budget by keeping the most
// important sentences.
type Compressor interface {
	// ExtractKeyFacts returns content compressed to at most maxChars.
	// Content already within budget is returned unchanged. The optional
	// interest category biases sentence scoring toward that topic.
	ExtractKeyFacts(content, interestCategory string, maxChars int) string
}
