package noto

import (
	"context"
	"time"
)

// BriefSection is the deduplicated content selected for one user interest.
type BriefSection struct {
	Interest  string   `json:"interest"`
	Sentences []string `json:"sentences"`
}

// Brief is one generated news brief for one user, ready for the external
// summarizer and speech synthesis.
type Brief struct {
	ID        string         `json:"id"`
	UserName  string         `json:"userName"`
	Sections  []BriefSection `json:"sections"`
	Narrative string         `json:"narrative,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Validate returns an error if the brief contains invalid fields.
func (b *Brief) Validate() error {
	if b.ID == "" {
		return Errorf(EINVALID, "brief ID required")
	}
	if len(b.Sections) == 0 {
		return Errorf(EINVALID, "brief requires at least one section")
	}
	return nil
}

// Summarizer turns per-interest source material into a short, spoken-style
// narrative. It is an external collaborator; the pipeline has no opinion on
// prompt structure.
type Summarizer interface {
	Summarize(ctx context.Context, brief *Brief) (string, error)
}

// SpeechSynthesizer converts a narrative to audio. External collaborator.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) (audio []byte, mimeType string, err error)
}

// Messenger delivers a brief over the messaging channel. External
// collaborator.
type Messenger interface {
	SendText(ctx context.Context, recipient, text string) error
	SendAudio(ctx context.Context, recipient string, audio []byte, mimeType string) error
}

// BriefWriter persists generated briefs (e.g., transcripts on disk).
type BriefWriter interface {
	WriteBrief(ctx context.Context, brief *Brief) error
}
