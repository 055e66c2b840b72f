// Package gemini implements the summarizer and embedder interfaces using
// Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/noto-news/noto"
)

const model = "gemini-2.5-flash"

// Ensure Summarizer implements noto.Summarizer at compile time.
var _ noto.Summarizer = (*Summarizer)(nil)

// Summarizer implements noto.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize turns a brief's selected sentences into a short spoken-style
// narrative.
func (s *Summarizer) Summarize(ctx context.Context, brief *noto.Brief) (string, error) {
	if brief == nil {
		return "", noto.Errorf(noto.EINVALID, "brief required")
	}
	if err := brief.Validate(); err != nil {
		return "", err
	}

	prompt := BuildUserPrompt(brief)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", noto.Errorf(noto.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "Tu es un assistant d'actualités. Rédige un bref journal parlé en français, naturel à l'oral, à partir des extraits fournis. Utilise uniquement les faits présents dans les extraits. N'invente aucun chiffre ni aucune citation.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the per-interest
// source material.
func BuildUserPrompt(brief *noto.Brief) string {
	var sb strings.Builder
	sb.WriteString("<sections>\n")
	for i, section := range brief.Sections {
		sb.WriteString("<section>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<interest>%s</interest>\n", section.Interest)
		sb.WriteString("<facts>\n")
		for _, sentence := range section.Sentences {
			fmt.Fprintf(&sb, "- %s\n", sentence)
		}
		sb.WriteString("</facts>\n")
		sb.WriteString("</section>\n")
	}
	sb.WriteString("</sections>\n\n")
	fmt.Fprintf(&sb, "Prénom de l'auditeur : %s", brief.UserName)
	return sb.String()
}
