// Package fs persists generated briefs as transcript files on disk.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/noto-news/noto"
)

// Ensure BriefWriter implements noto.BriefWriter at compile time.
var _ noto.BriefWriter = (*BriefWriter)(nil)

// BriefWriter writes one transcript file per brief with atomic rename
// semantics: content is written to a temp file, then moved into place.
type BriefWriter struct {
	baseDir string
}

// NewBriefWriter creates a BriefWriter rooted at baseDir. The directory
// is created on first write.
func NewBriefWriter(baseDir string) *BriefWriter {
	return &BriefWriter{baseDir: baseDir}
}

// WriteBrief writes the brief transcript to
// baseDir/<date>/<brief-id>.md.
func (w *BriefWriter) WriteBrief(ctx context.Context, brief *noto.Brief) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if brief == nil {
		return noto.Errorf(noto.EINVALID, "brief required")
	}
	if err := brief.Validate(); err != nil {
		return err
	}

	dir := filepath.Join(w.baseDir, brief.CreatedAt.Format("2006-01-02"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	finalPath := filepath.Join(dir, brief.ID+".md")
	tempPath := finalPath + ".tmp"

	content := FormatBrief(brief)
	if err := os.WriteFile(tempPath, []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return err
	}

	return nil
}

// FormatBrief formats a brief transcript with YAML frontmatter.
func FormatBrief(brief *noto.Brief) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("id: ")
	b.WriteString(brief.ID)
	b.WriteString("\nuser: ")
	b.WriteString(brief.UserName)
	b.WriteString("\ncreated: ")
	b.WriteString(brief.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
	b.WriteString("\n---\n")

	for _, section := range brief.Sections {
		b.WriteString("\n## ")
		b.WriteString(section.Interest)
		b.WriteString("\n\n")
		for _, sentence := range section.Sentences {
			b.WriteString("- ")
			b.WriteString(sentence)
			b.WriteString("\n")
		}
	}

	if brief.Narrative != "" {
		b.WriteString("\n## transcript\n\n")
		b.WriteString(brief.Narrative)
		b.WriteString("\n")
	}

	return b.String()
}
