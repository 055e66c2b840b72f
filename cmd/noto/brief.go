package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/noto-news/noto"
	"github.com/noto-news/noto/compress"
	"github.com/noto-news/noto/filter"
	"github.com/noto-news/noto/pipeline"
)

// Run executes the brief command: extract the search results once, then
// select the best sentences for each interest into its own section.
func (c *BriefCmd) Run(deps *Dependencies) error {
	data, err := readInput(c.Results)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	var results []noto.SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return noto.Errorf(noto.EINVALID, "invalid search results JSON: %s", err)
	}
	if len(results) == 0 {
		return noto.Errorf(noto.EINVALID, "no search results in input")
	}

	brief := &noto.Brief{
		ID:        uuid.New().String(),
		UserName:  c.User,
		CreatedAt: time.Now().UTC(),
	}

	// One deduper spans all sections so a story matching two interests
	// is told once.
	deduper := filter.NewDeduper()
	var delivered []string

	for _, interest := range c.Interests {
		fmt.Fprintf(deps.Stderr, "extracting for %q...\n", interest)

		result, err := deps.Pipeline.Run(deps.Ctx, results, interest, func(event pipeline.ProgressEvent) {
			if event.Err != nil {
				fmt.Fprintf(deps.Stderr, "  [%d/%d] %s: %s\n", event.Completed, event.Total, event.URL, event.Err)
				return
			}
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s\n", event.Completed, event.Total, event.URL)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "  %d articles, %d skipped, %d failed\n",
			len(result.Articles), result.Skipped, result.Failed)

		var sentences []string
		for _, article := range result.Articles {
			sentences = append(sentences, compress.SplitSentences(article.Content)...)
		}

		var selected []string
		for _, s := range deps.Filter.TopContent(deps.Ctx, sentences, interest, c.Sentences, c.Threshold) {
			if deduper.Add(s) {
				selected = append(selected, s)
			}
		}
		if len(selected) == 0 {
			fmt.Fprintf(deps.Stderr, "  nothing scored above %.2f for %q, section skipped\n", c.Threshold, interest)
			continue
		}

		for _, article := range result.Articles {
			delivered = append(delivered, article.Source.URL)
		}
		brief.Sections = append(brief.Sections, noto.BriefSection{
			Interest:  interest,
			Sentences: selected,
		})
	}

	if len(brief.Sections) == 0 {
		return noto.Errorf(noto.ENOTFOUND, "no usable content for any interest")
	}

	if c.Summarize {
		if deps.Summarizer == nil {
			fmt.Fprintln(deps.Stderr, "Hint: Set GEMINI_API_KEY to enable --summarize")
			return noto.Errorf(noto.EUNAVAILABLE, "summarizer not configured")
		}
		narrative, err := deps.Summarizer.Summarize(deps.Ctx, brief)
		if err != nil {
			return err
		}
		brief.Narrative = narrative
	}

	if err := deps.Writer.WriteBrief(deps.Ctx, brief); err != nil {
		return err
	}
	deps.Pipeline.MarkDelivered(delivered)

	path := filepath.Join(c.OutDir, brief.CreatedAt.Format("2006-01-02"), brief.ID+".md")
	fmt.Fprintf(deps.Stdout, "brief %s written to %s\n", brief.ID, path)
	return nil
}
