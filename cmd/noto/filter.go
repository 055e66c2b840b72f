package main

import (
	"fmt"
	"strings"

	"github.com/noto-news/noto"
)

// Run executes the filter command.
func (c *FilterCmd) Run(deps *Dependencies) error {
	content, err := readInput(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	var sentences []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sentences = append(sentences, line)
		}
	}
	if len(sentences) == 0 {
		return noto.Errorf(noto.EINVALID, "no sentences in input")
	}

	kept := deps.Filter.FilterSentences(deps.Ctx, sentences, c.Interest, c.Threshold)
	if len(kept) > c.Max {
		kept = kept[:c.Max]
	}

	if len(kept) == 0 {
		fmt.Fprintf(deps.Stderr, "no sentences scored above %.2f for %q\n", c.Threshold, c.Interest)
		return nil
	}

	for _, s := range kept {
		if c.Explain {
			fmt.Fprintf(deps.Stdout, "%.2f (r=%.2f l=%.2f q=%.2f f=%.2f) %s\n",
				s.Score.Final, s.Score.Relevance, s.Score.Locale, s.Score.Quality, s.Score.Factual,
				s.Sentence)
			for _, reason := range s.Score.Reasons {
				fmt.Fprintf(deps.Stdout, "       %s\n", reason)
			}
		} else {
			fmt.Fprintf(deps.Stdout, "%.2f %s\n", s.Score.Final, s.Sentence)
		}
	}
	return nil
}
