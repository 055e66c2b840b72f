package main

import (
	"fmt"

	"github.com/noto-news/noto"
	notohttp "github.com/noto-news/noto/http"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.Markdown {
		return c.runMarkdownPreview(deps)
	}

	if deps.Registry.ShouldSkip(c.URL) {
		profile := deps.Registry.Profile(c.URL)
		fmt.Fprintf(deps.Stderr, "error: source is blocked: %s\n", profile.Reason)
		return noto.Errorf(noto.EINVALID, "source %q is blocked", profile.Domain)
	}

	preferred := c.Preferred
	if preferred == "" {
		preferred = deps.Registry.PreferredStrategy(c.URL)
	}

	result, err := deps.Extractor.ExtractWithFallback(deps.Ctx, c.URL, c.Title, preferred)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", noto.ErrorMessage(err))
		return err
	}
	if result == nil {
		fmt.Fprintln(deps.Stderr, "error: no strategy produced acceptable content")
		return noto.Errorf(noto.ENOTFOUND, "extraction failed for %q", c.URL)
	}

	fmt.Fprintf(deps.Stdout, "method:  %s\n", result.Method)
	fmt.Fprintf(deps.Stdout, "quality: %.2f\n", result.QualityScore)
	fmt.Fprintf(deps.Stdout, "chars:   %d\n", result.Length)
	fmt.Fprintf(deps.Stdout, "\n%s\n", result.Content)
	return nil
}

// runMarkdownPreview fetches the page and prints it as Markdown instead
// of running the extraction chain.
func (c *ExtractCmd) runMarkdownPreview(deps *Dependencies) error {
	fetcher := notohttp.NewFetcher()
	defer fetcher.Close()

	html, err := fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", noto.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", noto.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
