package main

import (
	"fmt"

	"github.com/noto-news/noto"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	if c.Domain == "" {
		return noto.Errorf(noto.EINVALID, "domain required")
	}

	results, err := deps.Discoverer.DiscoverArticles(deps.Ctx, c.Domain, c.Limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(deps.Stderr, "no articles discovered for %s\n", c.Domain)
		return nil
	}

	for _, r := range results {
		date := r.PublishedDate
		if date == "" {
			date = "unknown"
		}
		if r.Title != "" {
			fmt.Fprintf(deps.Stdout, "%s  %s\n    %s\n", date, r.Title, r.URL)
		} else {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", date, r.URL)
		}
	}
	return nil
}
