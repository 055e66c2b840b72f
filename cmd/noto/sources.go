package main

import (
	"fmt"
	"sort"

	"github.com/noto-news/noto/sources"
)

// Run executes the sources command. Listing needs the concrete registry;
// the noto.SourceRegistry interface only answers per-URL questions.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	reg, ok := deps.Registry.(*sources.Registry)
	if !ok {
		reg = sources.NewRegistry()
	}

	domains := reg.FrenchSources(c.Category)
	if len(domains) == 0 {
		if c.Category != "" {
			fmt.Fprintf(deps.Stderr, "no sources in category %q\n", c.Category)
		} else {
			fmt.Fprintln(deps.Stderr, "no sources known")
		}
		return nil
	}
	sort.Strings(domains)

	for _, domain := range domains {
		p := reg.Profile("https://" + domain)
		fmt.Fprintf(deps.Stdout, "%-24s %-10s priority=%d success=%.2f strategy=%s\n",
			p.Domain, p.Category, p.Priority, p.SuccessRate, p.PreferredStrategy)
	}
	return nil
}
