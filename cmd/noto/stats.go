package main

import (
	"fmt"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	if c.Domain != "" {
		stats, err := deps.Stats.DomainStats(deps.Ctx, c.Domain)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s: %d/%d extractions succeeded (%.0f%%), avg %d chars\n",
			stats.Domain, stats.Successes, stats.Attempts, stats.SuccessRate*100, stats.AvgChars)
		return nil
	}

	domains, err := deps.Stats.TopDomains(deps.Ctx, c.Limit)
	if err != nil {
		return err
	}
	if len(domains) == 0 {
		fmt.Fprintln(deps.Stderr, "no extraction statistics recorded yet")
		return nil
	}

	for _, d := range domains {
		fmt.Fprintf(deps.Stdout, "%-24s %3d/%-3d %5.0f%%  avg %d chars\n",
			d.Domain, d.Successes, d.Attempts, d.SuccessRate*100, d.AvgChars)
	}
	return nil
}
