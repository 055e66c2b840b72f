package main

import (
	"fmt"

	"github.com/noto-news/noto"
)

// Run executes the health command.
func (c *HealthCmd) Run(deps *Dependencies) error {
	health := deps.Filter.HealthCheck(deps.Ctx)

	status := "ok"
	if !health.Healthy {
		status = "degraded"
	}
	embedder := "unavailable (keyword heuristics only)"
	if health.EmbedderAvailable {
		embedder = "available"
	}

	fmt.Fprintf(deps.Stdout, "filter:    %s\n", status)
	fmt.Fprintf(deps.Stdout, "embedder:  %s\n", embedder)
	fmt.Fprintf(deps.Stdout, "testScore: %.2f\n", health.TestScore)
	fmt.Fprintf(deps.Stdout, "cached:    %d interest embeddings\n", health.CachedInterests)

	if !health.Healthy {
		return noto.Errorf(noto.EINTERNAL, "sentence filter failed its health check")
	}
	return nil
}
