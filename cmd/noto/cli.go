package main

import (
	"context"
	"io"

	"github.com/noto-news/noto"
	"github.com/noto-news/noto/pipeline"
	"github.com/noto-news/noto/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Registry   noto.SourceRegistry
	Extractor  noto.Extractor
	Compressor noto.Compressor
	Filter     noto.SentenceFilter
	Stats      noto.SourceStatsService
	Discoverer noto.ArticleDiscoverer
	Converter  noto.Converter
	Writer     noto.BriefWriter
	Summarizer noto.Summarizer
	Pipeline   *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log collaborator activity to stderr"`

	Extract  ExtractCmd  `cmd:"" help:"Extract article text from a URL"`
	Compress CompressCmd `cmd:"" help:"Compress article text to a character budget"`
	Filter   FilterCmd   `cmd:"" help:"Score and select sentences for an interest"`
	Sources  SourcesCmd  `cmd:"" help:"List known source domains"`
	Discover DiscoverCmd `cmd:"" help:"Discover recent articles from a source's sitemap"`
	Brief    BriefCmd    `cmd:"" help:"Build a news brief from search results"`
	Stats    StatsCmd    `cmd:"" help:"Show per-domain extraction statistics"`
	Health   HealthCmd   `cmd:"" help:"Check sentence filter health"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL       string `arg:"" help:"Article URL"`
	Title     string `short:"t" help:"Known article title (improves quality scoring)"`
	Preferred string `short:"s" help:"Strategy to try first (trafilatura, readability, domdistiller, goquery)"`
	Markdown  bool   `short:"m" help:"Show the page as Markdown instead of extracting"`
	Browser   bool   `short:"b" help:"Fetch with a headless browser (JS rendering)"`
}

// CompressCmd is the "compress" subcommand.
type CompressCmd struct {
	File     string `arg:"" help:"Text file to compress, or - for stdin"`
	Category string `short:"c" help:"Interest category biasing sentence selection"`
	MaxChars int    `short:"n" default:"1200" help:"Character budget"`
}

// FilterCmd is the "filter" subcommand.
type FilterCmd struct {
	File      string  `arg:"" help:"File with one sentence per line, or - for stdin"`
	Interest  string  `arg:"" help:"User interest label"`
	Threshold float64 `default:"0.5" help:"Minimum final score"`
	Max       int     `default:"10" help:"Maximum sentences to keep"`
	Explain   bool    `short:"e" help:"Show per-axis scores and reasons"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct {
	Category string `short:"c" help:"Only sources matching this category"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	Domain string `arg:"" help:"Source domain (e.g. lci.fr)"`
	Limit  int    `default:"20" help:"Maximum articles to list"`
}

// BriefCmd is the "brief" subcommand.
type BriefCmd struct {
	Results     string   `arg:"" help:"JSON file of search results"`
	Interests   []string `short:"i" required:"" help:"Interest labels (repeatable)"`
	User        string   `short:"u" default:"" help:"Listener name"`
	OutDir      string   `short:"o" default:"briefs" help:"Transcript output directory"`
	Budget      int      `default:"1200" help:"Per-article compression budget"`
	Sentences   int      `default:"5" help:"Sentences per interest section"`
	Threshold   float64  `default:"0.5" help:"Minimum sentence score"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent extraction limit"`
	Summarize   bool     `help:"Generate a spoken narrative with Gemini"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Domain string `arg:"" optional:"" help:"Show one domain instead of the top list"`
	Limit  int    `default:"20" help:"Maximum domains to list"`
}

// HealthCmd is the "health" subcommand.
type HealthCmd struct{}
