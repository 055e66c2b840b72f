// Package pipeline orchestrates concurrent article extraction: ranking
// search results, skipping blocked and already-delivered sources,
// rate-limited extraction with fallback, and compression of each article
// to its character budget.
package pipeline

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/noto-news/noto"
	"github.com/noto-news/noto/sources"
)

// DefaultConcurrency bounds simultaneous extractions.
const DefaultConcurrency = 5

// DefaultArticleBudget is the per-article compression budget in chars.
const DefaultArticleBudget = 1200

// SeenFilter tracks already-delivered article URLs.
// *bloom.SeenFilter satisfies this.
type SeenFilter interface {
	Seen(url string) bool
	Add(url string)
}

// Article is one extracted and compressed article ready for sentence
// filtering.
type Article struct {
	Source  noto.SearchResult
	Content string
	Method  string
	Quality float64
}

// Result holds the outcome of one pipeline run.
type Result struct {
	Articles []Article
	Skipped  int
	Failed   int
}

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Completed int
	Total     int
	URL       string
	Err       error
}

// ProgressFunc is a callback for reporting extraction progress.
type ProgressFunc func(event ProgressEvent)

// Pipeline wires the extraction collaborators together.
type Pipeline struct {
	Registry    noto.SourceRegistry
	Extractor   noto.Extractor
	Compressor  noto.Compressor
	Stats       noto.SourceStatsService
	Seen        SeenFilter
	Limiter     *DomainLimiter
	Concurrency int
	Budget      int
	RetryDelays []time.Duration
}

// articleResult holds the outcome of processing a single search result.
type articleResult struct {
	position int
	article  *Article
	skipped  bool
	err      error
}

// Run extracts the ranked search results concurrently and returns the
// compressed articles in rank order. Per-article failures are counted,
// never fatal; only context cancellation aborts the run.
func (p *Pipeline) Run(ctx context.Context, results []noto.SearchResult, interestCategory string, progress ProgressFunc) (*Result, error) {
	ranked := p.Registry.Rank(results)

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	budget := p.Budget
	if budget <= 0 {
		budget = DefaultArticleBudget
	}

	resultCh := make(chan articleResult, len(ranked))
	var completed atomic.Int64
	total := len(ranked)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, sr := range ranked {
			i, sr := i, sr
			g.Go(func() error {
				resultCh <- p.process(gctx, i, sr, interestCategory, budget)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	ordered := make([]articleResult, total)
	for r := range resultCh {
		completed.Add(1)
		ordered[r.position] = r
		if progress != nil {
			progress(ProgressEvent{
				Completed: int(completed.Load()),
				Total:     total,
				URL:       ranked[r.position].URL,
				Err:       r.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &Result{}
	for _, r := range ordered {
		switch {
		case r.skipped:
			out.Skipped++
		case r.err != nil || r.article == nil:
			out.Failed++
		default:
			out.Articles = append(out.Articles, *r.article)
		}
	}
	return out, nil
}

// process handles one search result end to end.
func (p *Pipeline) process(ctx context.Context, position int, sr noto.SearchResult, interestCategory string, budget int) articleResult {
	res := articleResult{position: position}

	if sr.URL == "" {
		// Nothing to extract; the record passes through on its snippet.
		if article := p.snippetArticle(sr, interestCategory, budget); article != nil {
			res.article = article
			return res
		}
		res.skipped = true
		return res
	}
	if p.Registry.ShouldSkip(sr.URL) {
		res.skipped = true
		return res
	}
	if p.Seen != nil && p.Seen.Seen(sr.URL) {
		res.skipped = true
		return res
	}

	domain := sources.Domain(sr.URL)
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, domain); err != nil {
			res.err = err
			return res
		}
	}

	preferred := p.Registry.PreferredStrategy(sr.URL)

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	extraction, err := ExtractWithRetryDelays(ctx, func(ctx context.Context) (*noto.ExtractionResult, error) {
		return p.Extractor.ExtractWithFallback(ctx, sr.URL, sr.Title, preferred)
	}, delays)

	success := err == nil && extraction != nil
	if p.Stats != nil {
		stat := noto.ExtractionStat{Domain: domain, Success: success}
		if success {
			stat.Chars = extraction.Length
		}
		_ = p.Stats.RecordExtraction(ctx, stat)
	}

	if !success {
		// Extraction exhausted or errored; fall back to the search
		// snippet rather than dropping the source.
		if article := p.snippetArticle(sr, interestCategory, budget); article != nil {
			res.article = article
			return res
		}
		res.err = err
		return res
	}

	content := extraction.Content
	if p.Compressor != nil {
		content = p.Compressor.ExtractKeyFacts(content, interestCategory, budget)
	}

	res.article = &Article{
		Source:  sr,
		Content: content,
		Method:  extraction.Method,
		Quality: extraction.QualityScore,
	}
	return res
}

// snippetArticle builds a passthrough article from a search snippet.
// Returns nil when there is no snippet to carry.
func (p *Pipeline) snippetArticle(sr noto.SearchResult, interestCategory string, budget int) *Article {
	snippet := strings.TrimSpace(sr.Snippet)
	if snippet == "" {
		return nil
	}
	if p.Compressor != nil {
		snippet = p.Compressor.ExtractKeyFacts(snippet, interestCategory, budget)
	}
	return &Article{Source: sr, Content: snippet, Method: "snippet"}
}

// MarkDelivered records URLs in the seen filter so later runs skip them.
// Callers mark on delivery, not on extraction, so one delivery spanning
// several interests sees every URL.
func (p *Pipeline) MarkDelivered(urls []string) {
	if p.Seen == nil {
		return
	}
	for _, url := range urls {
		if url != "" {
			p.Seen.Add(url)
		}
	}
}
