package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/noto-news/noto"
)

// maxSitemapDepth bounds sitemapindex recursion.
const maxSitemapDepth = 3

// Ensure SitemapDiscoverer implements noto.ArticleDiscoverer.
var _ noto.ArticleDiscoverer = (*SitemapDiscoverer)(nil)

// SitemapDiscoverer finds recent article URLs from a news site's sitemap.
// It prefers Google News sitemaps (which carry titles and publication
// dates) and falls back to plain urlsets.
type SitemapDiscoverer struct {
	client *http.Client
}

// NewSitemapDiscoverer creates a SitemapDiscoverer with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapDiscoverer(client *http.Client) *SitemapDiscoverer {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapDiscoverer{client: client}
}

// DiscoverArticles returns up to limit recent articles for a domain,
// newest first when publication dates are present. A domain without a
// discoverable sitemap yields an empty slice.
func (s *SitemapDiscoverer) DiscoverArticles(ctx context.Context, domain string, limit int) ([]noto.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if domain == "" {
		return nil, noto.Errorf(noto.EINVALID, "domain required")
	}
	if limit <= 0 {
		return []noto.SearchResult{}, nil
	}

	// Accept a bare domain or a full base URL.
	base := &url.URL{Scheme: "https", Host: domain}
	if strings.Contains(domain, "://") {
		parsed, err := url.Parse(domain)
		if err != nil {
			return nil, noto.Errorf(noto.EINVALID, "invalid domain %q", domain)
		}
		base = parsed
	}

	sitemapURLs, err := s.findSitemapURLs(ctx, base)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []noto.SearchResult{}, nil
	}

	var articles []noto.SearchResult
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		found, err := s.processSitemap(ctx, sitemapURL, seenSitemaps, 0)
		if err != nil {
			return nil, err
		}
		for _, a := range found {
			if !seenURLs[a.URL] {
				seenURLs[a.URL] = true
				articles = append(articles, a)
			}
		}
	}

	// Dated articles first, newest first; ISO dates sort lexically.
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedDate > articles[j].PublishedDate
	})

	if len(articles) > limit {
		articles = articles[:limit]
	}
	if articles == nil {
		articles = []noto.SearchResult{}
	}
	return articles, nil
}

// findSitemapURLs discovers sitemap URLs from robots.txt, preferring
// news sitemaps, falling back to /sitemap.xml.
func (s *SitemapDiscoverer) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		// News sitemaps carry titles and dates, use them alone when present.
		var news []string
		for _, sm := range sitemaps {
			if strings.Contains(strings.ToLower(sm), "news") {
				news = append(news, sm)
			}
		}
		if len(news) > 0 {
			return news, nil
		}
		return sitemaps, nil
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	exists, err := s.urlExists(ctx, sitemapURL.String())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if exists {
		return []string{sitemapURL.String()}, nil
	}

	return nil, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapDiscoverer) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			sitemapURL := strings.TrimSpace(line[8:]) // len("sitemap:") == 8
			if sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

// processSitemap fetches and parses a sitemap, handling both urlset and
// sitemapindex documents.
func (s *SitemapDiscoverer) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) ([]noto.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth > maxSitemapDepth || seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		// One broken sitemap should not sink the whole discovery.
		return nil, nil
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, nil
	}

	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	if root.Tag == "sitemapindex" {
		return s.processSitemapIndex(ctx, root, seen, depth)
	}
	return parseURLSet(root), nil
}

// processSitemapIndex processes a <sitemapindex> element recursively.
func (s *SitemapDiscoverer) processSitemapIndex(ctx context.Context, root *etree.Element, seen map[string]bool, depth int) ([]noto.SearchResult, error) {
	var all []noto.SearchResult

	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		sitemapURL := strings.TrimSpace(loc.Text())
		if sitemapURL == "" {
			continue
		}

		found, err := s.processSitemap(ctx, sitemapURL, seen, depth+1)
		if err != nil {
			return nil, err
		}
		all = append(all, found...)
	}

	return all, nil
}

// parseURLSet extracts articles from a <urlset> element, reading Google
// News annotations (news:title, news:publication_date) when present.
func parseURLSet(root *etree.Element) []noto.SearchResult {
	var articles []noto.SearchResult
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u == "" {
			continue
		}

		article := noto.SearchResult{URL: u}
		if news := urlEl.SelectElement("news"); news != nil {
			if title := news.SelectElement("title"); title != nil {
				article.Title = strings.TrimSpace(title.Text())
			}
			if date := news.SelectElement("publication_date"); date != nil {
				article.PublishedDate = strings.TrimSpace(date.Text())
			}
		}
		if article.PublishedDate == "" {
			if lastmod := urlEl.SelectElement("lastmod"); lastmod != nil {
				article.PublishedDate = strings.TrimSpace(lastmod.Text())
			}
		}
		articles = append(articles, article)
	}
	return articles
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapDiscoverer) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

// urlExists checks if a URL returns 200 OK.
func (s *SitemapDiscoverer) urlExists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
