package mock

import (
	"context"

	"github.com/noto-news/noto"
)

var _ noto.ArticleDiscoverer = (*ArticleDiscoverer)(nil)

// ArticleDiscoverer is a mock implementation of noto.ArticleDiscoverer.
type ArticleDiscoverer struct {
	DiscoverArticlesFn func(ctx context.Context, domain string, limit int) ([]noto.SearchResult, error)
}

func (d *ArticleDiscoverer) DiscoverArticles(ctx context.Context, domain string, limit int) ([]noto.SearchResult, error) {
	return d.DiscoverArticlesFn(ctx, domain, limit)
}
