package mock

import (
	"context"

	"github.com/noto-news/noto"
)

var _ noto.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of noto.Extractor.
type Extractor struct {
	ExtractWithFallbackFn func(ctx context.Context, url, title, preferred string) (*noto.ExtractionResult, error)
}

func (e *Extractor) ExtractWithFallback(ctx context.Context, url, title, preferred string) (*noto.ExtractionResult, error) {
	return e.ExtractWithFallbackFn(ctx, url, title, preferred)
}
