package mock

import (
	"context"

	"github.com/noto-news/noto"
)

var _ noto.ExtractStrategy = (*ExtractStrategy)(nil)

// ExtractStrategy is a mock implementation of noto.ExtractStrategy.
type ExtractStrategy struct {
	NameFn    func() string
	ExtractFn func(ctx context.Context, url, title string) (*noto.ExtractionResult, error)
}

func (s *ExtractStrategy) Name() string {
	return s.NameFn()
}

func (s *ExtractStrategy) Extract(ctx context.Context, url, title string) (*noto.ExtractionResult, error) {
	return s.ExtractFn(ctx, url, title)
}
