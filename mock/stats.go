package mock

import (
	"context"

	"github.com/noto-news/noto"
)

var _ noto.SourceStatsService = (*SourceStatsService)(nil)

// SourceStatsService is a mock implementation of noto.SourceStatsService.
type SourceStatsService struct {
	RecordExtractionFn func(ctx context.Context, stat noto.ExtractionStat) error
	DomainStatsFn      func(ctx context.Context, domain string) (*noto.DomainStats, error)
	TopDomainsFn       func(ctx context.Context, limit int) ([]*noto.DomainStats, error)
}

func (s *SourceStatsService) RecordExtraction(ctx context.Context, stat noto.ExtractionStat) error {
	return s.RecordExtractionFn(ctx, stat)
}

func (s *SourceStatsService) DomainStats(ctx context.Context, domain string) (*noto.DomainStats, error) {
	return s.DomainStatsFn(ctx, domain)
}

func (s *SourceStatsService) TopDomains(ctx context.Context, limit int) ([]*noto.DomainStats, error) {
	return s.TopDomainsFn(ctx, limit)
}
