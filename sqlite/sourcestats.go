package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/noto-news/noto"
)

// Compile-time interface verification.
var _ noto.SourceStatsService = (*SourceStatsService)(nil)

// SourceStatsService implements noto.SourceStatsService using SQLite.
type SourceStatsService struct {
	db *DB
}

// NewSourceStatsService creates a new SourceStatsService.
func NewSourceStatsService(db *DB) *SourceStatsService {
	return &SourceStatsService{db: db}
}

// RecordExtraction stores the outcome of one extraction attempt.
func (s *SourceStatsService) RecordExtraction(ctx context.Context, stat noto.ExtractionStat) error {
	if stat.Domain == "" {
		return noto.Errorf(noto.EINVALID, "domain required")
	}

	success := 0
	if stat.Success {
		success = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extraction_stats (domain, success, chars, recorded_at)
		VALUES (?, ?, ?, ?)
	`, stat.Domain, success, stat.Chars, time.Now().UTC().Format(time.RFC3339))

	return err
}

// DomainStats returns aggregated stats for a domain.
func (s *SourceStatsService) DomainStats(ctx context.Context, domain string) (*noto.DomainStats, error) {
	var stats noto.DomainStats
	var avgChars sql.NullFloat64

	err := s.db.QueryRowContext(ctx, `
		SELECT domain, COUNT(*), SUM(success), AVG(CASE WHEN success = 1 THEN chars END)
		FROM extraction_stats
		WHERE domain = ?
		GROUP BY domain
	`, domain).Scan(&stats.Domain, &stats.Attempts, &stats.Successes, &avgChars)

	if err == sql.ErrNoRows {
		return nil, noto.Errorf(noto.ENOTFOUND, "no extraction stats for domain %q", domain)
	}
	if err != nil {
		return nil, err
	}

	if stats.Attempts > 0 {
		stats.SuccessRate = float64(stats.Successes) / float64(stats.Attempts)
	}
	if avgChars.Valid {
		stats.AvgChars = int(avgChars.Float64)
	}

	return &stats, nil
}

// TopDomains returns up to limit domains ordered by success rate, then by
// attempt count for stability.
func (s *SourceStatsService) TopDomains(ctx context.Context, limit int) ([]*noto.DomainStats, error) {
	if limit <= 0 {
		return []*noto.DomainStats{}, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT domain, COUNT(*) AS attempts, SUM(success) AS successes,
		       AVG(CASE WHEN success = 1 THEN chars END) AS avg_chars
		FROM extraction_stats
		GROUP BY domain
		ORDER BY CAST(SUM(success) AS REAL) / COUNT(*) DESC, COUNT(*) DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []*noto.DomainStats
	for rows.Next() {
		var stats noto.DomainStats
		var avgChars sql.NullFloat64

		if err := rows.Scan(&stats.Domain, &stats.Attempts, &stats.Successes, &avgChars); err != nil {
			return nil, err
		}
		if stats.Attempts > 0 {
			stats.SuccessRate = float64(stats.Successes) / float64(stats.Attempts)
		}
		if avgChars.Valid {
			stats.AvgChars = int(avgChars.Float64)
		}
		all = append(all, &stats)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if all == nil {
		all = []*noto.DomainStats{}
	}
	return all, nil
}
