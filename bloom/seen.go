// Package bloom tracks already-delivered article URLs so repeat
// scheduled runs do not re-deliver the same story.
package bloom

import (
	"os"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Sizing defaults: a household of users receiving a few dozen articles a
// day stays far under this for months.
const (
	DefaultExpectedArticles = 100000
	DefaultFalsePositive    = 0.01
)

// SeenFilter remembers delivered article URLs. A false positive silently
// drops a fresh article from one run, which is acceptable; a false
// negative (re-delivering) cannot happen for URLs actually added.
// SeenFilter is safe for concurrent use.
type SeenFilter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewSeenFilter creates a SeenFilter with default sizing.
func NewSeenFilter() *SeenFilter {
	return NewSeenFilterWithEstimates(DefaultExpectedArticles, DefaultFalsePositive)
}

// NewSeenFilterWithEstimates creates a SeenFilter sized for n expected
// URLs at the given false positive rate.
func NewSeenFilterWithEstimates(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a delivered article URL.
func (s *SeenFilter) Add(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.AddString(url)
}

// Seen returns true if the URL was probably delivered before.
// False positives are possible; false negatives are not.
func (s *SeenFilter) Seen(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TestString(url)
}

// EstimatedCount returns the approximate number of delivered URLs.
func (s *SeenFilter) EstimatedCount() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint(s.f.ApproximatedSize())
}

// Save writes the filter state to path with atomic rename semantics.
func (s *SeenFilter) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tempPath := path + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return err
	}
	if _, err := s.f.WriteTo(file); err != nil {
		file.Close()
		os.Remove(tempPath)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}

// Load reads a SeenFilter previously written by Save. A missing or
// unreadable file yields a fresh filter, not an error: losing seen
// state only risks re-delivery, never data loss.
func Load(path string) *SeenFilter {
	file, err := os.Open(path)
	if err != nil {
		return NewSeenFilter()
	}
	defer file.Close()

	var f bloom.BloomFilter
	if _, err := f.ReadFrom(file); err != nil {
		return NewSeenFilter()
	}
	return &SeenFilter{f: &f}
}
