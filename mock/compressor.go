package mock

import "github.com/noto-news/noto"

var _ noto.Compressor = (*Compressor)(nil)

// Compressor is a mock implementation of noto.Compressor.
type Compressor struct {
	ExtractKeyFactsFn func(content, interestCategory string, maxChars int) string
}

func (c *Compressor) ExtractKeyFacts(content, interestCategory string, maxChars int) string {
	return c.ExtractKeyFactsFn(content, interestCategory, maxChars)
}
