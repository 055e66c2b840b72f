package mock

import "github.com/noto-news/noto"

var _ noto.EntityRecognizer = (*EntityRecognizer)(nil)

// EntityRecognizer is a mock implementation of noto.EntityRecognizer.
type EntityRecognizer struct {
	RecognizeFn func(text string) []noto.Entity
}

func (r *EntityRecognizer) Recognize(text string) []noto.Entity {
	return r.RecognizeFn(text)
}
