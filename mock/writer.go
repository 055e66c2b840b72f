package mock

import (
	"context"

	"github.com/noto-news/noto"
)

var _ noto.BriefWriter = (*BriefWriter)(nil)

// BriefWriter is a mock implementation of noto.BriefWriter.
type BriefWriter struct {
	WriteBriefFn func(ctx context.Context, brief *noto.Brief) error
}

func (w *BriefWriter) WriteBrief(ctx context.Context, brief *noto.Brief) error {
	return w.WriteBriefFn(ctx, brief)
}
