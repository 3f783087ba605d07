package mock

import (
	"context"

	"github.com/fwojciec/bee"
)

var _ bee.SourceLoader = (*SourceLoader)(nil)

// SourceLoader is a mock implementation of bee.SourceLoader.
type SourceLoader struct {
	LoadSourceFn func(ctx context.Context, path string) (bee.Value, error)
}

func (l *SourceLoader) LoadSource(ctx context.Context, path string) (bee.Value, error) {
	return l.LoadSourceFn(ctx, path)
}
