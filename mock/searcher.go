package mock

import (
	"context"

	"github.com/fwojciec/bee"
)

var _ bee.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of bee.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) (*bee.Mapping, error)
}

func (s *Searcher) Search(ctx context.Context, query string) (*bee.Mapping, error) {
	return s.SearchFn(ctx, query)
}
