package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bee"
)

// Ensure LoggingSearcher implements bee.Searcher.
var _ bee.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   bee.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next bee.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (m *bee.Mapping, err error) {
	defer func(begin time.Time) {
		keys := 0
		if m != nil {
			keys = m.Len()
		}
		s.logger.Debug("search",
			"query", query,
			"keys", keys,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
