package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bee"
)

// Ensure LoggingLoader implements bee.SourceLoader.
var _ bee.SourceLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a SourceLoader with debug logging.
type LoggingLoader struct {
	next   bee.SourceLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next bee.SourceLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// LoadSource delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) LoadSource(ctx context.Context, path string) (v bee.Value, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("load source",
			"path", path,
			"keys", len(bee.KeysOf(v)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadSource(ctx, path)
}
