// Package slog provides logging decorators for the navigation services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"sitenav"
)

// Ensure LoggingScanner implements sitenav.Scanner.
var _ sitenav.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner with debug logging.
type LoggingScanner struct {
	next   sitenav.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next sitenav.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the operation.
func (s *LoggingScanner) Scan(ctx context.Context, dir string, prefix string) (items []*sitenav.Item, err error) {
	defer func(begin time.Time) {
		s.logger.Info("content scan",
			"dir", dir,
			"prefix", prefix,
			"items", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scan(ctx, dir, prefix)
}
