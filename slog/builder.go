package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"sitenav"
)

// Ensure LoggingBuilder implements sitenav.Builder.
var _ sitenav.Builder = (*LoggingBuilder)(nil)

// LoggingBuilder wraps a Builder with build-level logging. Each build gets
// a unique id so the scan entries emitted underneath it can be correlated.
type LoggingBuilder struct {
	next   sitenav.Builder
	logger *slog.Logger
}

// NewLoggingBuilder creates a new LoggingBuilder.
func NewLoggingBuilder(next sitenav.Builder, logger *slog.Logger) *LoggingBuilder {
	return &LoggingBuilder{next: next, logger: logger}
}

// Build delegates to the wrapped builder and logs the outcome.
func (b *LoggingBuilder) Build(ctx context.Context) (sections []sitenav.Section) {
	defer func(begin time.Time, buildID string) {
		b.logger.Info("navigation build",
			"build_id", buildID,
			"sections", len(sections),
			"pages", len(sitenav.Flatten(sections)),
			"duration", time.Since(begin),
		)
	}(time.Now(), uuid.NewString())
	return b.next.Build(ctx)
}
