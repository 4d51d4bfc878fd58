// Package sidebar assembles the sectioned sidebar navigation for the site.
// It coordinates content scanning, categorization and fallback degradation
// so that callers always receive a servable menu.
package sidebar

import (
	"context"
	"log/slog"

	"sitenav"
)

// Builder assembles the sidebar navigation from a content tree.
type Builder struct {
	// Scanner lists the content tree. A nil scanner degrades every build
	// to the fallback navigation.
	Scanner sitenav.Scanner

	// Root is the content directory handed to the scanner.
	Root string

	// Fallback replaces the compiled-in navigation served when a build
	// degrades. Nil keeps the default.
	Fallback []sitenav.Section

	// Logger records degradations. Nil means slog.Default().
	Logger *slog.Logger
}

var _ sitenav.Builder = (*Builder)(nil)

// Build scans the content root and returns the categorized navigation. It
// never fails: a missing scanner, a scan error or a panic during the build
// all degrade to the fallback navigation. An empty content tree is not a
// degradation and yields an empty navigation.
func (b *Builder) Build(ctx context.Context) (sections []sitenav.Section) {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("navigation build panicked", "root", b.Root, "panic", r)
			sections = b.fallback()
		}
	}()

	if b.Scanner == nil {
		logger.Warn("navigation build degraded", "reason", "no scanner configured")
		return b.fallback()
	}

	items, err := b.Scanner.Scan(ctx, b.Root, "")
	if err != nil {
		logger.Error("navigation build degraded", "root", b.Root, "err", err)
		return b.fallback()
	}

	return sitenav.Categorize(items)
}

// fallback returns a fresh copy of the configured fallback navigation so
// callers may mutate the result without poisoning later builds.
func (b *Builder) fallback() []sitenav.Section {
	if b.Fallback != nil {
		return sitenav.CloneSections(b.Fallback)
	}
	return sitenav.DefaultFallback()
}
