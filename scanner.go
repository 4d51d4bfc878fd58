package sitenav

import "context"

// Scanner walks a content directory and produces navigation items.
// The filesystem implementation lives in the fs subpackage.
type Scanner interface {
	// Scan returns the items for the immediate children of dir,
	// recursively populated and already in display order. prefix is
	// the route accumulated so far; the empty prefix denotes the
	// content root, whose children map to "/<name>".
	//
	// A failure to list dir itself is returned as an error so callers
	// can degrade to a fallback. Failures below dir never propagate:
	// each broken subtree is logged and yields no items.
	Scan(ctx context.Context, dir string, prefix string) ([]*Item, error)
}

// Builder produces a complete sectioned navigation. Implementations never
// return an error: a build either reflects the current content tree or
// degrades to a fallback structure.
type Builder interface {
	Build(ctx context.Context) []Section
}

// TitleExtractor derives a display title from the body of a page file when
// front matter declares none.
type TitleExtractor interface {
	// ExtractTitle returns the leading natural title of the content
	// (typically its first heading) and whether one was found.
	ExtractTitle(content []byte) (title string, ok bool)
}

// ExtractorRegistry selects a TitleExtractor by page file extension.
type ExtractorRegistry interface {
	// Get returns the extractor registered for ext (lowercase, with
	// leading dot). Returns nil when the extension has none.
	Get(ext string) TitleExtractor

	// Register adds an extractor for an extension, replacing any
	// previous registration.
	Register(ext string, e TitleExtractor)

	// List returns all registered extensions.
	List() []string
}
