package sitenav

import (
	"sort"
	"strings"
)

var _ ExtractorRegistry = (*Registry)(nil)

// Registry maps page file extensions to title extractors. Extensions are
// normalized to lowercase with a leading dot, so ".MDX" and "mdx" address
// the same slot.
type Registry struct {
	extractors map[string]TitleExtractor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{extractors: make(map[string]TitleExtractor)}
}

// Get returns the extractor for an extension.
// Returns nil if no extractor is registered for the extension.
func (r *Registry) Get(ext string) TitleExtractor {
	return r.extractors[normalizeExt(ext)]
}

// Register adds an extractor for an extension.
// If an extractor is already registered for the extension, it is replaced.
func (r *Registry) Register(ext string, e TitleExtractor) {
	r.extractors[normalizeExt(ext)] = e
}

// List returns all registered extensions, sorted.
func (r *Registry) List() []string {
	exts := make([]string, 0, len(r.extractors))
	for ext := range r.extractors {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
