// Package fs scans content directories on the local filesystem and turns
// them into navigation items.
package fs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sitenav"
)

// Ensure Scanner implements sitenav.Scanner at compile time.
var _ sitenav.Scanner = (*Scanner)(nil)

// pageMarkers are the files that make a directory a navigable page.
// They are probed in order; the first one found wins.
var pageMarkers = []string{
	"page.tsx",
	"page.jsx",
	"page.mdx",
	"page.md",
	"page.html",
	"index.md",
	"index.html",
}

// skipNames are infrastructure entries that never become navigation nodes.
var skipNames = map[string]bool{
	"globals.css":   true,
	"favicon.ico":   true,
	"layout.tsx":    true,
	"layout.jsx":    true,
	"loading.tsx":   true,
	"error.tsx":     true,
	"not-found.tsx": true,
	"node_modules":  true,
}

// SkipName reports whether a directory entry never contributes navigation
// nodes: hidden and underscore-prefixed names, plus the fixed set of
// infrastructure files.
func SkipName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || skipNames[name]
}

// Scanner walks an OS directory tree and builds navigation items, one per
// content-bearing directory.
type Scanner struct {
	logger     *slog.Logger
	extractors sitenav.ExtractorRegistry
}

// NewScanner creates a new Scanner. extractors selects a body-title
// extractor by page file extension and may be nil to disable body titles;
// logger may be nil to use the default logger.
func NewScanner(logger *slog.Logger, extractors sitenav.ExtractorRegistry) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger, extractors: extractors}
}

// Scan returns the navigation items for the immediate children of dir,
// recursively populated and sorted into display order. prefix is the route
// accumulated so far; the empty prefix denotes the content root, whose
// children map to "/<name>".
//
// A failure to list dir itself is returned as an error. Failures deeper in
// the tree are logged and yield an empty subtree instead, so one broken
// branch cannot take down the whole build.
func (s *Scanner) Scan(ctx context.Context, dir string, prefix string) ([]*sitenav.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, sitenav.Errorf(sitenav.EUNAVAILABLE, "list %s: %v", dir, err)
	}

	var items []*sitenav.Item
	for _, entry := range entries {
		if SkipName(entry.Name()) || !entry.IsDir() {
			continue
		}

		subDir := filepath.Join(dir, entry.Name())
		href := prefix + "/" + entry.Name()

		children, err := s.Scan(ctx, subDir, href)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			s.logger.Error("navigation scan skipped subtree", "dir", subDir, "err", err)
			children = nil
		}

		marker, ok := findPageMarker(subDir)
		if !ok {
			// Without a page of its own the directory only survives as
			// a grouping node for the children it contains.
			if len(children) == 0 {
				continue
			}
			items = append(items, &sitenav.Item{
				Title:    sitenav.FormatTitle(entry.Name()),
				Href:     href,
				Group:    true,
				Children: children,
			})
			continue
		}

		pagePath := filepath.Join(subDir, marker)
		meta := ReadPageMeta(pagePath)
		items = append(items, &sitenav.Item{
			Title:    s.pageTitle(entry.Name(), pagePath, meta),
			Href:     href,
			Order:    meta.Order,
			Children: children,
		})
	}

	sitenav.SortItems(items)
	return items, nil
}

// pageTitle resolves the display title of a page: front matter first, then
// the page body, then the formatted directory name.
func (s *Scanner) pageTitle(dirName, pagePath string, meta sitenav.PageMeta) string {
	if meta.Title != "" {
		return meta.Title
	}
	if title, ok := s.bodyTitle(pagePath); ok {
		return title
	}
	return sitenav.FormatTitle(dirName)
}

// bodyTitle extracts a title from the page body using the extractor
// registered for the page's extension. Missing extractors and unreadable
// files simply yield no title.
func (s *Scanner) bodyTitle(pagePath string) (string, bool) {
	if s.extractors == nil {
		return "", false
	}
	extractor := s.extractors.Get(filepath.Ext(pagePath))
	if extractor == nil {
		return "", false
	}
	content, err := os.ReadFile(pagePath)
	if err != nil {
		return "", false
	}
	return extractor.ExtractTitle(content)
}

// findPageMarker returns the name of the first page marker present in dir.
func findPageMarker(dir string) (string, bool) {
	for _, name := range pageMarkers {
		info, err := os.Stat(filepath.Join(dir, name))
		if err == nil && info.Mode().IsRegular() {
			return name, true
		}
	}
	return "", false
}
