package sitenav

import (
	"io"
	"regexp"
)

// SitemapWriter renders the navigable pages of a sectioned navigation as a
// sitemap document for search engines.
type SitemapWriter interface {
	// WriteSitemap writes a sitemap.xml document listing every navigable
	// page in the sections, with hrefs resolved against baseURL. Group
	// items organize the menu only and are never listed.
	//
	// The filter can be used to include/exclude routes by pattern.
	// If filter is nil, all routes are written.
	WriteSitemap(w io.Writer, baseURL string, sections []Section, filter *RouteFilter) error
}

// RouteFilter specifies patterns for including/excluding routes.
type RouteFilter struct {
	// Include patterns - if set, only routes matching at least one pattern
	// are included.
	Include []*regexp.Regexp

	// Exclude patterns - routes matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// Match returns true if the route passes the filter.
// If the filter is nil, all routes pass.
func (f *RouteFilter) Match(href string) bool {
	if f == nil {
		return true
	}

	// If include patterns exist, the route must match at least one
	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(href) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Check exclude patterns
	for _, re := range f.Exclude {
		if re.MatchString(href) {
			return false
		}
	}

	return true
}
