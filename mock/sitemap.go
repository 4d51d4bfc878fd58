package mock

import (
	"io"

	"sitenav"
)

var _ sitenav.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter is a mock implementation of sitenav.SitemapWriter.
type SitemapWriter struct {
	WriteSitemapFn func(w io.Writer, baseURL string, sections []sitenav.Section, filter *sitenav.RouteFilter) error
}

func (s *SitemapWriter) WriteSitemap(w io.Writer, baseURL string, sections []sitenav.Section, filter *sitenav.RouteFilter) error {
	return s.WriteSitemapFn(w, baseURL, sections, filter)
}
