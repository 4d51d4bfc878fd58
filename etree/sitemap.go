// Package etree renders navigation structures as XML documents.
package etree

import (
	"io"
	"net/url"
	"strings"

	"github.com/beevik/etree"

	"sitenav"
)

// sitemapNamespace is the schema required by the sitemap protocol.
const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Ensure SitemapWriter implements sitenav.SitemapWriter at compile time.
var _ sitenav.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter renders navigable pages as a sitemap.xml document.
type SitemapWriter struct{}

// NewSitemapWriter creates a new SitemapWriter.
func NewSitemapWriter() *SitemapWriter {
	return &SitemapWriter{}
}

// WriteSitemap writes a sitemap.xml document with one <url> entry per
// navigable page, in display order. Group items never produce entries.
func (s *SitemapWriter) WriteSitemap(w io.Writer, baseURL string, sections []sitenav.Section, filter *sitenav.RouteFilter) error {
	base, err := url.Parse(baseURL)
	if err != nil {
		return sitenav.Errorf(sitenav.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return sitenav.Errorf(sitenav.EINVALID, "base URL %q must be absolute", baseURL)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	for _, it := range sitenav.Flatten(sections) {
		if !filter.Match(it.Href) {
			continue
		}
		entry := urlset.CreateElement("url")
		entry.CreateElement("loc").SetText(joinRoute(base, it.Href))
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return sitenav.Errorf(sitenav.EINTERNAL, "write sitemap: %v", err)
	}
	return nil
}

// joinRoute resolves a site-rooted href against the base URL. The site root
// "/" maps to the base itself.
func joinRoute(base *url.URL, href string) string {
	u := *base
	u.Path = strings.TrimRight(base.Path, "/") + href
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}
