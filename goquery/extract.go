// Package goquery extracts display titles from HTML pages.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sitenav"
)

var _ sitenav.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor returns the first <h1> of an HTML document as its title,
// falling back to the <title> element when the page has no <h1>.
type TitleExtractor struct{}

// NewTitleExtractor creates an HTML TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// ExtractTitle implements sitenav.TitleExtractor.
func (e *TitleExtractor) ExtractTitle(content []byte) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", false
	}

	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1, true
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title, true
	}
	return "", false
}
