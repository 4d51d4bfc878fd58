// Package goldmark extracts display titles from markdown pages using the
// goldmark parser.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"sitenav"
)

var _ sitenav.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor returns the first heading of a markdown document as its
// title. Any leading front-matter block is stripped before parsing so its
// delimiter lines cannot be misread as a setext heading.
type TitleExtractor struct{}

// NewTitleExtractor creates a markdown TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// ExtractTitle implements sitenav.TitleExtractor.
func (e *TitleExtractor) ExtractTitle(content []byte) (string, bool) {
	src := []byte(sitenav.StripFrontMatter(string(content)))

	reader := text.NewReader(src)
	doc := goldmark.DefaultParser().Parse(reader)

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title = headingText(heading, src)
		return ast.WalkStop, nil
	})

	title = strings.TrimSpace(title)
	return title, title != ""
}

// headingText collects the plain text of a heading, flattening inline
// markup like emphasis and code spans.
func headingText(heading *ast.Heading, src []byte) string {
	var buf bytes.Buffer
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*ast.Text); ok {
				buf.Write(textNode.Segment.Value(src))
				continue
			}
			walk(child)
		}
	}
	walk(heading)
	return buf.String()
}
