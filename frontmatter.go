package sitenav

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// PageMeta holds the optional overrides a page declares in front matter.
// Absent fields stay at their zero value and are never defaulted.
type PageMeta struct {
	// Title overrides the name-derived display title when non-empty.
	Title string

	// Order is the explicit sibling rank. Nil when the page declares none.
	Order *int
}

var (
	frontMatterTitleRe = regexp.MustCompile(`^\s*title:\s*["'](.*)["']\s*$`)
	frontMatterOrderRe = regexp.MustCompile(`^\s*order:\s*(-?\d+)\s*$`)
)

// ParseFrontMatter pattern-matches a leading front-matter block for the
// title and order fields. The block must start on the first line with "---"
// and end with a closing "---"; anything else yields an empty PageMeta.
// Only quoted titles and integer orders are consumed. This is a pattern
// match, not a YAML parse, so other syntax is ignored rather than rejected.
func ParseFrontMatter(content string) PageMeta {
	var meta PageMeta

	lines, ok := frontMatterLines(content)
	if !ok {
		return meta
	}

	for _, line := range lines {
		if m := frontMatterTitleRe.FindStringSubmatch(line); m != nil {
			meta.Title = m[1]
			continue
		}
		if m := frontMatterOrderRe.FindStringSubmatch(line); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				order := n
				meta.Order = &order
			}
		}
	}
	return meta
}

// StripFrontMatter returns the content after a leading front-matter block,
// or the content unchanged when no well-formed block is present. Title
// extractors use it so the block's delimiter lines are never misread as
// document structure.
func StripFrontMatter(content string) string {
	lines, ok := frontMatterLines(content)
	if !ok {
		return content
	}

	// Skip the opening delimiter, the block lines, and the closing
	// delimiter.
	rest := content
	for i := 0; i < len(lines)+2; i++ {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			return ""
		}
		rest = rest[nl+1:]
	}
	return rest
}

// frontMatterLines returns the lines between the front-matter delimiters,
// and whether a well-formed block is present at the top of the content.
func frontMatterLines(content string) ([]string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "---" {
		return nil, false
	}

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			return lines, true
		}
		lines = append(lines, line)
	}
	return nil, false
}
