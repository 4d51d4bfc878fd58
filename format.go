package sitenav

import "strings"

// FormatSections renders sections as plain text for terminal display or
// piping. Each section becomes a "## " header followed by its items, one
// per line, indented two spaces per nesting level. Expanded items are
// bulleted with "*" instead of "-". Sections are separated by blank lines.
func FormatSections(sections []Section) string {
	if len(sections) == 0 {
		return ""
	}

	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		var sb strings.Builder
		sb.WriteString("## " + section.Title)
		for _, it := range section.Items {
			writeItem(&sb, it, 0)
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}

func writeItem(sb *strings.Builder, it *Item, depth int) {
	bullet := "-"
	if it.Expanded {
		bullet = "*"
	}
	sb.WriteString("\n" + strings.Repeat("  ", depth) + bullet + " " + it.Title)
	if !it.Group && it.Href != "" {
		sb.WriteString(" (" + it.Href + ")")
	}
	for _, child := range it.Children {
		writeItem(sb, child, depth+1)
	}
}
