package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sitenav"
)

var (
	// sectionStyle for section labels
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("105"))

	// itemStyle for page titles
	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// groupStyle for container entries without a page of their own
	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	// hrefStyle for muted route paths
	hrefStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// expandedStyle for the marker on expanded entries
	expandedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// Run executes the tree command.
func (c *TreeCmd) Run(deps *Dependencies) error {
	sections := deps.Builder.Build(deps.Ctx)
	if c.Current != "" {
		sections = sitenav.MarkExpanded(sections, c.Current)
	}

	if c.Plain {
		fmt.Fprintln(deps.Stdout, sitenav.FormatSections(sections))
		return nil
	}

	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, sectionStyle.Render(section.Title))
		for _, it := range section.Items {
			writeTreeItem(deps, it, 1)
		}
	}
	return nil
}

// writeTreeItem prints one navigation entry and its children, indented two
// spaces per nesting level.
func writeTreeItem(deps *Dependencies, it *sitenav.Item, depth int) {
	marker := "·"
	if it.Expanded {
		marker = expandedStyle.Render("▸")
	}

	title := itemStyle.Render(it.Title)
	suffix := " " + hrefStyle.Render(it.Href)
	if it.Group {
		title = groupStyle.Render(it.Title)
		suffix = ""
	}

	fmt.Fprintf(deps.Stdout, "%s%s %s%s\n", strings.Repeat("  ", depth), marker, title, suffix)
	for _, child := range it.Children {
		writeTreeItem(deps, child, depth+1)
	}
}
