package sitenav

import "strings"

// MarkExpanded projects an expansion state for the given current location
// onto a deep copy of the sectioned navigation. A node is expanded when its
// href equals current, when its href is a segment-aligned path prefix of
// current, or when any descendant is expanded; every other node is marked
// collapsed. The input is never mutated.
func MarkExpanded(sections []Section, current string) []Section {
	out := CloneSections(sections)
	for i := range out {
		for _, it := range out[i].Items {
			markItem(it, current)
		}
	}
	return out
}

func markItem(it *Item, current string) bool {
	expanded := hrefOnPath(it.Href, current)
	for _, child := range it.Children {
		if markItem(child, current) {
			expanded = true
		}
	}
	it.Expanded = expanded
	return expanded
}

// hrefOnPath reports whether href equals current or is a segment-aligned
// prefix of it: "/a" is on the path to "/a/b", "/ab" is not.
func hrefOnPath(href, current string) bool {
	if href == "" || current == "" {
		return false
	}
	if href == current {
		return true
	}
	return strings.HasPrefix(current, href+"/")
}
