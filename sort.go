package sitenav

import (
	"sort"
	"strings"
)

// defaultRank is the bucket for titles that match no priority keyword.
const defaultRank = 3

// priorityRules assign sibling items to fixed buckets by keyword match
// against the lowercased title. Rules are evaluated in order; the first
// match wins. Lower ranks sort earlier.
var priorityRules = []struct {
	keywords []string
	rank     int
}{
	{keywords: []string{"vocabulary", "glossary"}, rank: 0},
	{keywords: []string{"setup", "getting started"}, rank: 1},
	{keywords: []string{"introduction", "intro"}, rank: 2},
	{keywords: []string{"security", "performance"}, rank: 4},
	{keywords: []string{"bonus", "optional", "framework"}, rank: 5},
}

func titleRank(title string) int {
	lower := strings.ToLower(title)
	for _, rule := range priorityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.rank
			}
		}
	}
	return defaultRank
}

// SortItems stable-sorts sibling items in place into display order: by
// priority bucket first, then (inside the default bucket only) by explicit
// front-matter order with ordered items before unordered ones, then by
// case-sensitive title. Items in keyword buckets keep their original
// relative order.
func SortItems(items []*Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return itemLess(items[i], items[j])
	})
}

func itemLess(a, b *Item) bool {
	ra, rb := titleRank(a.Title), titleRank(b.Title)
	if ra != rb {
		return ra < rb
	}
	if ra != defaultRank {
		return false
	}
	switch {
	case a.Order != nil && b.Order != nil:
		return *a.Order < *b.Order
	case a.Order != nil:
		return true
	case b.Order != nil:
		return false
	default:
		return a.Title < b.Title
	}
}
