package sitenav

import "strings"

// Fixed section titles. Display order is given by sectionOrder below; the
// set is part of the site design and is not data-driven.
const (
	SectionFundamentals = "Fundamentals"
	SectionDatabases    = "Databases"
	SectionSQL          = "SQL"
	SectionNoSQL        = "NoSQL"
	SectionProjects     = "Projects"
	SectionUtilities    = "Utilities & Tools"
	SectionAdvanced     = "Advanced Topics"
)

var sectionOrder = []string{
	SectionFundamentals,
	SectionDatabases,
	SectionSQL,
	SectionNoSQL,
	SectionProjects,
	SectionUtilities,
	SectionAdvanced,
}

// SectionTitles returns the fixed section titles in canonical display order.
func SectionTitles() []string {
	out := make([]string, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

// keywordRule assigns a section to items whose lowercased href or title
// contains one of the keywords. Rules are evaluated in order; the first
// match wins, so more specific keywords must come first (nosql before sql).
type keywordRule struct {
	keywords []string
	section  string
}

// branchRules classify items that carry children, i.e. whole sub-trees.
var branchRules = []keywordRule{
	{keywords: []string{"nosql", "mongo", "redis", "cassandra", "dynamo"}, section: SectionNoSQL},
	{keywords: []string{"sql", "postgres", "mysql", "sqlite"}, section: SectionSQL},
	{keywords: []string{"database", "storage", "persistence"}, section: SectionDatabases},
	{keywords: []string{"project", "capstone"}, section: SectionProjects},
	{keywords: []string{"docker", "kubernetes", "deploy", "devops", "git", "tool"}, section: SectionUtilities},
	{keywords: []string{"security", "performance", "scal", "architecture", "microservice", "distributed", "advanced"}, section: SectionAdvanced},
}

// leafRules classify items without children, i.e. single pages.
var leafRules = []keywordRule{
	{keywords: []string{"vocabulary", "glossary", "introduction", "setup", "getting started", "basics"}, section: SectionFundamentals},
	{keywords: []string{"nosql", "mongo", "redis", "cassandra", "dynamo"}, section: SectionNoSQL},
	{keywords: []string{"sql", "postgres", "mysql", "sqlite"}, section: SectionSQL},
	{keywords: []string{"database", "storage", "index", "transaction", "replication"}, section: SectionDatabases},
	{keywords: []string{"project", "capstone"}, section: SectionProjects},
	{keywords: []string{"docker", "kubernetes", "deploy", "git", "tool", "testing", "debug"}, section: SectionUtilities},
	{keywords: []string{"security", "auth", "performance", "cach", "scal", "queue", "concurren", "advanced"}, section: SectionAdvanced},
}

// Categorize partitions the top-level items into the fixed sections.
// Classification precedence per item, first match wins:
//
//  1. a recognized category code in any href path segment,
//  2. the branch keyword rules when the item has children,
//  3. the leaf keyword rules otherwise,
//  4. Fundamentals.
//
// Items are neither mutated nor re-sorted, so within-section order is the
// input order. Sections with no items are omitted.
func Categorize(items []*Item) []Section {
	buckets := make(map[string][]*Item, len(sectionOrder))
	for _, it := range items {
		title := sectionFor(it)
		buckets[title] = append(buckets[title], it)
	}

	out := make([]Section, 0, len(sectionOrder))
	for _, title := range sectionOrder {
		if assigned := buckets[title]; len(assigned) > 0 {
			out = append(out, Section{Title: title, Items: assigned})
		}
	}
	return out
}

func sectionFor(it *Item) string {
	// Category codes embedded in the route always win over keyword
	// heuristics.
	for _, seg := range strings.Split(it.Href, "/") {
		if seg == "" {
			continue
		}
		if code, _, ok := SplitCategory(seg); ok {
			if title, ok := code.Section(); ok {
				return title
			}
		}
	}

	haystack := strings.ToLower(it.Href + " " + it.Title)
	rules := leafRules
	if len(it.Children) > 0 {
		rules = branchRules
	}
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(haystack, kw) {
				return rule.section
			}
		}
	}
	return SectionFundamentals
}
