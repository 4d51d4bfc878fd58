package sitenav

import "strings"

// Category is a short prefix token on a directory name that pins the page
// to one section regardless of any title or keyword heuristics.
type Category string

// Recognized category codes.
const (
	CategoryFundamentals Category = "fund"
	CategoryAPI          Category = "api"
	CategoryDatabase     Category = "db"
	CategorySQL          Category = "sql"
	CategoryNoSQL        Category = "nosql"
	CategoryProject      Category = "proj"
	CategoryUtility      Category = "util"
	CategoryDeployment   Category = "dep"
	CategoryAdvanced     Category = "adv"
	CategorySecurity     Category = "sec"
	CategoryPerformance  Category = "perf"
)

// categorySections maps each category code to the section it forces.
// Every code maps to exactly one of the fixed section titles.
var categorySections = map[Category]string{
	CategoryFundamentals: SectionFundamentals,
	CategoryAPI:          SectionFundamentals,
	CategoryDatabase:     SectionDatabases,
	CategorySQL:          SectionSQL,
	CategoryNoSQL:        SectionNoSQL,
	CategoryProject:      SectionProjects,
	CategoryUtility:      SectionUtilities,
	CategoryDeployment:   SectionUtilities,
	CategoryAdvanced:     SectionAdvanced,
	CategorySecurity:     SectionAdvanced,
	CategoryPerformance:  SectionAdvanced,
}

// Section returns the section title a category code maps to, and whether
// the code is one of the recognized set.
func (c Category) Section() (string, bool) {
	title, ok := categorySections[c]
	return title, ok
}

// SplitCategory splits a path segment on its leading hyphen-delimited token.
// When the segment has more than one token and the first one matches a
// recognized category code (case-insensitively), it returns that code, the
// remaining tokens rejoined with "-", and true. Otherwise it returns the
// segment unchanged as the clean name and false.
func SplitCategory(segment string) (Category, string, bool) {
	parts := strings.Split(segment, "-")
	if len(parts) < 2 {
		return "", segment, false
	}
	code := Category(strings.ToLower(parts[0]))
	if _, ok := categorySections[code]; !ok {
		return "", segment, false
	}
	return code, strings.Join(parts[1:], "-"), true
}
