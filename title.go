package sitenav

import (
	"strings"
	"unicode"
)

// minorWords are lowercased in titles unless they appear first or last.
var minorWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "but": true, "or": true, "nor": true,
	"for": true, "so": true, "yet": true,
	"as": true, "at": true, "by": true, "in": true, "of": true,
	"on": true, "per": true, "to": true, "up": true, "via": true, "vs": true,
}

// titleExceptions map a whole clean name (compared case-insensitively) to a
// canonical rendering that title-casing would mangle.
var titleExceptions = map[string]string{
	"api":   "API",
	"sql":   "SQL",
	"nosql": "NoSQL",
	"faq":   "FAQ",
	"http":  "HTTP",
	"grpc":  "gRPC",
	"cli":   "CLI",
	"orm":   "ORM",
}

// FormatTitle converts a raw path segment into a display title. Any
// recognized category prefix is stripped first; hook-style names (use*,
// but not user*) and the fixed exception names pass through verbatim;
// everything else is split on hyphens and title-cased with minor words
// lowercased away from the edges.
//
// The function is total and idempotent: formatting an already-formatted
// title returns it unchanged.
func FormatTitle(segment string) string {
	_, clean, _ := SplitCategory(segment)

	// Hook-style names keep their exact casing (useEffect, use-debounce).
	if strings.HasPrefix(clean, "use") && !strings.HasPrefix(clean, "user") {
		return clean
	}

	if canonical, ok := titleExceptions[strings.ToLower(clean)]; ok {
		return canonical
	}

	words := strings.Split(clean, "-")
	for i, w := range words {
		edge := i == 0 || i == len(words)-1
		if !edge && minorWords[strings.ToLower(w)] {
			words[i] = strings.ToLower(w)
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// capitalize upper-cases the first rune of a word, leaving the remainder
// untouched so that already-cased names like iOS survive a second pass.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
