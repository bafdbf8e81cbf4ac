package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// Description lowercases, collapses whitespace, and trims a free-text
// service description. Duplicate grouping and fuzzy matching both key on
// this form so that "CBC " and "cbc" compare equal.
func Description(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return multiSpace.ReplaceAllString(s, " ")
}
