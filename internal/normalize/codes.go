package normalize

import "strings"

// Code trims whitespace and uppercases a billing code for lookup.
// Returns "" for blank input.
func Code(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// StripDots removes dots from a code, e.g. "E11.9" → "E119". ICD-10 tables
// are sometimes keyed without the decimal point.
func StripDots(s string) string {
	return strings.ReplaceAll(s, ".", "")
}
