package docket

import (
	"regexp"
	"strings"
)

// The docket PDF has no machine-readable structure, so every field is
// located with a small named matcher. Each matcher is independent and
// testable on its own; segmentation decides when each one may fire.

var (
	datePattern = regexp.MustCompile(
		`\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2},\s+\d{4}\b`)
	timePattern       = regexp.MustCompile(`\b\d{1,2}:\d{2}\s*(AM|PM)\b`)
	courtroomPattern  = regexp.MustCompile(`\bS\d{1,3}\b`)
	digitRunPattern   = regexp.MustCompile(`\d+`)
	lineNumberPattern = regexp.MustCompile(`^\s*\d+\s+`)
	separatorPattern  = regexp.MustCompile(`-{3,}`)
)

// MatchDate returns the first calendar-date expression in s
// ("Jan 5, 2024" style, abbreviated or full month name), or "".
func MatchDate(s string) string {
	return datePattern.FindString(s)
}

// MatchTime returns the first time-of-day expression in s
// ("01:00 PM" style), or "".
func MatchTime(s string) string {
	return timePattern.FindString(s)
}

// MatchCourtroom returns the first courtroom token in s ("S34"
// style), or "".
func MatchCourtroom(s string) string {
	return courtroomPattern.FindString(s)
}

// MatchDigitRun returns the first run of digits in s, or "".
func MatchDigitRun(s string) string {
	return digitRunPattern.FindString(s)
}

// IsSeparator reports whether s is an entry separator line, which the
// docket renders as a run of hyphens.
func IsSeparator(s string) bool {
	return separatorPattern.MatchString(s)
}

// HasPartySeparator reports whether s contains the plaintiff/defendant
// divider token.
func HasPartySeparator(s string) bool {
	return strings.Contains(s, "VS.")
}

// TrimLineNumber strips a leading docket line number (a digit run
// bounded by whitespace) from s and returns the remainder. The second
// result is false when no line number is present.
func TrimLineNumber(s string) (string, bool) {
	loc := lineNumberPattern.FindStringIndex(s)
	if loc == nil {
		return s, false
	}
	return strings.TrimSpace(s[loc[1]:]), true
}
