package docket

import "strings"

// minFragmentLen is the shortest fragment considered content. Shorter
// fragments are layout artifacts left over from column whitespace.
const minFragmentLen = 2

// Normalize drops near-empty fragments and rewrites commas as vertical
// bars. Commas must go before formatting: they would otherwise collide
// with the report's field delimiter.
func Normalize(fragments []string) []string {
	cleaned := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if len(f) < minFragmentLen {
			continue
		}
		cleaned = append(cleaned, strings.ReplaceAll(f, ",", "|"))
	}
	return cleaned
}
