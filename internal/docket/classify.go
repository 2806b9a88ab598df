package docket

import "strings"

// IsDebtCollection reports whether the entry is a debt-collection
// action: some fragment must contain both "Debt" and "Collection",
// case-sensitive, in any order.
func IsDebtCollection(e Entry) bool {
	for _, f := range e.Fragments {
		if strings.Contains(f, "Debt") && strings.Contains(f, "Collection") {
			return true
		}
	}
	return false
}
