package querybuilder

import (
	"strings"
)

const (
	selectKeyword  = "SELECT"
	fromKeyword    = "FROM"
	whereKeyword   = "WHERE"
	groupByKeyword = "GROUP BY"
	orderByKeyword = "ORDER BY"
	joinKeyword    = "JOIN"
	onKeyword      = "ON"
)

// Returns fragment prefixed with keyword, or "" for a blank fragment.  A
// fragment which already contains keyword (in any case) is only trimmed,
// which makes normalize idempotent.
func normalize(fragment string, keyword string) string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ""
	}

	if containsKeyword(fragment, keyword) {
		return fragment
	}

	return keyword + " " + fragment
}

func containsKeyword(fragment string, keyword string) bool {
	return strings.Contains(
		strings.ToUpper(fragment),
		strings.ToUpper(keyword))
}

func isBlank(fragment string) bool {
	return strings.TrimSpace(fragment) == ""
}
