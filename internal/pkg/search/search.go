// Package search implements the free-text filter shared by the admin list
// views and the audit log name filters.
package search

import "strings"

// MinLength is the shortest query that actually filters. Anything shorter
// matches everything, which keeps short prefixes from firing network-backed
// name lookups and from over-matching local lists.
const MinLength = 3

// Term trims and lowercases q, returning "" when the query is below the
// minimum length and therefore inactive.
func Term(q string) string {
	normalized := strings.ToLower(strings.TrimSpace(q))
	if len(normalized) < MinLength {
		return ""
	}

	return normalized
}

// Matches reports whether the concatenated fields contain term as a
// substring. An empty term matches everything.
func Matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}

	haystack := strings.ToLower(strings.Join(fields, " "))

	return strings.Contains(haystack, term)
}
