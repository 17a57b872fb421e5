// Package normalize canonicalizes user input before it is stored or used in
// lookups, so uniqueness checks and logins are insensitive to the casing
// and whitespace clients happen to send.
package normalize

import "strings"

// Email lowercases and trims an email address. Applied before every store
// write and every login lookup so the unique index on email behaves
// case-insensitively.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// List trims each entry and drops empties, preserving order. Used for NGO
// achievements and categories regardless of whether they arrived as an
// array or a comma-separated string.
func List(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
