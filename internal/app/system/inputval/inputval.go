// Package inputval validates request field syntax. Validation here is about
// rejecting obviously malformed input early with a 400; uniqueness and
// existence checks belong to the stores.
package inputval

import "strings"

// IsValidEmail reports whether s looks like a plausible email address.
// Single-label domains are accepted (useful against dev mail servers), but
// display names, embedded spaces, and stray dots are not.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if local == "" || domain == "" {
		return false
	}
	if strings.ContainsAny(s, " \t<>") {
		return false
	}
	for _, part := range []string{local, domain} {
		if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") || strings.Contains(part, "..") {
			return false
		}
	}
	return true
}

// IsValidMobile reports whether s is a plausible phone number: digits with
// optional leading + and common separators, 7-15 digits total.
func IsValidMobile(s string) bool {
	s = strings.TrimSpace(s)
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}
