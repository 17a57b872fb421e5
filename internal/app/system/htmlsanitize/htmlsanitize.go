// Package htmlsanitize strips dangerous markup from user-generated rich
// text. Campaign full descriptions and NGO mission statements may carry
// basic formatting; everything executable is removed before storage.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

// ugcPolicy builds the shared policy: bluemonday's UGC baseline plus the
// formatting and table markup the campaign editor produces.
func ugcPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowAttrs("class").Globally()
	p.AllowTables()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Sanitize returns s with unsafe HTML removed. Plain text passes through
// unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	once.Do(func() { policy = ugcPolicy() })
	return policy.Sanitize(s)
}
