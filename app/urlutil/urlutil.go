// Package urlutil resolves possibly-relative URL references against a
// base, tolerating the garbage that shows up in real-world feeds.
package urlutil

import (
	"net/url"
	"strings"
)

// Resolve resolves ref against base using standard URL-reference
// resolution. An already-absolute ref and an empty base are returned
// unchanged, as is anything that fails to parse.
func Resolve(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if base == "" || ref == "" {
		return ref
	}

	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return ref
	}

	b, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return ref
	}

	return b.ResolveReference(r).String()
}

// IsAbs reports whether s parses as an absolute URL.
func IsAbs(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	return err == nil && u.IsAbs()
}
