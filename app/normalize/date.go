package normalize

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate coerces the date spellings found in feeds (RFC 822, RFC
// 3339 and the many variants in the wild) to UTC. Returns nil when the
// value is empty or unparseable.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}

	u := t.UTC()
	return &u
}
