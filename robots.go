package sitesmith

import (
	"context"
	"net/url"
	"strings"
)

// Ruleset holds the disallowed path prefixes parsed from one domain's
// robots.txt. Immutable after creation and safe for concurrent reads.
type Ruleset struct {
	Disallowed []string
}

// Empty reports whether the ruleset permits everything.
func (r *Ruleset) Empty() bool {
	return r == nil || len(r.Disallowed) == 0
}

// Allowed reports whether the URL's path is permitted by the ruleset.
// An empty ruleset allows everything; otherwise the lower-cased path must
// not start with any disallowed prefix.
func (r *Ruleset) Allowed(rawURL string) bool {
	if r.Empty() {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	path := strings.ToLower(u.Path)
	for _, prefix := range r.Disallowed {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// RobotsService fetches and parses a site's crawling policy.
// A non-200 robots.txt response yields an empty ruleset and no error
// (fail-open); transport failures return an error so callers can log
// them, but callers must still treat the policy as fully allowing.
type RobotsService interface {
	FetchRuleset(ctx context.Context, siteURL string) (*Ruleset, error)
}
