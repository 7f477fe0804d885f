package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sitesmith"
)

// robotsTimeout bounds the robots.txt fetch; the policy is advisory and
// must never stall a crawl.
const robotsTimeout = 5 * time.Second

// agentToken is the crawler identifier matched against User-agent lines,
// alongside the wildcard agent.
const agentToken = "sitesmith"

// Ensure RobotsService implements sitesmith.RobotsService at compile time.
var _ sitesmith.RobotsService = (*RobotsService)(nil)

// RobotsService fetches and parses /robots.txt for a site.
type RobotsService struct {
	client *http.Client
}

// NewRobotsService creates a new RobotsService.
func NewRobotsService() *RobotsService {
	return &RobotsService{
		client: &http.Client{Timeout: robotsTimeout},
	}
}

// FetchRuleset issues one bounded GET for the site's robots.txt.
// A non-200 response yields an empty ruleset and no error (fail-open).
// Transport failures return an error; callers treat the policy as fully
// allowing in that case too.
func (s *RobotsService) FetchRuleset(ctx context.Context, siteURL string) (*sitesmith.Ruleset, error) {
	base, err := url.Parse(sitesmith.NormalizeURL(siteURL))
	if err != nil || base.Host == "" {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "invalid site URL %q", siteURL)
	}

	robotsURL := base.Scheme + "://" + base.Host + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, sitesmith.Errorf(sitesmith.EUNAVAILABLE, "robots.txt fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &sitesmith.Ruleset{}, nil
	}

	return ParseRuleset(resp.Body), nil
}

// ParseRuleset scans robots.txt content line by line, capturing Disallow
// prefixes only while the active User-agent is the wildcard or this
// crawler's token. Empty Disallow values mean "allow all" and are ignored.
func ParseRuleset(r io.Reader) *sitesmith.Ruleset {
	ruleset := &sitesmith.Ruleset{}

	var currentAgent string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch {
		case strings.HasPrefix(line, "user-agent:"):
			currentAgent = strings.TrimSpace(strings.TrimPrefix(line, "user-agent:"))

		case strings.HasPrefix(line, "disallow:"):
			if currentAgent != "*" && currentAgent != agentToken {
				continue
			}
			path := strings.TrimSpace(strings.TrimPrefix(line, "disallow:"))
			if path != "" {
				ruleset.Disallowed = append(ruleset.Disallowed, path)
			}
		}
	}

	return ruleset
}
