package sitesmith

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// MaxPagesToScrape bounds a crawl to the homepage plus the top-ranked
// discovered pages.
const MaxPagesToScrape = 10

// Fetch failure reasons. These classify every terminal fetch outcome and
// are recorded verbatim in ScrapeResult.Errors. Status codes outside the
// named cases produce "http_<code>".
const (
	ReasonTimeout      = "timeout"
	ReasonRateLimited  = "rate_limited"
	ReasonAccessDenied = "access_denied"
	ReasonNotFound     = "not_found"
	ReasonServerError  = "server_error"
	ReasonClientError  = "client_error"
)

// FetchError is the classified failure of a single URL fetch.
type FetchError struct {
	URL    string
	Reason string
	Status int
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: %s (HTTP %d)", e.URL, e.Reason, e.Status)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
}

// FetchReason returns the classification of a fetch error.
// Unclassified errors default to ReasonClientError.
func FetchReason(err error) string {
	var fe *FetchError
	if err == nil {
		return ""
	} else if errors.As(err, &fe) {
		return fe.Reason
	}
	return ReasonClientError
}

// Fetcher retrieves raw HTML from a URL. Implementations handle retries,
// backoff and timeouts; a returned error is always terminal and classified
// (see FetchReason).
type Fetcher interface {
	Fetch(ctx context.Context, url string) (html string, err error)
}

// PageError records a non-fatal per-page failure during a crawl.
type PageError struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// String renders the error in "<url>: <reason>" form.
func (e PageError) String() string {
	return e.URL + ": " + e.Reason
}

// ScrapeResult is the outcome of crawling one site. Pages holds the
// homepage first, then subpages in discovery order. It is created fresh
// per crawl and never mutated after the orchestrator returns.
type ScrapeResult struct {
	SourceURL  string       `json:"source_url"`
	ScrapedAt  time.Time    `json:"scraped_at"`
	Pages      []PageRecord `json:"pages"`
	TotalPages int          `json:"total_pages"`
	Success    bool         `json:"success"`
	Errors     []PageError  `json:"errors"`
}

// SiteScraper drives the end-to-end crawl of one site.
// A failed homepage fetch yields a result with Success=false rather than
// an error; errors are reserved for unusable input.
type SiteScraper interface {
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

// NormalizeURL prepends https:// when the URL has no scheme and strips
// any trailing slash.
func NormalizeURL(rawURL string) string {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return ""
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return strings.TrimRight(u, "/")
}

// URLDomain returns the lower-cased host of a URL, or "" if unparseable.
func URLDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}
