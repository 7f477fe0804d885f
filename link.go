package sitesmith

import "context"

// ScoredLink is a normalized internal URL with its relevance score.
// Produced and consumed within one discovery pass.
type ScoredLink struct {
	URL   string
	Score int
	Text  string
}

// LinkDiscoverer parses a fetched page for internal links, deduplicates
// and normalizes them, and returns up to limit URLs ranked by relevance.
// Ties keep first-discovered order.
type LinkDiscoverer interface {
	Discover(html string, baseURL string, limit int) ([]string, error)
}

// SitemapSource discovers candidate page URLs from a site's sitemap.
// Used as a fallback when homepage link discovery yields nothing.
type SitemapSource interface {
	DiscoverURLs(ctx context.Context, baseURL string, limit int) ([]string, error)
}
