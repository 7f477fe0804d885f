package mock

import (
	"sitesmith"
)

var _ sitesmith.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of sitesmith.LinkDiscoverer.
type Discoverer struct {
	DiscoverFn func(html, baseURL string, limit int) ([]string, error)
}

func (d *Discoverer) Discover(html, baseURL string, limit int) ([]string, error) {
	return d.DiscoverFn(html, baseURL, limit)
}
