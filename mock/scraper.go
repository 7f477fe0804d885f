package mock

import (
	"context"

	"sitesmith"
)

var _ sitesmith.SiteScraper = (*SiteScraper)(nil)

// SiteScraper is a mock implementation of sitesmith.SiteScraper.
type SiteScraper struct {
	ScrapeFn func(ctx context.Context, url string) (*sitesmith.ScrapeResult, error)
}

func (s *SiteScraper) Scrape(ctx context.Context, url string) (*sitesmith.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url)
}
