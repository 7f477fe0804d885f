package mock

import (
	"context"

	"sitesmith"
)

var _ sitesmith.SitemapSource = (*SitemapSource)(nil)

// SitemapSource is a mock implementation of sitesmith.SitemapSource.
type SitemapSource struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, limit int) ([]string, error)
}

func (s *SitemapSource) DiscoverURLs(ctx context.Context, baseURL string, limit int) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, limit)
}
