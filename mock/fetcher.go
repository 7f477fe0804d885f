// Package mock provides mock implementations of sitesmith interfaces for
// testing.
package mock

import (
	"context"

	"sitesmith"
)

var _ sitesmith.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sitesmith.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
