package crawl_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesmith"
	"sitesmith/crawl"
	"sitesmith/mock"
)

func newTestScraper() *crawl.Scraper {
	s := crawl.NewScraper(
		&mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html></html>", nil
		}},
		&mock.Extractor{ExtractFn: func(html string) (*sitesmith.PageRecord, error) {
			return &sitesmith.PageRecord{Sections: []sitesmith.Section{}}, nil
		}},
		&mock.Discoverer{DiscoverFn: func(html, baseURL string, limit int) ([]string, error) {
			return nil, nil
		}},
		&mock.RobotsService{FetchRulesetFn: func(ctx context.Context, siteURL string) (*sitesmith.Ruleset, error) {
			return &sitesmith.Ruleset{}, nil
		}},
	)
	s.Limiter = crawl.NewDomainLimiter(time.Microsecond)
	return s
}

func TestScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("scrapes homepage and discovered subpages in order", func(t *testing.T) {
		t.Parallel()

		s := newTestScraper()
		s.Discoverer = &mock.Discoverer{DiscoverFn: func(html, baseURL string, limit int) ([]string, error) {
			assert.Equal(t, sitesmith.MaxPagesToScrape-1, limit)
			return []string{
				"https://example.com/about",
				"https://example.com/services",
				"https://example.com/contact",
				"https://example.com/team",
			}, nil
		}}
		s.Extractor = &mock.Extractor{ExtractFn: func(html string) (*sitesmith.PageRecord, error) {
			return &sitesmith.PageRecord{Title: "page"}, nil
		}}

		result, err := s.Scrape(context.Background(), "example.com")
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, 5, result.TotalPages)
		assert.Empty(t, result.Errors)

		require.Len(t, result.Pages, 5)
		assert.Equal(t, "https://example.com", result.Pages[0].URL)
		assert.Equal(t, sitesmith.PageTypeHomepage, result.Pages[0].PageType)
		assert.Equal(t, "https://example.com/about", result.Pages[1].URL)
		assert.Equal(t, sitesmith.PageTypeSubpage, result.Pages[1].PageType)
		assert.Equal(t, "https://example.com/team", result.Pages[4].URL)
	})

	t.Run("homepage failure yields unsuccessful result", func(t *testing.T) {
		t.Parallel()

		s := newTestScraper()
		s.Fetcher = &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", &sitesmith.FetchError{URL: url, Reason: sitesmith.ReasonNotFound, Status: 404}
		}}

		result, err := s.Scrape(context.Background(), "https://example.com")
		require.NoError(t, err)

		assert.False(t, result.Success)
		assert.Equal(t, 0, result.TotalPages)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "https://example.com", result.Errors[0].URL)
		assert.Equal(t, sitesmith.ReasonNotFound, result.Errors[0].Reason)
	})

	t.Run("subpage failures are recorded but not fatal", func(t *testing.T) {
		t.Parallel()

		s := newTestScraper()
		s.Discoverer = &mock.Discoverer{DiscoverFn: func(html, baseURL string, limit int) ([]string, error) {
			return []string{"https://example.com/about", "https://example.com/broken"}, nil
		}}
		s.Fetcher = &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			if url == "https://example.com/broken" {
				return "", &sitesmith.FetchError{URL: url, Reason: sitesmith.ReasonTimeout}
			}
			return "<html></html>", nil
		}}

		result, err := s.Scrape(context.Background(), "https://example.com")
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, 2, result.TotalPages)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "https://example.com/broken: timeout", result.Errors[0].String())
	})

	t.Run("filters robots-disallowed candidates before the budget", func(t *testing.T) {
		t.Parallel()

		s := newTestScraper()
		s.Robots = &mock.RobotsService{FetchRulesetFn: func(ctx context.Context, siteURL string) (*sitesmith.Ruleset, error) {
			return &sitesmith.Ruleset{Disallowed: []string{"/private"}}, nil
		}}
		s.Discoverer = &mock.Discoverer{DiscoverFn: func(html, baseURL string, limit int) ([]string, error) {
			return []string{"https://example.com/private/a", "https://example.com/about"}, nil
		}}

		var fetched []string
		s.Fetcher = &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
			fetched = append(fetched, url)
			return "<html></html>", nil
		}}

		result, err := s.Scrape(context.Background(), "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, 2, result.TotalPages)
		assert.NotContains(t, fetched, "https://example.com/private/a")
	})

	t.Run("fails open when robots fetch errors", func(t *testing.T) {
		t.Parallel()

		s := newTestScraper()
		s.Robots = &mock.RobotsService{FetchRulesetFn: func(ctx context.Context, siteURL string) (*sitesmith.Ruleset, error) {
			return nil, sitesmith.Errorf(sitesmith.EUNAVAILABLE, "robots.txt fetch failed")
		}}
		s.Discoverer = &mock.Discoverer{DiscoverFn: func(html, baseURL string, limit int) ([]string, error) {
			return []string{"https://example.com/about"}, nil
		}}

		result, err := s.Scrape(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalPages)
	})

	t.Run("enforces the page budget", func(t *testing.T) {
		t.Parallel()

		s := newTestScraper()
		s.Discoverer = &mock.Discoverer{DiscoverFn: func(html, baseURL string, limit int) ([]string, error) {
			var urls []string
			for i := 0; i < 30; i++ {
				urls = append(urls, fmt.Sprintf("https://example.com/page-%d", i))
			}
			return urls, nil
		}}

		result, err := s.Scrape(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, sitesmith.MaxPagesToScrape, result.TotalPages)
	})

	t.Run("deduplicates candidates including the homepage", func(t *testing.T) {
		t.Parallel()

		s := newTestScraper()
		s.Discoverer = &mock.Discoverer{DiscoverFn: func(html, baseURL string, limit int) ([]string, error) {
			return []string{
				"https://example.com",
				"https://example.com/about",
				"https://example.com/about",
			}, nil
		}}

		result, err := s.Scrape(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalPages)
	})

	t.Run("falls back to the sitemap when discovery is empty", func(t *testing.T) {
		t.Parallel()

		s := newTestScraper()
		s.Sitemaps = &mock.SitemapSource{DiscoverURLsFn: func(ctx context.Context, baseURL string, limit int) ([]string, error) {
			return []string{"https://example.com/from-sitemap"}, nil
		}}

		result, err := s.Scrape(context.Background(), "https://example.com")
		require.NoError(t, err)

		require.Len(t, result.Pages, 2)
		assert.Equal(t, "https://example.com/from-sitemap", result.Pages[1].URL)
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		t.Parallel()

		s := newTestScraper()
		_, err := s.Scrape(context.Background(), "   ")
		require.Error(t, err)
		assert.Equal(t, sitesmith.EINVALID, sitesmith.ErrorCode(err))
	})

	t.Run("caches the ruleset per domain", func(t *testing.T) {
		t.Parallel()

		var calls int
		s := newTestScraper()
		s.Robots = &mock.RobotsService{FetchRulesetFn: func(ctx context.Context, siteURL string) (*sitesmith.Ruleset, error) {
			calls++
			return &sitesmith.Ruleset{}, nil
		}}

		_, err := s.Scrape(context.Background(), "https://example.com")
		require.NoError(t, err)
		_, err = s.Scrape(context.Background(), "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
	})
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first wait per domain is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(time.Hour)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "a.example"))
		require.NoError(t, limiter.Wait(context.Background(), "b.example"))
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("second wait on the same domain is delayed", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(50 * time.Millisecond)

		require.NoError(t, limiter.Wait(context.Background(), "a.example"))
		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "a.example"))
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(time.Hour)
		require.NoError(t, limiter.Wait(context.Background(), "a.example"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		require.Error(t, limiter.Wait(ctx, "a.example"))
	})
}
