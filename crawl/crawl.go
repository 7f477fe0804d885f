// Package crawl orchestrates site scrapes: homepage fetch, link discovery,
// robots filtering, politeness-limited batch fetching and per-page error
// bookkeeping.
package crawl

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"sitesmith"
	"sitesmith/bloom"
)

// Crawl policy defaults.
const (
	// DefaultBatchSize is the number of subpages fetched concurrently per
	// batch.
	DefaultBatchSize = 3

	// DefaultPolitenessDelay spaces batches against the same domain.
	DefaultPolitenessDelay = 500 * time.Millisecond

	// expectedURLs sizes the per-scrape dedup filter.
	expectedURLs = 1024

	// dedupFPRate is acceptable because a false positive only skips one
	// candidate page.
	dedupFPRate = 0.001
)

// Ensure Scraper implements sitesmith.SiteScraper at compile time.
var _ sitesmith.SiteScraper = (*Scraper)(nil)

// Scraper coordinates a bounded scrape of one site. It fetches the
// homepage, discovers and ranks internal links, filters them through the
// site's robots policy and fetches the survivors in small concurrent
// batches.
type Scraper struct {
	Fetcher    sitesmith.Fetcher
	Extractor  sitesmith.Extractor
	Discoverer sitesmith.LinkDiscoverer
	Robots     sitesmith.RobotsService
	Sitemaps   sitesmith.SitemapSource
	Limiter    *DomainLimiter
	Rulesets   *RulesetCache

	MaxPages  int
	BatchSize int
}

// NewScraper creates a Scraper with default crawl policy.
func NewScraper(fetcher sitesmith.Fetcher, extractor sitesmith.Extractor, discoverer sitesmith.LinkDiscoverer, robots sitesmith.RobotsService) *Scraper {
	return &Scraper{
		Fetcher:    fetcher,
		Extractor:  extractor,
		Discoverer: discoverer,
		Robots:     robots,
		Limiter:    NewDomainLimiter(DefaultPolitenessDelay),
		Rulesets:   NewRulesetCache(),
		MaxPages:   sitesmith.MaxPagesToScrape,
		BatchSize:  DefaultBatchSize,
	}
}

// Scrape crawls the site rooted at rawURL up to the page budget. The
// homepage counts against the budget; if it cannot be fetched the result
// is unsuccessful and carries the classified failure. Subpage failures
// never abort the scrape.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*sitesmith.ScrapeResult, error) {
	siteURL := sitesmith.NormalizeURL(rawURL)
	if siteURL == "" {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "URL is required")
	}
	domain := sitesmith.URLDomain(siteURL)

	result := &sitesmith.ScrapeResult{
		SourceURL: siteURL,
		ScrapedAt: time.Now().UTC(),
		Pages:     []sitesmith.PageRecord{},
		Errors:    []sitesmith.PageError{},
	}

	ruleset := s.ruleset(ctx, siteURL)

	if err := s.Limiter.Wait(ctx, domain); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, siteURL)
	if err != nil {
		result.Errors = append(result.Errors, sitesmith.PageError{
			URL:    siteURL,
			Reason: sitesmith.FetchReason(err),
		})
		return result, nil
	}

	homepage, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	homepage.URL = siteURL
	homepage.PageType = sitesmith.PageTypeHomepage
	result.Pages = append(result.Pages, *homepage)

	candidates := s.candidates(ctx, html, siteURL, ruleset)

	seen := bloom.NewFilter(expectedURLs, dedupFPRate)
	seen.Add(siteURL)
	seen.Add(siteURL + "/")

	var queue []string
	for _, u := range candidates {
		if len(queue) >= s.MaxPages-1 {
			break
		}
		if seen.TestAndAdd(u) {
			continue
		}
		queue = append(queue, u)
	}

	s.fetchBatches(ctx, domain, queue, result)

	result.TotalPages = len(result.Pages)
	result.Success = result.TotalPages > 0
	return result, nil
}

// ruleset returns the cached robots policy for the site, fetching it on
// first use. Fetch failures fall open to an empty policy.
func (s *Scraper) ruleset(ctx context.Context, siteURL string) *sitesmith.Ruleset {
	domain := sitesmith.URLDomain(siteURL)
	if cached := s.Rulesets.Get(domain); cached != nil {
		return cached
	}

	ruleset, err := s.Robots.FetchRuleset(ctx, siteURL)
	if err != nil || ruleset == nil {
		ruleset = &sitesmith.Ruleset{}
	}
	s.Rulesets.Put(domain, ruleset)
	return ruleset
}

// candidates discovers subpage URLs from the homepage markup, falling
// back to the sitemap when the homepage yields none, and drops URLs the
// robots policy disallows. Filtering happens before the budget cap so a
// blocked link doesn't waste a slot.
func (s *Scraper) candidates(ctx context.Context, html, siteURL string, ruleset *sitesmith.Ruleset) []string {
	discovered, err := s.Discoverer.Discover(html, siteURL, s.MaxPages-1)
	if err != nil {
		discovered = nil
	}

	if len(discovered) == 0 && s.Sitemaps != nil {
		if fromSitemap, err := s.Sitemaps.DiscoverURLs(ctx, siteURL, s.MaxPages-1); err == nil {
			discovered = fromSitemap
		}
	}

	allowed := discovered[:0]
	for _, u := range discovered {
		if ruleset.Allowed(u) {
			allowed = append(allowed, u)
		}
	}
	return allowed
}

// fetchBatches fetches queued subpages in concurrent batches, waiting out
// the politeness delay before each batch. Page order within the result
// follows queue order regardless of completion order.
func (s *Scraper) fetchBatches(ctx context.Context, domain string, queue []string, result *sitesmith.ScrapeResult) {
	type fetched struct {
		page *sitesmith.PageRecord
		err  *sitesmith.PageError
	}

	for start := 0; start < len(queue); start += s.BatchSize {
		end := start + s.BatchSize
		if end > len(queue) {
			end = len(queue)
		}
		batch := queue[start:end]

		if err := s.Limiter.Wait(ctx, domain); err != nil {
			return
		}

		results := make([]fetched, len(batch))
		g, gctx := errgroup.WithContext(ctx)
		for i, u := range batch {
			g.Go(func() error {
				html, err := s.Fetcher.Fetch(gctx, u)
				if err != nil {
					results[i] = fetched{err: &sitesmith.PageError{
						URL:    u,
						Reason: sitesmith.FetchReason(err),
					}}
					return nil
				}

				page, err := s.Extractor.Extract(html)
				if err != nil {
					results[i] = fetched{err: &sitesmith.PageError{
						URL:    u,
						Reason: sitesmith.ReasonClientError,
					}}
					return nil
				}
				page.URL = u
				page.PageType = sitesmith.PageTypeSubpage
				results[i] = fetched{page: page}
				return nil
			})
		}
		_ = g.Wait()

		for _, r := range results {
			switch {
			case r.page != nil:
				result.Pages = append(result.Pages, *r.page)
			case r.err != nil:
				result.Errors = append(result.Errors, *r.err)
			}
		}
	}
}
