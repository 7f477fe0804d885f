package slog

import (
	"context"
	"log/slog"
	"time"

	"sitesmith"
)

// Ensure LoggingScraper implements sitesmith.SiteScraper.
var _ sitesmith.SiteScraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a SiteScraper with a per-scrape summary log.
type LoggingScraper struct {
	next   sitesmith.SiteScraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next sitesmith.SiteScraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the result summary.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (result *sitesmith.ScrapeResult, err error) {
	defer func(begin time.Time) {
		if result == nil {
			s.logger.Warn("scrape failed", "url", url, "duration", time.Since(begin), "err", err)
			return
		}
		s.logger.Info("scrape",
			"url", url,
			"pages", result.TotalPages,
			"errors", len(result.Errors),
			"success", result.Success,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
