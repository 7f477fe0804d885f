package slog

import (
	"context"
	"log/slog"
	"time"

	"sitesmith"
)

// Ensure LoggingRobotsService implements sitesmith.RobotsService.
var _ sitesmith.RobotsService = (*LoggingRobotsService)(nil)

// LoggingRobotsService wraps a RobotsService with logging.
type LoggingRobotsService struct {
	next   sitesmith.RobotsService
	logger *slog.Logger
}

// NewLoggingRobotsService creates a new LoggingRobotsService.
func NewLoggingRobotsService(next sitesmith.RobotsService, logger *slog.Logger) *LoggingRobotsService {
	return &LoggingRobotsService{next: next, logger: logger}
}

// FetchRuleset delegates to the wrapped service and logs the operation.
func (s *LoggingRobotsService) FetchRuleset(ctx context.Context, siteURL string) (ruleset *sitesmith.Ruleset, err error) {
	defer func(begin time.Time) {
		rules := 0
		if ruleset != nil {
			rules = len(ruleset.Disallowed)
		}
		s.logger.Info("robots fetch",
			"url", siteURL,
			"disallow_rules", rules,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchRuleset(ctx, siteURL)
}
