package mock

import (
	"context"

	"sitesmith"
)

var _ sitesmith.RobotsService = (*RobotsService)(nil)

// RobotsService is a mock implementation of sitesmith.RobotsService.
type RobotsService struct {
	FetchRulesetFn func(ctx context.Context, siteURL string) (*sitesmith.Ruleset, error)
}

func (s *RobotsService) FetchRuleset(ctx context.Context, siteURL string) (*sitesmith.Ruleset, error) {
	return s.FetchRulesetFn(ctx, siteURL)
}
