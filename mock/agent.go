package mock

import (
	"context"

	"sitesmith"
)

var _ sitesmith.GapAnalyzer = (*GapAnalyzer)(nil)

// GapAnalyzer is a mock implementation of sitesmith.GapAnalyzer.
type GapAnalyzer struct {
	AnalyzeGapsFn func(ctx context.Context, content string, url string) (*sitesmith.GapAnalysis, error)
}

func (a *GapAnalyzer) AnalyzeGaps(ctx context.Context, content string, url string) (*sitesmith.GapAnalysis, error) {
	return a.AnalyzeGapsFn(ctx, content, url)
}

var _ sitesmith.SearchPlanner = (*SearchPlanner)(nil)

// SearchPlanner is a mock implementation of sitesmith.SearchPlanner.
type SearchPlanner struct {
	PlanSearchesFn func(ctx context.Context, url string, content string) ([]sitesmith.SearchItem, error)
}

func (p *SearchPlanner) PlanSearches(ctx context.Context, url string, content string) ([]sitesmith.SearchItem, error) {
	return p.PlanSearchesFn(ctx, url, content)
}

var _ sitesmith.WebSearcher = (*WebSearcher)(nil)

// WebSearcher is a mock implementation of sitesmith.WebSearcher.
type WebSearcher struct {
	SearchFn func(ctx context.Context, item sitesmith.SearchItem) (string, error)
}

func (s *WebSearcher) Search(ctx context.Context, item sitesmith.SearchItem) (string, error) {
	return s.SearchFn(ctx, item)
}

var _ sitesmith.NameExtractor = (*NameExtractor)(nil)

// NameExtractor is a mock implementation of sitesmith.NameExtractor.
type NameExtractor struct {
	ExtractNameFn func(ctx context.Context, text string, url string) (string, error)
}

func (e *NameExtractor) ExtractName(ctx context.Context, text string, url string) (string, error) {
	return e.ExtractNameFn(ctx, text, url)
}
