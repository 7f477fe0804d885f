package mock

import (
	"context"

	"sitesmith"
)

var _ sitesmith.RunService = (*RunService)(nil)

// RunService is a mock implementation of sitesmith.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *sitesmith.Run) error
	FindRunsFn  func(ctx context.Context, filter sitesmith.RunFilter) ([]*sitesmith.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *sitesmith.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter sitesmith.RunFilter) ([]*sitesmith.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
