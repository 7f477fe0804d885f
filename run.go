package sitesmith

import (
	"context"
	"time"
)

// Run records one research invocation for history and debugging.
type Run struct {
	ID           string        `json:"id"`
	URL          string        `json:"url"`
	Name         string        `json:"name"`
	FromCache    bool          `json:"fromCache"`
	PagesScraped int           `json:"pagesScraped"`
	SearchesRun  int           `json:"searchesRun"`
	GapsFound    int           `json:"gapsFound"`
	Warnings     int           `json:"warnings"`
	ContextHash  string        `json:"contextHash"`
	Duration     time.Duration `json:"duration"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "run URL required")
	}
	return nil
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RunService records and retrieves research run history.
type RunService interface {
	// CreateRun records a completed research run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}
