package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sitesmith"
)

// Compile-time interface verification.
var _ sitesmith.RunService = (*RunService)(nil)

// RunService implements sitesmith.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a completed research run.
func (s *RunService) CreateRun(ctx context.Context, run *sitesmith.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, url, name, from_cache, pages_scraped, searches_run, gaps_found, warnings, context_hash, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.URL, run.Name, run.FromCache, run.PagesScraped, run.SearchesRun,
		run.GapsFound, run.Warnings, run.ContextHash, run.Duration.Milliseconds(),
		run.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter sitesmith.RunFilter) ([]*sitesmith.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, name, from_cache, pages_scraped, searches_run, gaps_found, warnings, context_hash, duration_ms, created_at FROM runs WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*sitesmith.Run
	for rows.Next() {
		var run sitesmith.Run
		var durationMS int64
		var createdAt string

		if err := rows.Scan(&run.ID, &run.URL, &run.Name, &run.FromCache, &run.PagesScraped,
			&run.SearchesRun, &run.GapsFound, &run.Warnings, &run.ContextHash,
			&durationMS, &createdAt); err != nil {
			return nil, err
		}

		run.Duration = time.Duration(durationMS) * time.Millisecond
		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
