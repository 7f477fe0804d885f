package main

import (
	"fmt"
	"time"

	"sitesmith"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := sitesmith.RunFilter{Limit: c.Limit}
	if c.URL != "" {
		url := sitesmith.NormalizeURL(c.URL)
		filter.URL = &url
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesmith.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded.")
		return nil
	}

	for _, run := range runs {
		source := "scrape"
		if run.FromCache {
			source = "cache"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-7s pages=%d searches=%d gaps=%d warnings=%d %s (%s)\n",
			run.CreatedAt.Format("2006-01-02 15:04"), source,
			run.PagesScraped, run.SearchesRun, run.GapsFound, run.Warnings,
			run.URL, run.Duration.Round(10*time.Millisecond))
	}
	return nil
}
