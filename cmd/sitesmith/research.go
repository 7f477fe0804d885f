package main

import (
	"fmt"

	"sitesmith"
)

// Run executes the research command.
func (c *ResearchCmd) Run(deps *Dependencies) error {
	result, err := deps.Research.RunResearch(deps.Ctx, c.URL, c.Force)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesmith.ErrorMessage(err))
		return err
	}

	source := "fresh scrape"
	if result.Status.FromCache {
		source = "cache"
	}
	fmt.Fprintf(deps.Stdout, "Researched %s (%s)\n", result.Name, source)
	fmt.Fprintf(deps.Stdout, "  Pages scraped: %d\n", result.Status.PagesScraped)
	fmt.Fprintf(deps.Stdout, "  Searches run:  %d\n", result.Status.SearchesRun)
	fmt.Fprintf(deps.Stdout, "  Gaps found:    %d\n", result.Status.GapsFound)

	for _, pe := range result.PageErrors {
		fmt.Fprintf(deps.Stdout, "  Page error: %s\n", pe.String())
	}
	for _, w := range result.Status.Warnings {
		fmt.Fprintf(deps.Stdout, "  Warning: %s\n", w)
	}

	if c.Context {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, result.Context)
	}

	return nil
}
