package main

import (
	"fmt"

	"sitesmith"
)

// Run executes the export command. Export always scrapes fresh because
// page HTML is not persisted in knowledge documents.
func (c *ExportCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesmith.ErrorMessage(err))
		return err
	}
	if !result.Success {
		for _, pe := range result.Errors {
			fmt.Fprintf(deps.Stderr, "  %s\n", pe.String())
		}
		return sitesmith.Errorf(sitesmith.EUNAVAILABLE, "could not scrape %q", c.URL)
	}

	dir, err := deps.Exporter.Export(deps.Ctx, result)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesmith.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(result.Pages), dir)
	return nil
}
