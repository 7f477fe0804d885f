package main

import (
	"fmt"

	"sitesmith"
)

// Run executes the cached command.
func (c *CachedCmd) Run(deps *Dependencies) error {
	url := sitesmith.NormalizeURL(c.URL)
	if url == "" {
		return sitesmith.Errorf(sitesmith.EINVALID, "URL is required")
	}

	if !deps.Store.Has(deps.Ctx, url) {
		fmt.Fprintf(deps.Stdout, "%s: not cached\n", url)
		return nil
	}

	doc, err := deps.Store.Load(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stdout, "%s: cached but unreadable\n", url)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s: cached (key %s)\n", url, deps.Store.Key(url))
	fmt.Fprintf(deps.Stdout, "  Name:          %s\n", doc.Metadata.Name)
	fmt.Fprintf(deps.Stdout, "  Created:       %s\n", doc.Metadata.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(deps.Stdout, "  Pages scraped: %d\n", doc.Metadata.PagesScraped)
	fmt.Fprintf(deps.Stdout, "  Has searches:  %t\n", doc.Metadata.HasSecondary)
	return nil
}
