package main

import (
	"fmt"

	"sitesmith"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	doc, err := deps.Store.Load(deps.Ctx, sitesmith.NormalizeURL(c.URL))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: no knowledge for %q. Run 'sitesmith research %s' first.\n", c.URL, c.URL)
		return err
	}

	report, err := deps.Writer.WriteReport(deps.Ctx, doc.Metadata.URL, sitesmith.RenderContext(doc))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesmith.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report.MarkdownReport)
	return nil
}
