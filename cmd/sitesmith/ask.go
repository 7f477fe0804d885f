package main

import (
	"fmt"

	"sitesmith"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	doc, err := deps.Store.Load(deps.Ctx, sitesmith.NormalizeURL(c.URL))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: no knowledge for %q. Run 'sitesmith research %s' first.\n", c.URL, c.URL)
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, doc.Metadata.Name, doc.Metadata.URL, sitesmith.RenderContext(doc), c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitesmith.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
