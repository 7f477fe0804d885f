package sitesmith

import "context"

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., a page's main element).
	Convert(ctx context.Context, html string) (string, error)
}
