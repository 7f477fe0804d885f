// Package htmltomarkdown converts HTML fragments to markdown.
package htmltomarkdown

import (
	"context"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"sitesmith"
)

// Ensure Converter implements sitesmith.Converter at compile time.
var _ sitesmith.Converter = (*Converter)(nil)

// Converter renders HTML as commonmark with table support.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert converts an HTML fragment to markdown.
func (c *Converter) Convert(ctx context.Context, html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitesmith.Errorf(sitesmith.EINVALID, "HTML content is required")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", sitesmith.Errorf(sitesmith.EINTERNAL, "markdown conversion failed: %v", err)
	}

	return strings.TrimSpace(md), nil
}
