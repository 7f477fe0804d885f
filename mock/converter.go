package mock

import (
	"context"

	"sitesmith"
)

var _ sitesmith.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitesmith.Converter.
type Converter struct {
	ConvertFn func(ctx context.Context, html string) (string, error)
}

func (c *Converter) Convert(ctx context.Context, html string) (string, error) {
	return c.ConvertFn(ctx, html)
}
