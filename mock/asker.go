package mock

import (
	"context"

	"sitesmith"
)

var _ sitesmith.Asker = (*Asker)(nil)

// Asker is a mock implementation of sitesmith.Asker.
type Asker struct {
	AskFn func(ctx context.Context, name, url, content, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, name, url, content, question string) (string, error) {
	return a.AskFn(ctx, name, url, content, question)
}
