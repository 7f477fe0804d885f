package mock

import (
	"sitesmith"
)

var _ sitesmith.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitesmith.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitesmith.PageRecord, error)
}

func (e *Extractor) Extract(html string) (*sitesmith.PageRecord, error) {
	return e.ExtractFn(html)
}
