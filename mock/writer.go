package mock

import (
	"context"

	"sitesmith"
)

var _ sitesmith.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of sitesmith.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, url string, content string) (*sitesmith.Report, error)
}

func (w *ReportWriter) WriteReport(ctx context.Context, url string, content string) (*sitesmith.Report, error) {
	return w.WriteReportFn(ctx, url, content)
}
