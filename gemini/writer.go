package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"sitesmith"
)

// Ensure ReportWriter implements sitesmith.ReportWriter at compile time.
var _ sitesmith.ReportWriter = (*ReportWriter)(nil)

// ReportWriter implements sitesmith.ReportWriter using Google Gemini.
type ReportWriter struct {
	client *genai.Client
}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter(client *genai.Client) *ReportWriter {
	return &ReportWriter{client: client}
}

// WriteReport turns a site's rendered knowledge context into a research
// report.
func (w *ReportWriter) WriteReport(ctx context.Context, url string, content string) (*sitesmith.Report, error) {
	if content == "" {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "content required")
	}

	var report sitesmith.Report
	prompt := BuildReportPrompt(url, content)
	if err := generateJSON(ctx, w.client, prompt, BuildReportConfig(), &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// BuildReportConfig returns the structured-output config for report writing.
func BuildReportConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"You write research briefs about websites. Work only from the material provided; " +
				"never invent facts. Structure the report with markdown headings covering identity, " +
				"offerings, and notable details. Note explicitly where information was unavailable.",
		),
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"short_summary":   {Type: genai.TypeString, Description: "two or three sentence summary"},
				"markdown_report": {Type: genai.TypeString},
			},
			Required: []string{"short_summary", "markdown_report"},
		},
	}
}

// BuildReportPrompt builds the report writing prompt.
func BuildReportPrompt(url string, content string) string {
	return fmt.Sprintf("Write a research report about the website %s based on this material:\n\n%s", url, content)
}
