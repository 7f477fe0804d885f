package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"sitesmith"
)

// Ensure WebSearcher implements sitesmith.WebSearcher at compile time.
var _ sitesmith.WebSearcher = (*WebSearcher)(nil)

// WebSearcher implements sitesmith.WebSearcher using Gemini's grounded
// Google Search tool.
type WebSearcher struct {
	client *genai.Client
}

// NewWebSearcher creates a new WebSearcher.
func NewWebSearcher(client *genai.Client) *WebSearcher {
	return &WebSearcher{client: client}
}

// Search runs one planned search and returns a concise factual summary of
// what the web says.
func (s *WebSearcher) Search(ctx context.Context, item sitesmith.SearchItem) (string, error) {
	if item.Query == "" {
		return "", sitesmith.Errorf(sitesmith.EINVALID, "search query required")
	}

	return generateText(ctx, s.client, BuildSearchPrompt(item), BuildSearchConfig())
}

// BuildSearchConfig returns the config for grounded web searches.
func BuildSearchConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"You are a research assistant. Search the web and report only what you find, " +
				"in a short factual summary. If the search turns up nothing relevant, say so plainly.",
		),
		Temperature: &temp,
		Tools: []*genai.Tool{{
			GoogleSearch: &genai.GoogleSearch{},
		}},
	}
}

// BuildSearchPrompt builds the prompt for one planned search.
func BuildSearchPrompt(item sitesmith.SearchItem) string {
	return fmt.Sprintf("Search the web for: %s\n\nWe are searching because: %s\n\nSummarize the relevant findings in a few sentences.",
		item.Query, item.Reason)
}
