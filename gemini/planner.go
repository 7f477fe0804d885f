package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"sitesmith"
)

// Ensure SearchPlanner implements sitesmith.SearchPlanner at compile time.
var _ sitesmith.SearchPlanner = (*SearchPlanner)(nil)

// SearchPlanner implements sitesmith.SearchPlanner using Google Gemini.
type SearchPlanner struct {
	client *genai.Client
}

// NewSearchPlanner creates a new SearchPlanner.
func NewSearchPlanner(client *genai.Client) *SearchPlanner {
	return &SearchPlanner{client: client}
}

// PlanSearches plans targeted web searches to fill gaps in what is known
// about a site. Content may be empty when the scrape produced nothing; the
// plan then covers basic identity questions.
func (p *SearchPlanner) PlanSearches(ctx context.Context, url string, content string) ([]sitesmith.SearchItem, error) {
	if url == "" {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "URL required")
	}

	var plan struct {
		Searches []sitesmith.SearchItem `json:"searches"`
	}
	prompt := BuildPlanPrompt(url, content)
	if err := generateJSON(ctx, p.client, prompt, BuildPlanConfig(), &plan); err != nil {
		return nil, err
	}

	if len(plan.Searches) > sitesmith.MaxSearches {
		plan.Searches = plan.Searches[:sitesmith.MaxSearches]
	}

	return plan.Searches, nil
}

// BuildPlanConfig returns the structured-output config for search planning.
func BuildPlanConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"You plan web searches that build a complete picture of a website's subject: " +
				"who they are, what they offer, and their reputation. Each search needs a concrete " +
				"reason. Prefer specific queries naming the site or organization over generic ones.",
		),
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"searches": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"reason": {Type: genai.TypeString},
							"query":  {Type: genai.TypeString},
						},
						Required: []string{"reason", "query"},
					},
				},
			},
			Required: []string{"searches"},
		},
	}
}

// BuildPlanPrompt builds the search planning prompt.
func BuildPlanPrompt(url string, content string) string {
	if content == "" {
		return fmt.Sprintf(`The website %s could not be scraped. Plan at most %d web searches to find out who or what is behind it, what they do or offer, and anything else a researcher would want to know.`,
			url, sitesmith.MaxSearches)
	}

	return fmt.Sprintf(`Website: %s

What we already know from the site:
<content>
%s
</content>

Plan at most %d web searches for important information NOT already covered above.`,
		url, sitesmith.Truncate(content, sitesmith.MaxPlanContextChars), sitesmith.MaxSearches)
}
