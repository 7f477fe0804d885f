package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"sitesmith"
)

// Ensure GapAnalyzer implements sitesmith.GapAnalyzer at compile time.
var _ sitesmith.GapAnalyzer = (*GapAnalyzer)(nil)

// GapAnalyzer implements sitesmith.GapAnalyzer using Google Gemini.
type GapAnalyzer struct {
	client *genai.Client
}

// NewGapAnalyzer creates a new GapAnalyzer.
func NewGapAnalyzer(client *genai.Client) *GapAnalyzer {
	return &GapAnalyzer{client: client}
}

// AnalyzeGaps judges whether the extracted site content is missing
// information a reader researching the site would expect.
func (a *GapAnalyzer) AnalyzeGaps(ctx context.Context, content string, url string) (*sitesmith.GapAnalysis, error) {
	if content == "" {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "content required")
	}

	var analysis sitesmith.GapAnalysis
	prompt := BuildGapPrompt(content, url)
	if err := generateJSON(ctx, a.client, prompt, BuildGapConfig(), &analysis); err != nil {
		return nil, err
	}

	if len(analysis.RecommendedSearches) > sitesmith.MaxSearches {
		analysis.RecommendedSearches = analysis.RecommendedSearches[:sitesmith.MaxSearches]
	}

	return &analysis, nil
}

// BuildGapConfig returns the structured-output config for gap analysis.
func BuildGapConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"You are a research analyst reviewing content scraped from a website. " +
				"Judge whether the content gives a complete picture of who or what the site is about, " +
				"what they offer or do, and how to learn more. Be conservative: only report gaps " +
				"that genuinely limit understanding, not nice-to-haves.",
		),
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"has_gaps":         {Type: genai.TypeBoolean},
				"confidence_score": {Type: genai.TypeInteger, Description: "1-10 confidence that the content is complete"},
				"gaps_found": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"recommended_searches": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"reasoning": {Type: genai.TypeString},
			},
			Required: []string{"has_gaps", "confidence_score", "gaps_found", "recommended_searches", "reasoning"},
		},
	}
}

// BuildGapPrompt builds the gap analysis prompt. Content is truncated to
// keep the request bounded.
func BuildGapPrompt(content string, url string) string {
	return fmt.Sprintf(`Website: %s

Scraped content:
<content>
%s
</content>

Identify what important information is missing from this content. Recommend at most %d web searches that would fill the gaps.`,
		url, sitesmith.Truncate(content, sitesmith.MaxGapContextChars), sitesmith.MaxSearches)
}
