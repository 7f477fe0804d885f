package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"sitesmith"
)

// Ensure NameExtractor implements sitesmith.NameExtractor at compile time.
var _ sitesmith.NameExtractor = (*NameExtractor)(nil)

// NameExtractor implements sitesmith.NameExtractor using Google Gemini.
type NameExtractor struct {
	client *genai.Client
}

// NewNameExtractor creates a new NameExtractor.
func NewNameExtractor(client *genai.Client) *NameExtractor {
	return &NameExtractor{client: client}
}

// ExtractName pulls the name of the site's main subject from a content
// sample. Returns an empty string when the model can't find one, so the
// caller can fall back to a URL-derived name.
func (e *NameExtractor) ExtractName(ctx context.Context, text string, url string) (string, error) {
	if text == "" {
		return "", nil
	}

	var out struct {
		Name string `json:"name"`
	}
	prompt := BuildNamePrompt(text, url)
	if err := generateJSON(ctx, e.client, prompt, BuildNameConfig(), &out); err != nil {
		return "", err
	}

	name := strings.TrimSpace(out.Name)
	if strings.EqualFold(name, "unknown") {
		return "", nil
	}
	return name, nil
}

// BuildNameConfig returns the structured-output config for name extraction.
func BuildNameConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"Extract the name of the person, company or organization a website is about. " +
				"Return the name exactly as written in the content. If no clear name appears, " +
				"return the single word: unknown.",
		),
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {Type: genai.TypeString},
			},
			Required: []string{"name"},
		},
	}
}

// BuildNamePrompt builds the name extraction prompt from a bounded sample.
func BuildNamePrompt(text string, url string) string {
	return fmt.Sprintf("Website: %s\n\nContent sample:\n<content>\n%s\n</content>\n\nWhose website is this?",
		url, sitesmith.Truncate(text, sitesmith.MaxNameSampleChars))
}
