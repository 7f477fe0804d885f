// Package gemini implements sitesmith's language-model-backed capabilities
// using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"

	"sitesmith"
)

const model = "gemini-2.5-flash"

// NewClient creates a Gemini API client from an API key.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, sitesmith.Errorf(sitesmith.EINVALID, "Gemini API key required")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// generateText runs one generation call and returns the response text.
func generateText(ctx context.Context, client *genai.Client, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", sitesmith.Errorf(sitesmith.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// generateJSON runs one structured-output generation call and decodes the
// response into out.
func generateJSON(ctx context.Context, client *genai.Client, prompt string, config *genai.GenerateContentConfig, out any) error {
	text, err := generateText(ctx, client, prompt, config)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return sitesmith.Errorf(sitesmith.EINTERNAL, "gemini returned malformed JSON: %v", err)
	}
	return nil
}

func systemInstruction(text string) *genai.Content {
	return &genai.Content{
		Parts: []*genai.Part{{Text: text}},
	}
}
