package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"sitesmith"
)

// Ensure Asker implements sitesmith.Asker at compile time.
var _ sitesmith.Asker = (*Asker)(nil)

// Asker implements sitesmith.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client) *Asker {
	return &Asker{client: client}
}

// Ask answers a natural language question about a site from its rendered
// knowledge context.
func (a *Asker) Ask(ctx context.Context, name, url, content, question string) (string, error) {
	if question == "" {
		return "", sitesmith.Errorf(sitesmith.EINVALID, "question required")
	}
	if content == "" {
		return "", sitesmith.Errorf(sitesmith.ENOTFOUND, "no knowledge available for %q", url)
	}

	return generateText(ctx, a.client, BuildAskPrompt(name, url, content, question), BuildAskConfig())
}

// BuildAskConfig returns the config for question answering.
func BuildAskConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(
			"You answer questions about a website using only the knowledge provided. " +
				"If the answer is not in the knowledge, say you don't know rather than guessing.",
		),
		Temperature: &temp,
	}
}

// BuildAskPrompt builds the question answering prompt.
func BuildAskPrompt(name, url, content, question string) string {
	return fmt.Sprintf(`You know the following about %s (%s):

<knowledge>
%s
</knowledge>

Question: %s`, name, url, content, question)
}
