package gemini_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesmith"
	"sitesmith/gemini"
)

func TestBuildGapPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes URL and content", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildGapPrompt("site content here", "https://example.com")
		assert.Contains(t, prompt, "https://example.com")
		assert.Contains(t, prompt, "site content here")
	})

	t.Run("bounds the content sample", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", sitesmith.MaxGapContextChars*2)
		prompt := gemini.BuildGapPrompt(long, "https://example.com")
		assert.Less(t, len(prompt), sitesmith.MaxGapContextChars+500)
	})
}

func TestBuildGapConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildGapConfig()
	require.NotNil(t, config.ResponseSchema)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	assert.Contains(t, config.ResponseSchema.Properties, "has_gaps")
	assert.Contains(t, config.ResponseSchema.Properties, "recommended_searches")
}

func TestBuildPlanPrompt(t *testing.T) {
	t.Parallel()

	t.Run("covers the no-content fallback", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPlanPrompt("https://example.com", "")
		assert.Contains(t, prompt, "could not be scraped")
	})

	t.Run("includes known content when available", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPlanPrompt("https://example.com", "what we know")
		assert.Contains(t, prompt, "what we know")
		assert.NotContains(t, prompt, "could not be scraped")
	})

	t.Run("bounds the content sample", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", sitesmith.MaxPlanContextChars*2)
		prompt := gemini.BuildPlanPrompt("https://example.com", long)
		assert.Less(t, len(prompt), sitesmith.MaxPlanContextChars+500)
	})
}

func TestBuildSearchPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSearchPrompt(sitesmith.SearchItem{
		Query:  "Example Inc founders",
		Reason: "the site does not name its founders",
	})
	assert.Contains(t, prompt, "Example Inc founders")
	assert.Contains(t, prompt, "does not name its founders")
}

func TestBuildSearchConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildSearchConfig()
	require.Len(t, config.Tools, 1)
	assert.NotNil(t, config.Tools[0].GoogleSearch)
}

func TestBuildNamePrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildNamePrompt(strings.Repeat("y", sitesmith.MaxNameSampleChars*2), "https://example.com")
	assert.Contains(t, prompt, "https://example.com")
	assert.Less(t, len(prompt), sitesmith.MaxNameSampleChars+500)
}

func TestBuildReportPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildReportPrompt("https://example.com", "knowledge context")
	assert.Contains(t, prompt, "https://example.com")
	assert.Contains(t, prompt, "knowledge context")
}

func TestBuildAskPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildAskPrompt("Example Inc", "https://example.com", "the knowledge", "who runs this?")
	assert.Contains(t, prompt, "Example Inc")
	assert.Contains(t, prompt, "the knowledge")
	assert.Contains(t, prompt, "Question: who runs this?")
}
