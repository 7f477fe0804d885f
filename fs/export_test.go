package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesmith"
	"sitesmith/fs"
	"sitesmith/mock"
)

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes one markdown file per page", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		conv := &mock.Converter{ConvertFn: func(ctx context.Context, html string) (string, error) {
			return "# Converted", nil
		}}
		exporter := fs.NewExporter(dir, conv)

		result := &sitesmith.ScrapeResult{
			SourceURL: "https://www.example.com",
			Pages: []sitesmith.PageRecord{
				{URL: "https://example.com", PageType: sitesmith.PageTypeHomepage, Title: "Home", ContentHTML: "<h1>Home</h1>"},
				{URL: "https://example.com/about/team", PageType: sitesmith.PageTypeSubpage, Title: "Team", ContentHTML: "<h1>Team</h1>"},
			},
			TotalPages: 2,
			Success:    true,
		}

		siteDir, err := exporter.Export(context.Background(), result)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "example_com"), siteDir)

		home, err := os.ReadFile(filepath.Join(siteDir, "index.md"))
		require.NoError(t, err)
		assert.Contains(t, string(home), "url: https://example.com")
		assert.Contains(t, string(home), `title: "Home"`)
		assert.Contains(t, string(home), "# Converted")

		team, err := os.ReadFile(filepath.Join(siteDir, "about_team.md"))
		require.NoError(t, err)
		assert.Contains(t, string(team), "type: subpage")
	})

	t.Run("falls back to plain text when conversion fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		conv := &mock.Converter{ConvertFn: func(ctx context.Context, html string) (string, error) {
			return "", sitesmith.Errorf(sitesmith.EINTERNAL, "conversion failed")
		}}
		exporter := fs.NewExporter(dir, conv)

		result := &sitesmith.ScrapeResult{
			SourceURL: "https://example.com",
			Pages: []sitesmith.PageRecord{
				{URL: "https://example.com", Content: "plain body text", ContentHTML: "<p>plain body text</p>"},
			},
			TotalPages: 1,
			Success:    true,
		}

		siteDir, err := exporter.Export(context.Background(), result)
		require.NoError(t, err)

		home, err := os.ReadFile(filepath.Join(siteDir, "index.md"))
		require.NoError(t, err)
		assert.Contains(t, string(home), "plain body text")
	})

	t.Run("rejects empty results", func(t *testing.T) {
		t.Parallel()

		exporter := fs.NewExporter(t.TempDir(), &mock.Converter{})
		_, err := exporter.Export(context.Background(), &sitesmith.ScrapeResult{})
		require.Error(t, err)
		assert.Equal(t, sitesmith.EINVALID, sitesmith.ErrorCode(err))
	})
}
