package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesmith"
	"sitesmith/fs"
)

func TestKnowledgeStore_Key(t *testing.T) {
	t.Parallel()

	store := fs.NewKnowledgeStore(t.TempDir())

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, store.Key("https://example.com"), store.Key("https://example.com"))
	})

	t.Run("derives from the domain", func(t *testing.T) {
		t.Parallel()

		key := store.Key("https://www.example.com")
		assert.True(t, strings.HasPrefix(key, "example_com_"), key)

		// 12 hex chars of hash after the domain stem.
		suffix := strings.TrimPrefix(key, "example_com_")
		assert.Len(t, suffix, 12)
	})

	t.Run("distinct URLs on one domain get distinct keys", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, store.Key("https://example.com"), store.Key("https://example.com/about"))
	})
}

func TestKnowledgeStore_SaveLoad(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewKnowledgeStore(dir)
		ctx := context.Background()

		doc := sitesmith.NewKnowledgeDocument("https://example.com",
			&sitesmith.ScrapeResult{
				Pages:      []sitesmith.PageRecord{{URL: "https://example.com", PageType: sitesmith.PageTypeHomepage, Title: "Example"}},
				TotalPages: 1,
				Success:    true,
			},
			"Example Inc", []string{"a finding"})

		location, err := store.Save(ctx, doc, "https://example.com")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(location, dir))
		assert.True(t, store.Has(ctx, "https://example.com"))

		loaded, err := store.Load(ctx, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "Example Inc", loaded.Metadata.Name)
		require.Len(t, loaded.Primary.Pages, 1)
		assert.Equal(t, "Example", loaded.Primary.Pages[0].Title)
		require.Len(t, loaded.Secondary.Searches, 1)
		assert.Equal(t, "a finding", loaded.Secondary.Searches[0].Result)
	})

	t.Run("missing document is not found", func(t *testing.T) {
		t.Parallel()

		store := fs.NewKnowledgeStore(t.TempDir())
		ctx := context.Background()

		assert.False(t, store.Has(ctx, "https://example.com"))
		_, err := store.Load(ctx, "https://example.com")
		require.Error(t, err)
		assert.Equal(t, sitesmith.ENOTFOUND, sitesmith.ErrorCode(err))
	})

	t.Run("corrupt document is treated as a miss", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewKnowledgeStore(dir)
		ctx := context.Background()

		path := filepath.Join(dir, store.Key("https://example.com")+".json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := store.Load(ctx, "https://example.com")
		require.Error(t, err)
		assert.Equal(t, sitesmith.ENOTFOUND, sitesmith.ErrorCode(err))
	})

	t.Run("page HTML is not persisted", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewKnowledgeStore(dir)
		ctx := context.Background()

		doc := sitesmith.NewKnowledgeDocument("https://example.com",
			&sitesmith.ScrapeResult{
				Pages:      []sitesmith.PageRecord{{URL: "https://example.com", ContentHTML: "<main>secret</main>"}},
				TotalPages: 1,
				Success:    true,
			}, "", nil)

		location, err := store.Save(ctx, doc, "https://example.com")
		require.NoError(t, err)

		data, err := os.ReadFile(location)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "secret")
	})
}
