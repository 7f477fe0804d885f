package sitesmith_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesmith"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("returns short strings unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello", sitesmith.Truncate("hello", 10))
	})

	t.Run("cuts at the rune limit", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hel", sitesmith.Truncate("hello", 3))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "héllo", sitesmith.Truncate("héllo", 5))
		assert.Equal(t, "hé", sitesmith.Truncate("héllo", 2))
	})
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sitesmith.CollapseWhitespace("  a \n\t b   c \n"))
	assert.Equal(t, "", sitesmith.CollapseWhitespace("   \n\t  "))
}

func TestPageRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a record within caps", func(t *testing.T) {
		t.Parallel()

		page := &sitesmith.PageRecord{
			URL:      "https://example.com",
			PageType: sitesmith.PageTypeHomepage,
			Sections: []sitesmith.Section{{Heading: "About", Content: "hello"}},
			Content:  strings.Repeat("x", sitesmith.MaxContentChars),
		}
		require.NoError(t, page.Validate())
	})

	t.Run("rejects too many sections", func(t *testing.T) {
		t.Parallel()

		page := &sitesmith.PageRecord{
			Sections: make([]sitesmith.Section, sitesmith.MaxSections+1),
		}
		err := page.Validate()
		require.Error(t, err)
		assert.Equal(t, sitesmith.EINVALID, sitesmith.ErrorCode(err))
	})

	t.Run("rejects oversized section content", func(t *testing.T) {
		t.Parallel()

		page := &sitesmith.PageRecord{
			Sections: []sitesmith.Section{{
				Heading: "About",
				Content: strings.Repeat("x", sitesmith.MaxSectionChars+1),
			}},
		}
		err := page.Validate()
		require.Error(t, err)
		assert.Equal(t, sitesmith.EINVALID, sitesmith.ErrorCode(err))
	})

	t.Run("rejects oversized body content", func(t *testing.T) {
		t.Parallel()

		page := &sitesmith.PageRecord{
			Content: strings.Repeat("x", sitesmith.MaxContentChars+1),
		}
		err := page.Validate()
		require.Error(t, err)
		assert.Equal(t, sitesmith.EINVALID, sitesmith.ErrorCode(err))
	})
}

func TestSectionCaps(t *testing.T) {
	t.Parallel()

	// Content longer than the section cap must be truncated by producers;
	// the constant itself anchors the contract.
	assert.Equal(t, 1000, sitesmith.MaxSectionChars)
	assert.Equal(t, 10, sitesmith.MaxSections)
	assert.Len(t, sitesmith.Truncate(strings.Repeat("x", 5000), sitesmith.MaxSectionChars), sitesmith.MaxSectionChars)
}
