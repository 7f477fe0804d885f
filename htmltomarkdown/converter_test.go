package htmltomarkdown_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesmith"
	"sitesmith/htmltomarkdown"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(context.Background(), `<h1>Title</h1><p>See <a href="https://example.com">example</a>.</p>`)
		require.NoError(t, err)

		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "[example](https://example.com)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(context.Background(), "<ul><li>one</li><li>two</li></ul>")
		require.NoError(t, err)

		assert.Contains(t, md, "- one")
		assert.Contains(t, md, "- two")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert(context.Background(), "   ")
		require.Error(t, err)
		assert.Equal(t, sitesmith.EINVALID, sitesmith.ErrorCode(err))
	})
}
