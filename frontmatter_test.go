package sitenav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitenav"
)

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()

	t.Run("reads double-quoted title and integer order", func(t *testing.T) {
		t.Parallel()

		content := "---\ntitle: \"Storage Engines\"\norder: 2\n---\n\n# Storage Engines\n"

		meta := sitenav.ParseFrontMatter(content)

		assert.Equal(t, "Storage Engines", meta.Title)
		require.NotNil(t, meta.Order)
		assert.Equal(t, 2, *meta.Order)
	})

	t.Run("reads single-quoted title", func(t *testing.T) {
		t.Parallel()

		meta := sitenav.ParseFrontMatter("---\ntitle: 'Joins'\n---\n")

		assert.Equal(t, "Joins", meta.Title)
		assert.Nil(t, meta.Order)
	})

	t.Run("reads negative order", func(t *testing.T) {
		t.Parallel()

		meta := sitenav.ParseFrontMatter("---\norder: -1\n---\n")

		require.NotNil(t, meta.Order)
		assert.Equal(t, -1, *meta.Order)
	})

	t.Run("ignores unquoted titles", func(t *testing.T) {
		t.Parallel()

		meta := sitenav.ParseFrontMatter("---\ntitle: Storage Engines\n---\n")

		assert.Empty(t, meta.Title)
	})

	t.Run("ignores non-integer order", func(t *testing.T) {
		t.Parallel()

		meta := sitenav.ParseFrontMatter("---\norder: \"2\"\n---\n")

		assert.Nil(t, meta.Order)
	})

	t.Run("tolerates indentation and unknown fields", func(t *testing.T) {
		t.Parallel()

		content := "---\ndraft: true\n  title: \"Caching\"\ntags: [a, b]\n  order: 4\n---\n"

		meta := sitenav.ParseFrontMatter(content)

		assert.Equal(t, "Caching", meta.Title)
		require.NotNil(t, meta.Order)
		assert.Equal(t, 4, *meta.Order)
	})

	t.Run("returns empty meta without a front-matter block", func(t *testing.T) {
		t.Parallel()

		meta := sitenav.ParseFrontMatter("# Heading\n\ntitle: \"not front matter\"\n")

		assert.Empty(t, meta.Title)
		assert.Nil(t, meta.Order)
	})

	t.Run("requires the block to start on the first line", func(t *testing.T) {
		t.Parallel()

		meta := sitenav.ParseFrontMatter("\n---\ntitle: \"Late\"\n---\n")

		assert.Empty(t, meta.Title)
	})

	t.Run("returns empty meta for an unclosed block", func(t *testing.T) {
		t.Parallel()

		meta := sitenav.ParseFrontMatter("---\ntitle: \"Dangling\"\norder: 1\n")

		assert.Empty(t, meta.Title)
		assert.Nil(t, meta.Order)
	})

	t.Run("returns empty meta for empty content", func(t *testing.T) {
		t.Parallel()

		meta := sitenav.ParseFrontMatter("")

		assert.Empty(t, meta.Title)
		assert.Nil(t, meta.Order)
	})

	t.Run("keeps the last title when repeated", func(t *testing.T) {
		t.Parallel()

		meta := sitenav.ParseFrontMatter("---\ntitle: \"First\"\ntitle: \"Second\"\n---\n")

		assert.Equal(t, "Second", meta.Title)
	})
}

func TestStripFrontMatter(t *testing.T) {
	t.Parallel()

	t.Run("removes the leading block", func(t *testing.T) {
		t.Parallel()

		content := "---\ntitle: \"Joins\"\norder: 1\n---\n\n# Joins\n"

		assert.Equal(t, "\n# Joins\n", sitenav.StripFrontMatter(content))
	})

	t.Run("leaves content without a block unchanged", func(t *testing.T) {
		t.Parallel()

		content := "# Joins\n\nSome prose.\n"

		assert.Equal(t, content, sitenav.StripFrontMatter(content))
	})

	t.Run("leaves an unclosed block unchanged", func(t *testing.T) {
		t.Parallel()

		content := "---\ntitle: \"Dangling\"\n"

		assert.Equal(t, content, sitenav.StripFrontMatter(content))
	})

	t.Run("returns empty when the block is the whole content", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, sitenav.StripFrontMatter("---\ntitle: \"Only\"\n---"))
	})
}
