package etree_test

import (
	"bytes"
	"regexp"
	"testing"

	beevik "github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitenav"
	"sitenav/etree"
)

// locs parses a sitemap document and returns its <loc> values in order.
func locs(t *testing.T, data []byte) []string {
	t.Helper()

	doc := beevik.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	root := doc.Root()
	require.NotNil(t, root)
	require.Equal(t, "urlset", root.Tag)

	var out []string
	for _, entry := range root.SelectElements("url") {
		loc := entry.SelectElement("loc")
		require.NotNil(t, loc)
		out = append(out, loc.Text())
	}
	return out
}

func TestSitemapWriter_WriteSitemap(t *testing.T) {
	t.Parallel()

	sections := []sitenav.Section{
		{
			Title: sitenav.SectionFundamentals,
			Items: []*sitenav.Item{
				{Title: "Introduction", Href: "/"},
				{Title: "Vocabulary", Href: "/fund-vocabulary"},
			},
		},
		{
			Title: sitenav.SectionDatabases,
			Items: []*sitenav.Item{
				{
					Title: "Guides",
					Href:  "/guides",
					Group: true,
					Children: []*sitenav.Item{
						{Title: "Storage", Href: "/guides/db-storage"},
					},
				},
			},
		},
	}

	t.Run("writes one entry per navigable page in display order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := etree.NewSitemapWriter().WriteSitemap(&buf, "https://example.com", sections, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/",
			"https://example.com/fund-vocabulary",
			"https://example.com/guides/db-storage",
		}, locs(t, buf.Bytes()))
		assert.Contains(t, buf.String(), "http://www.sitemaps.org/schemas/sitemap/0.9")
	})

	t.Run("excludes group items but keeps their children", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := etree.NewSitemapWriter().WriteSitemap(&buf, "https://example.com", sections, nil)

		require.NoError(t, err)
		assert.NotContains(t, locs(t, buf.Bytes()), "https://example.com/guides")
		assert.Contains(t, locs(t, buf.Bytes()), "https://example.com/guides/db-storage")
	})

	t.Run("joins routes under a base URL with a path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := etree.NewSitemapWriter().WriteSitemap(&buf, "https://example.com/learn/", sections, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/learn/",
			"https://example.com/learn/fund-vocabulary",
			"https://example.com/learn/guides/db-storage",
		}, locs(t, buf.Bytes()))
	})

	t.Run("applies the route filter", func(t *testing.T) {
		t.Parallel()

		filter := &sitenav.RouteFilter{
			Exclude: []*regexp.Regexp{regexp.MustCompile(`^/guides/`)},
		}

		var buf bytes.Buffer
		err := etree.NewSitemapWriter().WriteSitemap(&buf, "https://example.com", sections, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/",
			"https://example.com/fund-vocabulary",
		}, locs(t, buf.Bytes()))
	})

	t.Run("rejects a relative base URL", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := etree.NewSitemapWriter().WriteSitemap(&buf, "/not-absolute", sections, nil)

		require.Error(t, err)
		assert.Equal(t, sitenav.EINVALID, sitenav.ErrorCode(err))
		assert.Zero(t, buf.Len())
	})

	t.Run("writes an empty urlset for empty navigation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := etree.NewSitemapWriter().WriteSitemap(&buf, "https://example.com", nil, nil)

		require.NoError(t, err)
		assert.Empty(t, locs(t, buf.Bytes()))
	})
}
