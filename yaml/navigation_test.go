package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitenav"
	navyaml "sitenav/yaml"
)

const validNavigation = `
- title: Fundamentals
  items:
    - title: Introduction
      href: /
    - title: API Design
      href: /api-design
      children:
        - title: REST
          href: /api-design/rest
- title: Databases
  items:
    - title: Transactions
      href: /db-transactions
      order: 1
`

func TestParseNavigation(t *testing.T) {
	t.Parallel()

	t.Run("parses sections with nested items", func(t *testing.T) {
		t.Parallel()

		sections, err := navyaml.ParseNavigation([]byte(validNavigation))

		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Equal(t, "Fundamentals", sections[0].Title)
		require.Len(t, sections[0].Items, 2)
		require.Len(t, sections[0].Items[1].Children, 1)
		assert.Equal(t, "/api-design/rest", sections[0].Items[1].Children[0].Href)
		require.NotNil(t, sections[1].Items[0].Order)
		assert.Equal(t, 1, *sections[1].Items[0].Order)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := navyaml.ParseNavigation([]byte("- title: [unclosed"))

		require.Error(t, err)
		assert.Equal(t, sitenav.EINVALID, sitenav.ErrorCode(err))
	})

	t.Run("rejects an empty document", func(t *testing.T) {
		t.Parallel()

		_, err := navyaml.ParseNavigation([]byte(""))

		require.Error(t, err)
		assert.Equal(t, sitenav.EINVALID, sitenav.ErrorCode(err))
		assert.Contains(t, sitenav.ErrorMessage(err), "no sections")
	})

	t.Run("rejects a section without items", func(t *testing.T) {
		t.Parallel()

		_, err := navyaml.ParseNavigation([]byte("- title: Empty\n  items: []\n"))

		require.Error(t, err)
		assert.Equal(t, sitenav.EINVALID, sitenav.ErrorCode(err))
		assert.Contains(t, sitenav.ErrorMessage(err), "Empty")
	})

	t.Run("rejects an item without an href", func(t *testing.T) {
		t.Parallel()

		_, err := navyaml.ParseNavigation([]byte("- title: Fundamentals\n  items:\n    - title: Orphan\n"))

		require.Error(t, err)
		assert.Equal(t, sitenav.EINVALID, sitenav.ErrorCode(err))
	})
}

func TestLoadNavigation(t *testing.T) {
	t.Parallel()

	t.Run("loads a navigation file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "navigation.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validNavigation), 0644))

		sections, err := navyaml.LoadNavigation(path)

		require.NoError(t, err)
		assert.Len(t, sections, 2)
	})

	t.Run("reports a missing file as not found", func(t *testing.T) {
		t.Parallel()

		_, err := navyaml.LoadNavigation(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
		assert.Equal(t, sitenav.ENOTFOUND, sitenav.ErrorCode(err))
	})
}
