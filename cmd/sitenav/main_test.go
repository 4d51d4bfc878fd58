package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitenav"
	main "sitenav/cmd/sitenav"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

// syncBuffer is a goroutine-safe bytes.Buffer for commands running in the
// background.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// writeContent creates a page file with parents under root.
func writeContent(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("export default Page"), 0644))
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// --help should return nil (success) and show commands
	err := m.Run(testContext(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	// Kong should have written help to stdout with all commands
	helpOutput := stdout.String()
	expectedCommands := []string{"tree", "json", "serve", "sitemap", "watch"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}

	// Verify Kong-style formatting (Kong has "Usage:" prefix and "Flags:" section)
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
	assert.Contains(t, helpOutput, "Flags:", "Help should have Kong-style Flags section")
}

func TestMain_Run_NoArgsShowsHelpAndFails(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestMain_Run_TreeEndToEnd(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeContent(t, root, "fund-vocabulary", "page.tsx")
	writeContent(t, root, "db-storage", "page.tsx")
	writeContent(t, root, "db-storage", "sub-topic", "page.tsx")

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"--content", root, "tree", "--plain"}, stdout, stderr)

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "## Fundamentals")
	assert.Contains(t, output, "## Databases")
	assert.Contains(t, output, "Vocabulary (/fund-vocabulary)")
	assert.Contains(t, output, "Storage (/db-storage)")
	assert.Contains(t, output, "Sub Topic (/db-storage/sub-topic)")
}

func TestMain_Run_DegradesToInjectedFallback(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Fallback = []sitenav.Section{
		{Title: sitenav.SectionProjects, Items: []*sitenav.Item{
			{Title: "Stand-In Project", Href: "/proj-stand-in"},
		}},
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	missing := filepath.Join(t.TempDir(), "missing")

	err := m.Run(testContext(), []string{"--content", missing, "tree", "--plain"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Stand-In Project")
	// The degradation is always logged, even without --verbose.
	assert.Contains(t, stderr.String(), "navigation build degraded")
}

func TestMain_Run_FallbackFile(t *testing.T) {
	t.Parallel()

	t.Run("replaces the compiled-in fallback", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nav.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"- title: Projects\n  items:\n    - title: From File\n      href: /proj-from-file\n"), 0644))

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		missing := filepath.Join(t.TempDir(), "missing")

		err := m.Run(testContext(), []string{"--content", missing, "--fallback", path, "tree", "--plain"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "From File")
	})

	t.Run("rejects an unreadable file with a hint", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"--fallback", filepath.Join(t.TempDir(), "nope.yaml"), "tree"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load fallback navigation")
		assert.Contains(t, stderr.String(), "Hint:")
	})
}

func TestMain_Run_VerboseLogsBuildDetails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeContent(t, root, "fund-vocabulary", "page.tsx")

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"--content", root, "--verbose", "tree", "--plain"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "content scan")
	assert.Contains(t, stderr.String(), "navigation build")
}

func TestMain_Run_QuietWithoutVerbose(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeContent(t, root, "fund-vocabulary", "page.tsx")

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"--content", root, "tree", "--plain"}, stdout, stderr)

	require.NoError(t, err)
	assert.Empty(t, stderr.String())
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"bogus"}, stdout, stderr)

	require.Error(t, err)
}
