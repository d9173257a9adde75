package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labctl/internal/domain"
	"labctl/internal/testutil"
)

const junitFixture = `<testsuite>
  <testcase classname="pkg.TestCase" name="test_fail">
    <failure message="oops" />
  </testcase>
</testsuite>`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReportJUnit(t *testing.T) {
	t.Run("files issues with CI context", func(t *testing.T) {
		path := writeFixture(t, "pytest-results-ubuntu-latest", "junit.xml", junitFixture)
		tracker := testutil.NewMockIssueTracker()
		c := newTestContainer()
		c.Tracker = tracker
		c.CI = domain.CIContext{RunURL: "https://ci/run/1", Commit: "abc123", Branch: "main"}

		out, err := executeCommand(t, c, "report", "junit", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Filed 1 issue(s)")

		require.Len(t, tracker.Created, 1)
		assert.Equal(t, "pkg.TestCase.test_fail", tracker.Created[0].Title)
		assert.Contains(t, tracker.Created[0].Body, "oops")
		assert.Contains(t, tracker.Created[0].Body, "OS: ubuntu-latest")
	})

	t.Run("summary mode prints markdown and files nothing", func(t *testing.T) {
		path := writeFixture(t, "pytest-results-ubuntu-latest", "junit.xml", junitFixture)
		tracker := testutil.NewMockIssueTracker()
		c := newTestContainer()
		c.Tracker = tracker

		out, err := executeCommand(t, c, "report", "junit", path, "--summary")
		require.NoError(t, err)
		assert.Contains(t, out, "- **pkg.TestCase.test_fail**: oops")
		assert.Empty(t, tracker.Created)
	})
}

func TestReportPester(t *testing.T) {
	fixture := `<test-results>
  <test-case name="Should deploy" result="Failed">
    <failure><message>nope</message></failure>
  </test-case>
</test-results>`
	path := writeFixture(t, "pester-results-windows-2022", "testResults.xml", fixture)
	tracker := testutil.NewMockIssueTracker()
	c := newTestContainer()
	c.Tracker = tracker

	_, err := executeCommand(t, c, "report", "pester", path)
	require.NoError(t, err)

	require.Len(t, tracker.Created, 1)
	assert.Equal(t, "Should deploy", tracker.Created[0].Title)
	assert.Contains(t, tracker.Created[0].Body, "OS: windows-2022")
}

func TestReportLint(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		path := writeFixture(t, "logs", "lint.txt", "warning: unused\nok\n")
		c := newTestContainer()
		c.Tracker = testutil.NewMockIssueTracker()

		out, err := executeCommand(t, c, "report", "lint", path, "--summary")
		require.NoError(t, err)
		assert.Contains(t, out, "warning: unused")
	})

	t.Run("files issues", func(t *testing.T) {
		path := writeFixture(t, "logs", "lint.txt", "warning: unused\n")
		tracker := testutil.NewMockIssueTracker()
		c := newTestContainer()
		c.Tracker = tracker

		out, err := executeCommand(t, c, "report", "lint", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Filed 1 issue(s)")
		require.Len(t, tracker.Created, 1)
		assert.Equal(t, "Lint warning or error", tracker.Created[0].Title)
		assert.Equal(t, "warning: unused", tracker.Created[0].Body)
	})
}
