package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labctl/internal/report"
)

const sampleIssueBody = "Run [https://github.com/acme/lab/actions/runs/42](https://github.com/acme/lab/actions/runs/42) for commit `deadbeef` on branch `feature/hv` failed.\n" +
	"\n" +
	"### Failed jobs\n" +
	"- [build (windows)](https://github.com/acme/lab/actions/runs/42/job/1) - failure\n" +
	"- [pester](https://github.com/acme/lab/actions/runs/42/job/2) - cancelled\n" +
	"not a job line\n" +
	"\n" +
	"### Failing tests\n" +
	"Should configure the switch\n" +
	"\n" +
	"Should create the VM\n"

func TestParseIssueBody(t *testing.T) {
	t.Run("extracts run metadata from first line", func(t *testing.T) {
		parsed := report.ParseIssueBody(sampleIssueBody)

		assert.Equal(t, "https://github.com/acme/lab/actions/runs/42", parsed.RunURL)
		assert.Equal(t, "deadbeef", parsed.Commit)
		assert.Equal(t, "feature/hv", parsed.Branch)
	})

	t.Run("collects failed jobs with status", func(t *testing.T) {
		parsed := report.ParseIssueBody(sampleIssueBody)

		require.Len(t, parsed.Jobs, 2)
		assert.Equal(t, "build (windows)", parsed.Jobs[0].Name)
		assert.Equal(t, "https://github.com/acme/lab/actions/runs/42/job/1", parsed.Jobs[0].URL)
		assert.Equal(t, "failure", parsed.Jobs[0].Status)
		assert.Equal(t, "cancelled", parsed.Jobs[1].Status)
	})

	t.Run("collects non-blank failing test lines", func(t *testing.T) {
		parsed := report.ParseIssueBody(sampleIssueBody)

		assert.Equal(t, []string{"Should configure the switch", "Should create the VM"}, parsed.Tests)
	})

	t.Run("first line without the pattern yields zero run fields", func(t *testing.T) {
		parsed := report.ParseIssueBody("Something went wrong.\n\n### Failing tests\nboom\n")

		assert.Empty(t, parsed.RunURL)
		assert.Empty(t, parsed.Commit)
		assert.Empty(t, parsed.Branch)
		assert.Equal(t, []string{"boom"}, parsed.Tests)
	})

	t.Run("empty body yields empty record", func(t *testing.T) {
		parsed := report.ParseIssueBody("")

		assert.Empty(t, parsed.RunURL)
		assert.Empty(t, parsed.Jobs)
		assert.Empty(t, parsed.Tests)
	})

	t.Run("missing sections yield empty slices", func(t *testing.T) {
		parsed := report.ParseIssueBody("Run [u](u) for commit `abc123` on branch `main` failed.")

		assert.Equal(t, "abc123", parsed.Commit)
		assert.Empty(t, parsed.Jobs)
		assert.Empty(t, parsed.Tests)
	})
}
