package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"labctl/internal/domain"
	"labctl/internal/report"
)

// ReportFormat selects the XML schema of a test results file.
type ReportFormat string

// Supported report formats.
const (
	FormatPester ReportFormat = "pester" // NUnit/VSTest schemas
	FormatJUnit  ReportFormat = "junit"  // JUnit schema
)

// resultDirPrefix is stripped from the parent directory name to recover
// the OS the results were produced on (e.g. pester-results-windows-2022).
func (f ReportFormat) resultDirPrefix() string {
	if f == FormatJUnit {
		return "pytest-results-"
	}
	return "pester-results-"
}

// ReportTestsInput contains the parameters for reporting test failures.
type ReportTestsInput struct {
	Path    string           // Path to the XML results file
	Format  ReportFormat     // XML schema
	Summary bool             // If true, render markdown instead of filing issues
	CI      domain.CIContext // Run metadata appended to issue bodies
}

// ReportTestsOutput contains the result of reporting.
type ReportTestsOutput struct {
	Failures []domain.TestFailure
	Summary  string // Markdown bullet list (summary mode only)
	Filed    int    // Number of issues filed
}

// ReportTests parses an XML test results file and files one issue per
// failing test, or renders a markdown summary.
type ReportTests struct {
	tracker domain.IssueTracker
}

// NewReportTests creates a new ReportTests use case.
func NewReportTests(tracker domain.IssueTracker) *ReportTests {
	return &ReportTests{tracker: tracker}
}

// Execute parses the results and reports failures. A failing CreateIssue
// call aborts the remaining batch; every call is attempted exactly once.
func (uc *ReportTests) Execute(_ context.Context, in ReportTestsInput) (*ReportTestsOutput, error) {
	failures, err := uc.parse(in)
	if err != nil {
		return nil, err
	}

	out := &ReportTestsOutput{Failures: failures}
	if in.Summary {
		out.Summary = report.Summarize(failures)
		return out, nil
	}

	extra := contextBlock(in.CI, osNameFromPath(in.Path, in.Format.resultDirPrefix()))
	for _, f := range failures {
		body := extra
		if f.Message != "" {
			body = f.Message + "\n\n" + extra
		}
		if err := uc.tracker.CreateIssue(f.Title, body); err != nil {
			return nil, err
		}
		out.Filed++
	}
	return out, nil
}

func (uc *ReportTests) parse(in ReportTestsInput) ([]domain.TestFailure, error) {
	f, err := os.Open(in.Path) //nolint:gosec // path comes from CLI arguments
	if err != nil {
		return nil, fmt.Errorf("open results: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch in.Format {
	case FormatPester:
		return report.ParsePester(f)
	case FormatJUnit:
		return report.ParseJUnit(f)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownReportFormat, in.Format)
	}
}

// contextBlock renders the run metadata lines appended to each issue body.
func contextBlock(ci domain.CIContext, osName string) string {
	var details []string
	if ci.RunURL != "" {
		details = append(details, "Run: "+ci.RunURL)
	}
	if ci.Commit != "" {
		details = append(details, fmt.Sprintf("Commit `%s` on branch `%s`", ci.Commit, ci.Branch))
	}
	details = append(details, "OS: "+osName)
	return strings.Join(details, "\n")
}

// osNameFromPath derives the OS name from the results directory, e.g.
// pester-results-ubuntu-latest/testResults.xml -> ubuntu-latest.
func osNameFromPath(path, prefix string) string {
	return strings.TrimPrefix(filepath.Base(filepath.Dir(path)), prefix)
}
