package usecase

import (
	"context"
	"strings"

	"labctl/internal/domain"
	"labctl/internal/report"
)

// LintIssueTitle is the title used for every lint issue filed.
const LintIssueTitle = "Lint warning or error"

// ReportLintInput contains the parameters for reporting lint findings.
type ReportLintInput struct {
	Path    string // Log file or directory of .txt logs
	Summary bool   // If true, render the lines instead of filing issues
}

// ReportLintOutput contains the result of lint reporting.
type ReportLintOutput struct {
	Lines   []string
	Summary string // Joined lines (summary mode only)
	Filed   int    // Number of issues filed
}

// ReportLint scans lint logs and files one issue per surviving line, or
// renders them as a summary.
type ReportLint struct {
	tracker domain.IssueTracker
}

// NewReportLint creates a new ReportLint use case.
func NewReportLint(tracker domain.IssueTracker) *ReportLint {
	return &ReportLint{tracker: tracker}
}

// Execute scans and reports. No findings means no issues filed.
func (uc *ReportLint) Execute(_ context.Context, in ReportLintInput) (*ReportLintOutput, error) {
	lines, err := report.CollectWarnings(in.Path)
	if err != nil {
		return nil, err
	}

	out := &ReportLintOutput{Lines: lines}
	if in.Summary {
		out.Summary = strings.Join(lines, "\n")
		return out, nil
	}

	for _, line := range lines {
		if err := uc.tracker.CreateIssue(LintIssueTitle, line); err != nil {
			return nil, err
		}
		out.Filed++
	}
	return out, nil
}
