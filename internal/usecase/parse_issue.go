package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"labctl/internal/domain"
	"labctl/internal/report"
)

// ParseIssueInput contains the parameters for parsing a CI failure issue.
type ParseIssueInput struct {
	Number int
}

// ParseIssueOutput contains the structured issue record.
type ParseIssueOutput struct {
	Title  string
	Parsed domain.ParsedIssue
}

// ParseIssue fetches an issue and parses the failure-report structure out
// of its body.
type ParseIssue struct {
	tracker domain.IssueTracker
}

// NewParseIssue creates a new ParseIssue use case.
func NewParseIssue(tracker domain.IssueTracker) *ParseIssue {
	return &ParseIssue{tracker: tracker}
}

// Execute fetches and parses the issue.
func (uc *ParseIssue) Execute(_ context.Context, in ParseIssueInput) (*ParseIssueOutput, error) {
	raw, err := uc.tracker.ViewIssue(in.Number)
	if err != nil {
		return nil, err
	}

	var issue struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := json.Unmarshal([]byte(raw), &issue); err != nil {
		return nil, fmt.Errorf("decode issue #%d: %w", in.Number, err)
	}

	return &ParseIssueOutput{
		Title:  issue.Title,
		Parsed: report.ParseIssueBody(issue.Body),
	}, nil
}
