package usecase

import (
	"context"

	"labctl/internal/domain"
)

// ViewIssueInput contains the parameters for viewing an issue.
type ViewIssueInput struct {
	Number int
}

// ViewIssueOutput contains the raw issue JSON.
type ViewIssueOutput struct {
	JSON string
}

// ViewIssue fetches an issue's title and body as JSON.
type ViewIssue struct {
	tracker domain.IssueTracker
}

// NewViewIssue creates a new ViewIssue use case.
func NewViewIssue(tracker domain.IssueTracker) *ViewIssue {
	return &ViewIssue{tracker: tracker}
}

// Execute fetches the issue.
func (uc *ViewIssue) Execute(_ context.Context, in ViewIssueInput) (*ViewIssueOutput, error) {
	raw, err := uc.tracker.ViewIssue(in.Number)
	if err != nil {
		return nil, err
	}
	return &ViewIssueOutput{JSON: raw}, nil
}
