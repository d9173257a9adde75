package usecase

import (
	"context"

	"labctl/internal/domain"
)

// CloseIssueInput contains the parameters for closing an issue.
type CloseIssueInput struct {
	Number int
}

// CloseIssue closes a GitHub issue.
type CloseIssue struct {
	tracker domain.IssueTracker
}

// NewCloseIssue creates a new CloseIssue use case.
func NewCloseIssue(tracker domain.IssueTracker) *CloseIssue {
	return &CloseIssue{tracker: tracker}
}

// Execute closes the issue.
func (uc *CloseIssue) Execute(_ context.Context, in CloseIssueInput) error {
	return uc.tracker.CloseIssue(in.Number)
}
