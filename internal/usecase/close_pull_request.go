package usecase

import (
	"context"

	"labctl/internal/domain"
)

// ClosePullRequestInput contains the parameters for closing a pull request.
type ClosePullRequestInput struct {
	Number int
}

// ClosePullRequest closes a GitHub pull request.
type ClosePullRequest struct {
	tracker domain.IssueTracker
}

// NewClosePullRequest creates a new ClosePullRequest use case.
func NewClosePullRequest(tracker domain.IssueTracker) *ClosePullRequest {
	return &ClosePullRequest{tracker: tracker}
}

// Execute closes the pull request.
func (uc *ClosePullRequest) Execute(_ context.Context, in ClosePullRequestInput) error {
	return uc.tracker.ClosePullRequest(in.Number)
}
