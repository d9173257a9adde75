// Package usecase contains the application use cases. Each use case takes
// its ports at construction and exposes a single Execute method with
// explicit input and output structs.
package usecase

import (
	"context"
	"fmt"
	"sort"

	"labctl/internal/domain"
)

// CleanupBranchesInput contains the parameters for remote branch cleanup.
type CleanupBranchesInput struct {
	Remote string // Remote name, e.g. "origin"
	DryRun bool   // If true, only list what would be deleted
}

// CleanupBranchesOutput contains the result of branch cleanup.
type CleanupBranchesOutput struct {
	Deleted []string // Branches that were (or would be) deleted
	Kept    []string // Branches retained as newest in their hour-bucket
}

// CleanupBranches deletes stale remote branches, keeping the most recently
// committed branch per hour-bucket. HEAD, main, and master are never
// touched.
type CleanupBranches struct {
	vcs domain.VersionControl
}

// NewCleanupBranches creates a new CleanupBranches use case.
func NewCleanupBranches(vcs domain.VersionControl) *CleanupBranches {
	return &CleanupBranches{vcs: vcs}
}

// Execute performs the cleanup.
func (uc *CleanupBranches) Execute(_ context.Context, in CleanupBranchesInput) (*CleanupBranchesOutput, error) {
	branches, err := uc.vcs.ListRemoteBranches(in.Remote)
	if err != nil {
		return nil, fmt.Errorf("list branches on %s: %w", in.Remote, err)
	}

	candidates := make([]domain.Branch, 0, len(branches))
	for _, b := range branches {
		if domain.IsProtectedBranch(b.Name) {
			continue
		}
		candidates = append(candidates, b)
	}

	// Stable sort keeps the git for-each-ref order for branches with
	// identical commit timestamps.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CommittedAt.After(candidates[j].CommittedAt)
	})

	out := &CleanupBranchesOutput{
		Deleted: []string{},
		Kept:    []string{},
	}
	kept := make(map[string]bool)
	for _, b := range candidates {
		bucket := b.HourBucket()
		if !kept[bucket] {
			kept[bucket] = true
			out.Kept = append(out.Kept, b.Name)
			continue
		}
		out.Deleted = append(out.Deleted, b.Name)
	}

	if in.DryRun {
		return out, nil
	}

	for _, name := range out.Deleted {
		if err := uc.vcs.DeleteRemoteBranch(in.Remote, name); err != nil {
			return nil, err
		}
	}
	return out, nil
}
