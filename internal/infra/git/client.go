// Package git provides git operations via the git CLI.
package git

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"labctl/internal/domain"
)

// committerdate:iso8601 layout, e.g. "2024-03-07 14:23:05 +0900".
const iso8601Layout = "2006-01-02 15:04:05 -0700"

// Client provides git remote operations rooted at a repository.
type Client struct {
	exec     domain.CommandExecutor
	repoRoot string
}

// NewClient creates a git client for the repository at repoRoot.
func NewClient(exec domain.CommandExecutor, repoRoot string) *Client {
	return &Client{
		exec:     exec,
		repoRoot: repoRoot,
	}
}

// Ensure Client implements domain.VersionControl.
var _ domain.VersionControl = (*Client)(nil)

// ListRemoteBranches returns all branches of the remote with their commit
// timestamps, in the order git for-each-ref reports them. HEAD and other
// refs outside refs/remotes/<remote>/ are filtered out by prefix.
func (c *Client) ListRemoteBranches(remote string) ([]domain.Branch, error) {
	cmd := domain.NewCommand("git", []string{
		"for-each-ref",
		"--format=%(committerdate:iso8601)%09%(refname)",
		"refs/remotes/" + remote,
	}, c.repoRoot)

	out, err := c.exec.Output(cmd)
	if err != nil {
		return nil, fmt.Errorf("list remote branches: %w", err)
	}

	prefix := "refs/remotes/" + remote + "/"
	var branches []domain.Branch
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		dateStr, refName, ok := strings.Cut(line, "\t")
		if !ok || !strings.HasPrefix(refName, prefix) {
			continue
		}
		committedAt, err := time.Parse(iso8601Layout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse commit date %q: %w", dateStr, err)
		}
		branches = append(branches, domain.Branch{
			Name:        strings.TrimPrefix(refName, prefix),
			CommittedAt: committedAt,
		})
	}
	return branches, nil
}

// DeleteRemoteBranch deletes a branch on the remote via git push --delete.
func (c *Client) DeleteRemoteBranch(remote, name string) error {
	cmd := domain.NewCommand("git", []string{"push", remote, "--delete", name}, c.repoRoot)
	if out, err := c.exec.Execute(cmd); err != nil {
		return fmt.Errorf("delete remote branch %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// DetectRepoRoot finds the repository toplevel from the given directory.
func DetectRepoRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", domain.ErrNotGitRepository
	}
	return strings.TrimSpace(string(out)), nil
}
