// Package github provides issue and pull request operations via the gh CLI.
package github

import (
	"fmt"
	"strconv"
	"strings"

	"labctl/internal/domain"
)

// Client implements domain.IssueTracker by shelling out to gh.
type Client struct {
	exec domain.CommandExecutor
	repo string // target repository (owner/name), empty = current repo
}

// NewClient creates a gh client. repo is passed as -R to issue creation
// when non-empty; it normally comes from GITHUB_REPOSITORY.
func NewClient(exec domain.CommandExecutor, repo string) *Client {
	return &Client{
		exec: exec,
		repo: repo,
	}
}

// Ensure Client implements domain.IssueTracker.
var _ domain.IssueTracker = (*Client)(nil)

// CreateIssue files a new issue with the given title and body.
func (c *Client) CreateIssue(title, body string) error {
	args := []string{"issue", "create", "-t", title, "-b", body}
	if c.repo != "" {
		args = append(args, "-R", c.repo)
	}
	if out, err := c.exec.Execute(domain.NewCommand("gh", args, "")); err != nil {
		return fmt.Errorf("create issue %q: %w: %s", title, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// CloseIssue closes an issue by number.
func (c *Client) CloseIssue(number int) error {
	cmd := domain.NewCommand("gh", []string{"issue", "close", strconv.Itoa(number)}, "")
	if out, err := c.exec.Execute(cmd); err != nil {
		return fmt.Errorf("close issue #%d: %w: %s", number, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ClosePullRequest closes a pull request by number.
func (c *Client) ClosePullRequest(number int) error {
	cmd := domain.NewCommand("gh", []string{"pr", "close", strconv.Itoa(number)}, "")
	if out, err := c.exec.Execute(cmd); err != nil {
		return fmt.Errorf("close pull request #%d: %w: %s", number, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ViewIssue returns the issue title and body as a JSON string.
func (c *Client) ViewIssue(number int) (string, error) {
	cmd := domain.NewCommand("gh", []string{"issue", "view", strconv.Itoa(number), "--json", "title,body"}, "")
	out, err := c.exec.Output(cmd)
	if err != nil {
		return "", fmt.Errorf("view issue #%d: %w", number, err)
	}
	return string(out), nil
}
