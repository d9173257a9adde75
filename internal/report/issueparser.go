// Package report contains the parsers for CI artifacts: issue bodies
// produced by the failure-reporting workflow, Pester and JUnit XML test
// results, and lint logs. All parsers are pure and best-effort.
package report

import (
	"regexp"
	"strings"

	"labctl/internal/domain"
)

// First line: Run [url](url) for commit `sha` on branch `branch` failed.
var runLinePattern = regexp.MustCompile(
	"Run \\[([^\\]]+)\\]\\([^)]+\\) for commit `([0-9a-fA-F]+)` on branch `([^`]+)`")

// Job entry: - [name](url) - status
var jobLinePattern = regexp.MustCompile(`- \[([^\]]+)\]\(([^)]+)\) - (.+)`)

// ParseIssueBody extracts run metadata, failed jobs, and failing test lines
// from an issue body. Malformed input yields partial results with zero
// fields rather than an error; the authoritative producer of the format is
// an external CI workflow.
func ParseIssueBody(text string) domain.ParsedIssue {
	var result domain.ParsedIssue

	trimmed := strings.TrimSpace(text)
	if trimmed != "" {
		firstLine, _, _ := strings.Cut(trimmed, "\n")
		if m := runLinePattern.FindStringSubmatch(firstLine); m != nil {
			result.RunURL = m[1]
			result.Commit = m[2]
			result.Branch = m[3]
		}
	}

	// Sections are delimited by "### " headings.
	sections := splitSections(text)

	for _, line := range sections["Failed jobs"] {
		if m := jobLinePattern.FindStringSubmatch(line); m != nil {
			result.Jobs = append(result.Jobs, domain.JobRef{
				Name:   m[1],
				URL:    m[2],
				Status: m[3],
			})
		}
	}

	for _, line := range sections["Failing tests"] {
		if strings.TrimSpace(line) != "" {
			result.Tests = append(result.Tests, line)
		}
	}

	return result
}

// splitSections groups lines under their preceding "### " heading.
// Lines before the first heading are discarded.
func splitSections(text string) map[string][]string {
	sections := make(map[string][]string)
	current := ""
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "### ") {
			current = strings.TrimSpace(line[4:])
			sections[current] = []string{}
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}
	return sections
}
