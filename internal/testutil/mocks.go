// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"

	"labctl/internal/domain"
)

// MockExecutor is a test double for domain.CommandExecutor. It records
// every command and replays canned responses keyed by "program arg1 arg2".
type MockExecutor struct {
	Commands  []*domain.ExecCommand
	Responses map[string][]byte
	Errs      map[string]error
}

// NewMockExecutor creates a MockExecutor with initialized maps.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Responses: make(map[string][]byte),
		Errs:      make(map[string]error),
	}
}

func commandKey(cmd *domain.ExecCommand) string {
	key := cmd.Program
	for _, arg := range cmd.Args {
		key += " " + arg
	}
	return key
}

// Execute records the command and returns the canned response.
func (m *MockExecutor) Execute(cmd *domain.ExecCommand) ([]byte, error) {
	return m.run(cmd)
}

// Output records the command and returns the canned response.
func (m *MockExecutor) Output(cmd *domain.ExecCommand) ([]byte, error) {
	return m.run(cmd)
}

func (m *MockExecutor) run(cmd *domain.ExecCommand) ([]byte, error) {
	m.Commands = append(m.Commands, cmd)
	key := commandKey(cmd)
	if err, ok := m.Errs[key]; ok {
		return nil, err
	}
	return m.Responses[key], nil
}

// CommandLines renders recorded commands as space-joined strings.
func (m *MockExecutor) CommandLines() []string {
	lines := make([]string, 0, len(m.Commands))
	for _, cmd := range m.Commands {
		lines = append(lines, commandKey(cmd))
	}
	return lines
}

// CreatedIssue is one recorded CreateIssue call.
type CreatedIssue struct {
	Title string
	Body  string
}

// MockIssueTracker is a test double for domain.IssueTracker.
type MockIssueTracker struct {
	Created      []CreatedIssue
	ClosedIssues []int
	ClosedPRs    []int
	IssueJSON    map[int]string
	CreateErr    error
	CloseErr     error
	ViewErr      error
}

// NewMockIssueTracker creates a MockIssueTracker with initialized maps.
func NewMockIssueTracker() *MockIssueTracker {
	return &MockIssueTracker{
		IssueJSON: make(map[int]string),
	}
}

// CreateIssue records the issue.
func (m *MockIssueTracker) CreateIssue(title, body string) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, CreatedIssue{Title: title, Body: body})
	return nil
}

// CloseIssue records the issue number.
func (m *MockIssueTracker) CloseIssue(number int) error {
	if m.CloseErr != nil {
		return m.CloseErr
	}
	m.ClosedIssues = append(m.ClosedIssues, number)
	return nil
}

// ClosePullRequest records the PR number.
func (m *MockIssueTracker) ClosePullRequest(number int) error {
	if m.CloseErr != nil {
		return m.CloseErr
	}
	m.ClosedPRs = append(m.ClosedPRs, number)
	return nil
}

// ViewIssue returns the canned JSON for the issue number.
func (m *MockIssueTracker) ViewIssue(number int) (string, error) {
	if m.ViewErr != nil {
		return "", m.ViewErr
	}
	json, ok := m.IssueJSON[number]
	if !ok {
		return "", fmt.Errorf("issue %d not found", number)
	}
	return json, nil
}

// MockVersionControl is a test double for domain.VersionControl.
type MockVersionControl struct {
	Branches  []domain.Branch
	Deleted   []string
	ListErr   error
	DeleteErr error
}

// ListRemoteBranches returns the configured branches.
func (m *MockVersionControl) ListRemoteBranches(_ string) ([]domain.Branch, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Branches, nil
}

// DeleteRemoteBranch records the branch name.
func (m *MockVersionControl) DeleteRemoteBranch(_, name string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, name)
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Configs map[string]domain.Config // keyed by path, "" = default
	LoadErr error
}

// NewMockConfigLoader creates a MockConfigLoader with initialized maps.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Configs: make(map[string]domain.Config),
	}
}

// Load returns the configured document for path.
func (m *MockConfigLoader) Load(path string) (domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	cfg, ok := m.Configs[path]
	if !ok {
		return nil, fmt.Errorf("no config for %s", path)
	}
	return cfg, nil
}

// LoadDefault returns the document registered under "".
func (m *MockConfigLoader) LoadDefault() (domain.Config, error) {
	return m.Load("")
}

// MockPathIndexWriter is a test double for domain.PathIndexWriter.
type MockPathIndexWriter struct {
	Updates   []domain.IndexUpdateOptions
	UpdateErr error
}

// Update records the options.
func (m *MockPathIndexWriter) Update(opts domain.IndexUpdateOptions) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Updates = append(m.Updates, opts)
	return nil
}

// MockPathResolver is a test double for domain.PathResolver.
type MockPathResolver struct {
	Paths map[string]string
}

// Resolve looks up the configured path map.
func (m *MockPathResolver) Resolve(name string) (string, bool) {
	path, ok := m.Paths[name]
	return path, ok
}
