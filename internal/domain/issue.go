package domain

// ParsedIssue is the structured form of an issue body produced by the
// CI failure-reporting workflow. Zero-valued fields mean the corresponding
// pattern was absent from the body.
type ParsedIssue struct {
	RunURL string   `json:"run_url"`
	Commit string   `json:"commit"`
	Branch string   `json:"branch"`
	Jobs   []JobRef `json:"jobs"`
	Tests  []string `json:"tests"`
}

// JobRef is one failed job entry from the "Failed jobs" section.
type JobRef struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Status string `json:"status"`
}

// TestFailure is one failing test case extracted from an XML report.
// It exists only to build an issue title and body.
type TestFailure struct {
	Title   string
	Message string
}

// CIContext carries run metadata injected by CI into filed issues.
type CIContext struct {
	RunURL string // RUN_URL
	Commit string // COMMIT_SHA
	Branch string // BRANCH_NAME
}
