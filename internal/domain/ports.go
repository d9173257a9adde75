package domain

// IssueTracker provides issue and pull request operations via the gh CLI.
type IssueTracker interface {
	// CreateIssue files a new issue with the given title and body.
	CreateIssue(title, body string) error

	// CloseIssue closes an issue by number.
	CloseIssue(number int) error

	// ClosePullRequest closes a pull request by number.
	ClosePullRequest(number int) error

	// ViewIssue returns the issue title and body as a JSON string.
	ViewIssue(number int) (string, error)
}

// VersionControl provides git remote operations.
type VersionControl interface {
	// ListRemoteBranches returns all branches of the remote with their
	// commit timestamps, in the order git reports them.
	ListRemoteBranches(remote string) ([]Branch, error)

	// DeleteRemoteBranch deletes a branch on the remote.
	DeleteRemoteBranch(remote, name string) error
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs the command and returns its combined output.
	Execute(cmd *ExecCommand) ([]byte, error)

	// Output runs the command and returns its stdout only.
	Output(cmd *ExecCommand) ([]byte, error)
}

// PathResolver resolves a filename to an absolute repository path.
type PathResolver interface {
	// Resolve returns the absolute path for name, or false on miss.
	Resolve(name string) (string, bool)
}

// IndexUpdateOptions filters which tracked files enter a regenerated
// path index.
type IndexUpdateOptions struct {
	// ScanDirs restricts entries to files under these repo-relative
	// directories. Empty means all tracked files.
	ScanDirs []string

	// RootFiles are individual repo-relative paths always included.
	RootFiles []string
}

// PathIndexWriter regenerates and persists the path index.
type PathIndexWriter interface {
	// Update rebuilds the index from the git-tracked file list.
	Update(opts IndexUpdateOptions) error
}

// ConfigLoader loads a configuration document from a file.
type ConfigLoader interface {
	// Load decodes the file at path, selecting a decoder by extension.
	Load(path string) (Config, error)

	// LoadDefault decodes the embedded default configuration.
	LoadDefault() (Config, error)
}
