// Package app provides the dependency injection container for labctl.
package app

import (
	"log/slog"
	"os"

	"labctl/internal/domain"
	"labctl/internal/infra/config"
	"labctl/internal/infra/executor"
	"labctl/internal/infra/git"
	"labctl/internal/infra/github"
	"labctl/internal/infra/logging"
	"labctl/internal/infra/pathindex"
	"labctl/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	RepoRoot string // Root directory of the lab repository
	LogDir   string // Directory the lab.log file lives in
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tracker      domain.IssueTracker
	VCS          domain.VersionControl
	Executor     domain.CommandExecutor
	Resolver     domain.PathResolver
	IndexWriter  domain.PathIndexWriter
	ConfigLoader domain.ConfigLoader

	// Pointer fields
	Logger  *slog.Logger
	logFile *logging.FileLogger

	// Configuration
	Config Config
	CI     domain.CIContext
}

// New creates a new Container by detecting the lab repository from the
// given directory. LAB_REPO_ROOT overrides git toplevel discovery.
func New(dir string) (*Container, error) {
	repoRoot := os.Getenv("LAB_REPO_ROOT")
	if repoRoot == "" {
		root, err := git.DetectRepoRoot(dir)
		if err != nil {
			// Allow config and report commands outside a git repository;
			// repo-bound commands fail naturally when git runs.
			root = dir
		}
		repoRoot = root
	}

	cfg := Config{
		RepoRoot: repoRoot,
		LogDir:   os.Getenv("LAB_LOG_DIR"),
	}

	exec := executor.NewClient()
	index := pathindex.New(repoRoot)

	// File logging is active only when LAB_LOG_DIR is set; opening the
	// file must not stop maintenance commands.
	logFile := logging.NewDiscard()
	if cfg.LogDir != "" {
		if fl, err := logging.New(cfg.LogDir, logging.ParseLevel(os.Getenv("LAB_LOG_LEVEL"))); err == nil {
			logFile = fl
		}
	}

	return &Container{
		Tracker:      github.NewClient(exec, os.Getenv("GITHUB_REPOSITORY")),
		VCS:          git.NewClient(exec, repoRoot),
		Executor:     exec,
		Resolver:     index,
		IndexWriter:  index,
		ConfigLoader: config.NewLoader(),
		Logger:       logFile.Logger(),
		logFile:      logFile,
		Config:       cfg,
		CI: domain.CIContext{
			RunURL: os.Getenv("RUN_URL"),
			Commit: os.Getenv("COMMIT_SHA"),
			Branch: os.Getenv("BRANCH_NAME"),
		},
	}, nil
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// LogPath returns the active log file path, or "" when logging is disabled.
func (c *Container) LogPath() string {
	if c.logFile == nil {
		return ""
	}
	return c.logFile.Path()
}

// CleanupBranchesUseCase creates the CleanupBranches use case.
func (c *Container) CleanupBranchesUseCase() *usecase.CleanupBranches {
	return usecase.NewCleanupBranches(c.VCS)
}

// CloseIssueUseCase creates the CloseIssue use case.
func (c *Container) CloseIssueUseCase() *usecase.CloseIssue {
	return usecase.NewCloseIssue(c.Tracker)
}

// ClosePullRequestUseCase creates the ClosePullRequest use case.
func (c *Container) ClosePullRequestUseCase() *usecase.ClosePullRequest {
	return usecase.NewClosePullRequest(c.Tracker)
}

// ViewIssueUseCase creates the ViewIssue use case.
func (c *Container) ViewIssueUseCase() *usecase.ViewIssue {
	return usecase.NewViewIssue(c.Tracker)
}

// ParseIssueUseCase creates the ParseIssue use case.
func (c *Container) ParseIssueUseCase() *usecase.ParseIssue {
	return usecase.NewParseIssue(c.Tracker)
}

// ReportTestsUseCase creates the ReportTests use case.
func (c *Container) ReportTestsUseCase() *usecase.ReportTests {
	return usecase.NewReportTests(c.Tracker)
}

// ReportLintUseCase creates the ReportLint use case.
func (c *Container) ReportLintUseCase() *usecase.ReportLint {
	return usecase.NewReportLint(c.Tracker)
}

// ShowFactsUseCase creates the ShowFacts use case.
func (c *Container) ShowFactsUseCase() *usecase.ShowFacts {
	return usecase.NewShowFacts(c.ConfigLoader)
}

// DeployHostUseCase creates the DeployHost use case.
func (c *Container) DeployHostUseCase() *usecase.DeployHost {
	return usecase.NewDeployHost(c.ConfigLoader, c.Logger)
}

// ResolvePathUseCase creates the ResolvePath use case.
func (c *Container) ResolvePathUseCase() *usecase.ResolvePath {
	return usecase.NewResolvePath(c.Resolver)
}

// UpdateIndexUseCase creates the UpdateIndex use case.
func (c *Container) UpdateIndexUseCase() *usecase.UpdateIndex {
	return usecase.NewUpdateIndex(c.IndexWriter)
}
