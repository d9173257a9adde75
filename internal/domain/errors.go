package domain

import "errors"

// Domain errors.
var (
	ErrNotGitRepository        = errors.New("not a git repository (or any of the parent directories)")
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
	ErrUnknownReportFormat     = errors.New("unknown report format")
)
