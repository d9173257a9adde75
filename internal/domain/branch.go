package domain

import "time"

// Branch is a remote branch with its latest commit timestamp, as reported
// by git for-each-ref.
type Branch struct {
	Name        string
	CommittedAt time.Time
}

// HourBucket returns the retention grouping key for the branch: its commit
// timestamp truncated to the hour.
func (b Branch) HourBucket() string {
	return b.CommittedAt.Format("2006-01-02 15")
}

// Protected branch names that cleanup must never delete.
var protectedBranches = map[string]bool{
	"HEAD":   true,
	"main":   true,
	"master": true,
}

// IsProtectedBranch reports whether the branch name must survive cleanup.
func IsProtectedBranch(name string) bool {
	return protectedBranches[name]
}
