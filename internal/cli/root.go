// Package cli provides the command-line interface for labctl.
package cli

import (
	"github.com/spf13/cobra"

	"labctl/internal/app"
)

// Command group IDs.
const (
	groupHyperV = "hv"
	groupRepo   = "repo"
	groupReport = "report"
)

// NewRootCommand creates the root command for labctl.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "labctl",
		Short: "Lab environment maintenance CLI",
		Long: `labctl maintains an infrastructure-as-code lab repository:
it inspects Hyper-V deployment configs, files and parses CI failure
issues, prunes stale remote branches, and resolves repository paths
through the path index.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupHyperV, Title: "Hyper-V commands:"},
		&cobra.Group{ID: groupRepo, Title: "Repository maintenance commands:"},
		&cobra.Group{ID: groupReport, Title: "CI report commands:"},
	)

	root.AddCommand(
		newHvCommand(c),
		newRepoCommand(c),
		newReportCommand(c),
		newIndexCommand(c),
		newUICommand(c),
	)

	return root
}
