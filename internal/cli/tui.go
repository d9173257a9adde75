package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"labctl/internal/app"
	"labctl/internal/tui"
)

// launchDashboardFunc is a function variable so tests can stub the TUI.
var launchDashboardFunc = launchDashboard

func newUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Launch the terminal dashboard",
		Long: `The dashboard shows the runner scripts, the lab log, and the
default and recommended deployment configs in a tabbed view.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchDashboardFunc(c)
		},
	}
}

func launchDashboard(c *app.Container) error {
	inputs := tui.ResolveInputs(c.Resolver, c.Config.RepoRoot, c.Config.LogDir)
	model := tui.New(inputs)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
