package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"labctl/internal/app"
	"labctl/internal/usecase"
)

func newRepoCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repo",
		Short:   "GitHub issue, PR, and branch maintenance",
		GroupID: groupRepo,
	}
	cmd.AddCommand(
		newClosePRCommand(c),
		newCloseIssueCommand(c),
		newViewIssueCommand(c),
		newParseIssueCommand(c),
		newCleanupCommand(c),
	)
	return cmd
}

// numberArg parses the single positional issue/PR number argument.
func numberArg(args []string) (int, error) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", args[0])
	}
	return n, nil
}

func newClosePRCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "close-pr <number>",
		Short: "Close a pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := numberArg(args)
			if err != nil {
				return err
			}
			return c.ClosePullRequestUseCase().Execute(cmd.Context(), usecase.ClosePullRequestInput{Number: n})
		},
	}
}

func newCloseIssueCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "close-issue <number>",
		Short: "Close an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := numberArg(args)
			if err != nil {
				return err
			}
			return c.CloseIssueUseCase().Execute(cmd.Context(), usecase.CloseIssueInput{Number: n})
		},
	}
}

func newViewIssueCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "view-issue <number>",
		Short: "Print an issue's title and body as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := numberArg(args)
			if err != nil {
				return err
			}
			out, err := c.ViewIssueUseCase().Execute(cmd.Context(), usecase.ViewIssueInput{Number: n})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out.JSON)
			return nil
		},
	}
}

func newParseIssueCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "parse-issue <number>",
		Short: "Parse a CI failure issue into a structured record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := numberArg(args)
			if err != nil {
				return err
			}
			out, err := c.ParseIssueUseCase().Execute(cmd.Context(), usecase.ParseIssueInput{Number: n})
			if err != nil {
				return err
			}
			rendered, err := json.MarshalIndent(out.Parsed, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
			return nil
		},
	}
}

func newCleanupCommand(c *app.Container) *cobra.Command {
	var (
		remote string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete stale remote branches, keeping the newest per hour",
		Long: `Cleanup groups remote branches by the hour of their latest commit
and deletes all but the most recently committed branch in each group.
HEAD, main, and master are never deleted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.CleanupBranchesUseCase().Execute(cmd.Context(), usecase.CleanupBranchesInput{
				Remote: remote,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			if len(out.Deleted) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to clean up.")
				return nil
			}
			for _, name := range out.Deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", name)
			}
			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "Dry run: no branches were deleted.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "origin", "Remote to clean up")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Display only, no deletion")
	return cmd
}
