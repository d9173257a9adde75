package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"labctl/internal/app"
	"labctl/internal/usecase"
)

func newReportCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Parse CI results and file failure issues",
		GroupID: groupReport,
	}
	cmd.AddCommand(
		newTestReportCommand(c, "pester", usecase.FormatPester,
			"Report Pester (NUnit/VSTest) test failures"),
		newTestReportCommand(c, "junit", usecase.FormatJUnit,
			"Report JUnit (pytest) test failures"),
		newLintReportCommand(c),
	)
	return cmd
}

func newTestReportCommand(c *app.Container, name string, format usecase.ReportFormat, short string) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   name + " <results.xml>",
		Short: short,
		Long: short + `.

By default one GitHub issue is filed per failing test, with the run URL,
commit, and OS appended to the body. --summary prints a markdown list
instead and performs no gh calls.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ReportTestsUseCase().Execute(cmd.Context(), usecase.ReportTestsInput{
				Path:    args[0],
				Format:  format,
				Summary: summary,
				CI:      c.CI,
			})
			if err != nil {
				return err
			}
			if summary {
				fmt.Fprintln(cmd.OutOrStdout(), out.Summary)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Filed %d issue(s) for %d failure(s).\n", out.Filed, len(out.Failures))
			return nil
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "Print summary instead of creating issues")
	return cmd
}

func newLintReportCommand(c *app.Container) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "lint <path>",
		Short: "Report lint warnings and errors from log files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ReportLintUseCase().Execute(cmd.Context(), usecase.ReportLintInput{
				Path:    args[0],
				Summary: summary,
			})
			if err != nil {
				return err
			}
			if summary {
				fmt.Fprintln(cmd.OutOrStdout(), out.Summary)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Filed %d issue(s).\n", out.Filed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "Print summary instead of creating issues")
	return cmd
}
