package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"labctl/internal/app"
	"labctl/internal/usecase"
)

func newIndexCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "index",
		Short:   "Resolve and regenerate the repository path index",
		GroupID: groupRepo,
	}
	cmd.AddCommand(newIndexResolveCommand(c), newIndexUpdateCommand(c))
	return cmd
}

func newIndexResolveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name>",
		Short: "Print the absolute path for a file name",
		Long: `Resolve looks the name up in path-index.yaml and falls back to a
recursive search from the repository root. Exit code 1 on miss.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ResolvePathUseCase().Execute(cmd.Context(), usecase.ResolvePathInput{
				Name: args[0],
			})
			if err != nil {
				return err
			}
			if !out.Found {
				return fmt.Errorf("no such file in index: %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Path)
			return nil
		},
	}
}

func newIndexUpdateCommand(c *app.Container) *cobra.Command {
	var (
		scanDirs  []string
		rootFiles []string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Regenerate path-index.yaml from git-tracked files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := c.UpdateIndexUseCase().Execute(cmd.Context(), usecase.UpdateIndexInput{
				ScanDirs:  scanDirs,
				RootFiles: rootFiles,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote path-index.yaml")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&scanDirs, "scan-dir", nil, "Limit entries to these repo-relative directories (repeatable)")
	cmd.Flags().StringSliceVar(&rootFiles, "root-file", nil, "Always include these repo-relative files (repeatable)")
	return cmd
}
