package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"labctl/internal/app"
	"labctl/internal/usecase"
)

func newHvCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hv",
		Short:   "Inspect the Hyper-V deployment configuration",
		GroupID: groupHyperV,
	}
	cmd.AddCommand(newHvFactsCommand(c), newHvDeployCommand(c))
	return cmd
}

func newHvFactsCommand(c *app.Container) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "facts",
		Short: "Show hypervisor facts from config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowFactsUseCase().Execute(cmd.Context(), usecase.ShowFactsInput{
				ConfigPath: configPath,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.JSON)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (defaults to the embedded config)")
	return cmd
}

func newHvDeployCommand(c *app.Container) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Announce a deploy using the hypervisor config",
		Long: `Deploy reads the Hyper-V section of the config and echoes the
deployment target. The provisioning itself is driven by the PowerShell
runner scripts; this command is their preflight.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.DeployHostUseCase().Execute(cmd.Context(), usecase.DeployHostInput{
				ConfigPath: configPath,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (defaults to the embedded config)")
	return cmd
}
