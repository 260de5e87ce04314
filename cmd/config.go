package cmd

import (
	"fmt"
	"strings"

	"convoke/internal/appctx"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	configInstanceType  string
	configInstanceName  string
	configEnvironment   string
	configSystemFolders bool
)

// newConfigCmd creates the parent command for configuration inspection.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect instance configurations",
	}

	configCmd.PersistentFlags().StringVarP(&configInstanceType, "type", "t", "node",
		"instance type (node or server)")
	configCmd.PersistentFlags().BoolVar(&configSystemFolders, "system", false,
		"use the system-wide installation layout instead of the per-user one")

	configCmd.AddCommand(newConfigListCmd())
	configCmd.AddCommand(newConfigCheckCmd())
	return configCmd
}

// newConfigListCmd creates the command that lists every configuration
// document discovered for an instance type.
func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List discovered configurations for an instance type",
		RunE: func(cmd *cobra.Command, args []string) error {
			managers, failed := appctx.AvailableConfigurations(configInstanceType, configSystemFolders)

			if len(managers) == 0 && len(failed) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No configurations found for instance type %q\n", configInstanceType)
				return nil
			}

			writer := table.NewWriter()
			writer.SetOutputMirror(cmd.OutOrStdout())
			writer.SetStyle(table.StyleRounded)
			writer.AppendHeader(table.Row{"Name", "Environments", "Path"})
			for _, manager := range managers {
				writer.AppendRow(table.Row{
					manager.Name(),
					strings.Join(manager.Environments(), ", "),
					manager.Path(),
				})
			}
			writer.Render()

			if len(failed) > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintf(cmd.OutOrStdout(), "Failed to load %d configuration(s):\n", len(failed))
				for _, path := range failed {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", path)
				}
			}
			return nil
		},
	}
}

// newConfigCheckCmd creates the command that checks a single instance
// configuration for a given environment.
func newConfigCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check that an instance configuration defines an environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configInstanceName == "" {
				return fmt.Errorf("--name is required")
			}

			if !appctx.ConfigExists(configInstanceType, configInstanceName, configEnvironment, configSystemFolders) {
				return fmt.Errorf("no %s configuration %q with environment %q",
					configInstanceType, configInstanceName, environmentLabel())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration %q defines environment %q\n",
				configInstanceName, environmentLabel())
			return nil
		},
	}

	checkCmd.Flags().StringVarP(&configInstanceName, "name", "n", "", "instance name")
	checkCmd.Flags().StringVarP(&configEnvironment, "environment", "e", "",
		"environment name (defaults to "+appctx.DefaultEnvironment+")")
	return checkCmd
}

func environmentLabel() string {
	if configEnvironment == "" {
		return appctx.DefaultEnvironment
	}
	return configEnvironment
}
