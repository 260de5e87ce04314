package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands. These follow common conventions.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
)

// rootCmd represents the base command for the convoke tooling.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "convoke",
	Short: "Inspect convoke instance configurations",
	Long: `convoke resolves where node and server instances keep their
configuration, data and logs on this machine, and inspects the
multi-environment configuration documents found there.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "convoke version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
}
