package main

import (
	"fmt"
	"os"

	"github.com/pilulerouge/latexcmd/pkg/cli"
	"github.com/pilulerouge/latexcmd/pkg/constants"
	"github.com/spf13/cobra"
)

// Build-time variables.
var (
	version = "dev"
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:     constants.CLIName + " <config> [content]",
	Short:   "Validate LaTeX command configurations and check documents against them",
	Version: version,
	Long: `Validate a LaTeX command configuration file and check that documents only
use the commands it declares.

Running ` + constants.CLIName + ` with a configuration path behaves like the check command.

Settings are read from .latexcmd.yaml in the working directory (or --settings),
then from LATEXCMD_PATTERN, LATEXCMD_BUILTINS, LATEXCMD_STRICT and
LATEXCMD_KEEP_GOING, then from command-line flags.

Common Tasks:
  ` + constants.CLIName + ` commands.json                 # Validate a configuration
  ` + constants.CLIName + ` commands.json book/           # Check every *.tex file in book/
  ` + constants.CLIName + ` list commands.json            # List declared commands

For detailed help on any command, use:
  ` + constants.CLIName + ` [command] --help`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          cli.RunCheckCommand,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", constants.CLIName, cli.GetVersion())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output showing detailed information")
	cli.AddCheckFlags(rootCmd)

	rootCmd.SetVersionTemplate(constants.CLIName + " version {{.Version}}\n")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(cli.NewCheckCommand())
	rootCmd.AddCommand(cli.NewValidateCommand())
	rootCmd.AddCommand(cli.NewListCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	cli.SetVersionInfo(version)
	rootCmd.Version = cli.GetVersion()

	if err := rootCmd.Execute(); err != nil {
		cli.PrintValidationError(os.Stderr, err)
		os.Exit(constants.ExitFailure)
	}
}
