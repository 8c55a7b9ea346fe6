package cli

import (
	"fmt"
	"strings"

	"github.com/pilulerouge/latexcmd/pkg/commandconfig"
	"github.com/pilulerouge/latexcmd/pkg/console"
	"github.com/pilulerouge/latexcmd/pkg/constants"
	"github.com/pilulerouge/latexcmd/pkg/logger"
	"github.com/spf13/cobra"
)

var listLog = logger.New("cli:list_command")

// configListing is what list renders for a configuration.
type configListing struct {
	Configuration    string                     `json:"config" console:"header:Configuration"`
	Commands         int                        `json:"commands" console:"header:Commands"`
	Warnings         int                        `json:"warnings" console:"header:Warnings"`
	Definitions      []commandconfig.Definition `json:"definitions" console:"title:Declared Commands"`
	ConsumeOptions   []string                   `json:"consumeOptions,omitempty" console:"title:Environments Consuming Options,omitempty"`
	ConsumeArguments []string                   `json:"consumeArguments,omitempty" console:"title:Environments Consuming Arguments,omitempty"`
	Tables           []string                   `json:"table,omitempty" console:"title:Table Environments,omitempty"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <config>",
		Short: "List the commands declared by a configuration",
		Long: `Validate a LaTeX command configuration file and list its commands with
their block type, tag and arguments, followed by the environments it declares.

Examples:
  ` + constants.CLIName + ` list commands.json                   # List every command
  ` + constants.CLIName + ` list commands.json --type FORMAT     # List FORMAT commands only
  ` + constants.CLIName + ` list commands.json --json            # Output results in JSON format`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			blockType, _ := cmd.Flags().GetString("type")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			result, err := commandconfig.ValidateFile(args[0], commandconfig.Options{KeepGoing: settings.KeepGoing})
			PrintWarnings(cmd.ErrOrStderr(), result.Warnings)
			if err != nil {
				return err
			}

			listing := buildListing(result, blockType)
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), listing)
			}
			fmt.Fprint(cmd.OutOrStdout(), console.RenderStruct(listing))
			return nil
		},
	}
	addSettingsFlags(cmd)
	cmd.Flags().StringP("type", "t", "", "Only list commands of this block type (e.g. FORMAT)")
	return cmd
}

func buildListing(result *commandconfig.Result, blockType string) configListing {
	listing := configListing{
		Configuration:    result.Path,
		Commands:         result.Commands.Len(),
		Warnings:         len(result.Warnings),
		Definitions:      []commandconfig.Definition{},
		ConsumeOptions:   result.Environments.ConsumeOptions,
		ConsumeArguments: result.Environments.ConsumeArguments,
		Tables:           result.Environments.Table,
	}
	for _, def := range result.Definitions {
		if blockType != "" && !strings.EqualFold(def.Type, blockType) {
			continue
		}
		listing.Definitions = append(listing.Definitions, def)
	}
	listLog.Printf("Listing %d of %d definitions (type=%q)", len(listing.Definitions), len(result.Definitions), blockType)
	return listing
}
