package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pilulerouge/latexcmd/pkg/commandconfig"
	"github.com/pilulerouge/latexcmd/pkg/console"
	"github.com/pilulerouge/latexcmd/pkg/constants"
	"github.com/pilulerouge/latexcmd/pkg/contentcheck"
	"github.com/pilulerouge/latexcmd/pkg/logger"
	"github.com/pilulerouge/latexcmd/pkg/timeutil"
	"github.com/spf13/cobra"
)

var checkLog = logger.New("cli:check_command")

// ErrUnknownCommands is returned in strict mode when the content uses
// commands the configuration does not declare.
var ErrUnknownCommands = errors.New("content uses unknown commands")

// CheckConfig holds the inputs of a check run.
type CheckConfig struct {
	ConfigPath  string
	ContentPath string // optional; empty validates the configuration only
	Settings    Settings
	JSONOutput  bool
	Verbose     bool
	Stdout      io.Writer
	Stderr      io.Writer
}

// checkSummary is the --json output of check and validate.
type checkSummary struct {
	Valid    bool                       `json:"valid"`
	Config   string                     `json:"config"`
	Commands int                        `json:"commands"`
	Warnings []commandconfig.Warning    `json:"warnings"`
	Errors   []*commandconfig.Violation `json:"errors,omitempty"`
	Unknown  []contentcheck.Finding     `json:"unknown"`
	Files    []string                   `json:"files"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <config> [content]",
		Short: "Validate a command configuration and scan documents for unknown commands",
		Long: `Validate a LaTeX command configuration file, then scan the content for
commands the configuration does not declare.

The content is either a single document or a directory; in a directory every
file matching the pattern (*.tex by default) is scanned, without descending
into subdirectories. The environment keywords begin and end are always
accepted.

Unknown commands are reported but do not fail the run unless --strict is set.

Examples:
  ` + constants.CLIName + ` check commands.json                  # Validate the configuration only
  ` + constants.CLIName + ` check commands.json chapter.tex      # Scan one document
  ` + constants.CLIName + ` check commands.json book/            # Scan every *.tex file in book/
  ` + constants.CLIName + ` check commands.json book/ --strict   # Fail on unknown commands
  ` + constants.CLIName + ` check commands.json book/ -b item    # Accept \item without declaring it
  ` + constants.CLIName + ` check commands.json book/ --json     # Output results in JSON format`,
		Args: cobra.RangeArgs(1, 2),
		RunE: RunCheckCommand,
	}
	AddCheckFlags(cmd)
	return cmd
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a command configuration",
		Long: `Validate a LaTeX command configuration file.

Commands in FORMAT blocks must carry a well formed tag: letters followed by an
optional number. A tag may only be used once, and an unnumbered tag cannot be
combined with numbered tags of the same letters (number 0 excepted).

Examples:
  ` + constants.CLIName + ` validate commands.json               # Stop at the first violation
  ` + constants.CLIName + ` validate commands.json --keep-going  # Report every tag violation
  ` + constants.CLIName + ` validate commands.json --json        # Output results in JSON format`,
		Args: cobra.ExactArgs(1),
		RunE: RunCheckCommand,
	}
	addSettingsFlags(cmd)
	return cmd
}

// RunCheckCommand runs a check from command-line arguments: the configuration
// path and an optional content path.
func RunCheckCommand(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	config := CheckConfig{
		ConfigPath: args[0],
		Settings:   settings,
		JSONOutput: jsonOutput,
		Verbose:    verbose,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}
	if len(args) > 1 {
		config.ContentPath = args[1]
	}
	return RunCheck(config)
}

// RunCheck validates the configuration and, when a content path is given,
// scans it for unknown commands.
func RunCheck(config CheckConfig) error {
	stdout, stderr := config.Stdout, config.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	start := time.Now()
	checkLog.Printf("Running check: config=%s, content=%s", config.ConfigPath, config.ContentPath)

	result, err := commandconfig.ValidateFile(config.ConfigPath, commandconfig.Options{KeepGoing: config.Settings.KeepGoing})
	summary := &checkSummary{
		Valid:    err == nil,
		Config:   config.ConfigPath,
		Commands: result.Commands.Len(),
		Warnings: append([]commandconfig.Warning{}, result.Warnings...),
		Errors:   commandconfig.Violations(err),
		Unknown:  []contentcheck.Finding{},
		Files:    []string{},
	}
	if !config.JSONOutput {
		PrintWarnings(stderr, result.Warnings)
	}
	if err != nil {
		checkLog.Printf("Configuration invalid: %v", err)
		if config.JSONOutput {
			if jsonErr := writeJSON(stdout, summary); jsonErr != nil {
				return jsonErr
			}
		}
		return err
	}

	if !config.JSONOutput {
		fmt.Fprintln(stdout, console.FormatSuccessMessage("Configuration file integrity verified."))
	}
	if config.Verbose {
		fmt.Fprintln(stderr, console.FormatVerboseMessage(fmt.Sprintf("Declared commands: %d, warnings: %d", result.Commands.Len(), len(result.Warnings))))
	}

	if config.ContentPath == "" {
		if config.JSONOutput {
			return writeJSON(stdout, summary)
		}
		return nil
	}

	if !config.JSONOutput {
		fmt.Fprintln(stdout, console.FormatInfoMessage("Checking commands in provided document(s)..."))
	}
	report, err := contentcheck.Check(result.Commands, config.ContentPath, contentcheck.Options{
		Pattern:  config.Settings.Pattern,
		Builtins: config.Settings.Builtins,
	})
	if err != nil {
		return err
	}
	summary.Files = report.Files
	summary.Unknown = append(summary.Unknown, report.Unknown...)

	if config.Verbose {
		fmt.Fprintln(stderr, console.FormatVerboseMessage(fmt.Sprintf("Scanned %d file(s) in %s", len(report.Files), timeutil.FormatDuration(time.Since(start)))))
	}

	if config.JSONOutput {
		if err := writeJSON(stdout, summary); err != nil {
			return err
		}
	} else if err := report.WriteText(stdout); err != nil {
		return err
	}

	if config.Settings.Strict && !report.Clean() {
		return fmt.Errorf("%w: %s", ErrUnknownCommands, strings.Join(report.UnknownNames(), ", "))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
