package cli

import (
	"github.com/pilulerouge/latexcmd/pkg/constants"
	"github.com/pilulerouge/latexcmd/pkg/sliceutil"
	"github.com/spf13/cobra"
)

// addSettingsFlags registers the flags every configuration command accepts.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().String("settings", "", "Settings file (default: "+constants.DefaultSettingsFile+" when present)")
	cmd.Flags().BoolP("keep-going", "k", false, "Report every tag rule violation instead of stopping at the first one")
	cmd.Flags().BoolP("json", "j", false, "Output results in JSON format")
}

// AddCheckFlags registers the flags of commands that validate a configuration
// and scan content.
func AddCheckFlags(cmd *cobra.Command) {
	addSettingsFlags(cmd)
	cmd.Flags().StringP("pattern", "p", "", "Glob selecting the documents in a content directory (default: *.tex)")
	cmd.Flags().StringSliceP("builtin", "b", nil, "Command accepted without being declared (repeatable)")
	cmd.Flags().Bool("strict", false, "Fail when the content uses unknown commands")
}

// resolveSettings loads the settings and applies the flags that were set
// explicitly on the command line.
func resolveSettings(cmd *cobra.Command) (Settings, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("settings")
	s, err := LoadSettings(path)
	if err != nil {
		return s, err
	}

	if flags.Changed("pattern") {
		s.Pattern, _ = flags.GetString("pattern")
	}
	if flags.Changed("builtin") {
		extra, _ := flags.GetStringSlice("builtin")
		s.Builtins = sliceutil.Normalize(append(s.Builtins, extra...))
	}
	if flags.Changed("strict") {
		s.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("keep-going") {
		s.KeepGoing, _ = flags.GetBool("keep-going")
	}
	return s, nil
}
