// Package constants holds names and defaults shared across latexcmd packages.
package constants

// CLIName is the command-line name of the tool.
const CLIName = "latexcmd"

// DefaultSettingsFile is the settings file looked up in the working
// directory when --settings is not given.
const DefaultSettingsFile = ".latexcmd.yaml"

// EnvPrefix prefixes every environment variable read by the tool.
const EnvPrefix = "LATEXCMD_"

// DefaultContentPattern selects the documents scanned in a content directory.
const DefaultContentPattern = "*.tex"

// DefaultBuiltins are the environment keywords accepted in every document.
var DefaultBuiltins = []string{"begin", "end"}

// ExitFailure is the exit code for any failed run.
const ExitFailure = 1
