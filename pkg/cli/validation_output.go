package cli

import (
	"fmt"
	"io"

	"github.com/pilulerouge/latexcmd/pkg/commandconfig"
	"github.com/pilulerouge/latexcmd/pkg/console"
)

// FormatValidationError formats an error for console output. Several
// configuration violations reported together are listed under a
// "Found N configuration errors:" header.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}
	err = commandconfig.FormatAggregatedError(err, "configuration")
	return console.FormatErrorMessage(err.Error())
}

// PrintValidationError prints err to w with console formatting.
func PrintValidationError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, FormatValidationError(err))
}

// PrintWarnings prints configuration warnings to w, one per line.
func PrintWarnings(w io.Writer, warnings []commandconfig.Warning) {
	for _, warning := range warnings {
		fmt.Fprintln(w, console.FormatWarningMessage(warning.Message))
	}
}
