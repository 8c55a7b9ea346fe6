// Package console formats user-facing messages and tables.
//
// Styling is applied only when the stream is a terminal, so output piped to a
// file or captured in tests is plain text.
package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pilulerouge/latexcmd/pkg/styles"
	"github.com/pilulerouge/latexcmd/pkg/tty"
)

// Errors, warnings and verbose lines are written to stderr. Everything else
// goes to stdout. The terminal checks are variables so tests can force either
// mode.
var (
	stdoutIsTTY = tty.IsStdoutTerminal
	stderrIsTTY = tty.IsStderrTerminal
)

func applyStyle(isTTY func() bool, style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// FormatErrorMessage formats a fatal error.
func FormatErrorMessage(message string) string {
	return applyStyle(stderrIsTTY, styles.Error, "✗ ") + message
}

// FormatWarningMessage formats a non-fatal warning.
func FormatWarningMessage(message string) string {
	return applyStyle(stderrIsTTY, styles.Warning, "⚠ "+message)
}

// FormatSuccessMessage formats a success confirmation.
func FormatSuccessMessage(message string) string {
	return applyStyle(stdoutIsTTY, styles.Success, "✓ ") + message
}

// FormatInfoMessage formats an informational line.
func FormatInfoMessage(message string) string {
	return applyStyle(stdoutIsTTY, styles.Info, "ℹ ") + message
}

// FormatListItem formats one entry of a bulleted list.
func FormatListItem(item string) string {
	return "  • " + item
}

// FormatVerboseMessage formats output that is only shown with --verbose.
func FormatVerboseMessage(message string) string {
	return applyStyle(stderrIsTTY, styles.Muted, "› "+message)
}
