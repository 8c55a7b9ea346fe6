// Package styles holds the lipgloss colours and styles shared by console output.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colours, readable on light and dark terminals.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#D73737", Dark: "#FF5555"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#C77C02", Dark: "#FFB86C"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#2E8B57", Dark: "#50FA7B"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#2C6FBB", Dark: "#8BE9FD"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#BDBDBD", Dark: "#44475A"}
)

var (
	Error   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	Warning = lipgloss.NewStyle().Foreground(ColorWarning)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Info    = lipgloss.NewStyle().Foreground(ColorInfo)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)

	TableHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	TableCell   = lipgloss.NewStyle().Padding(0, 1)
	TableTitle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	TableBorder = lipgloss.NewStyle().Foreground(ColorBorder)
)
