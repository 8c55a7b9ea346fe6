package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pilulerouge/latexcmd/pkg/logger"
	"github.com/pilulerouge/latexcmd/pkg/styles"
)

var tableLog = logger.New("console:table")

// TableConfig describes a table to render.
type TableConfig struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders config as a bordered lipgloss table on a terminal, or
// as space-aligned columns otherwise. An empty table renders as "".
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}
	tableLog.Printf("Rendering table: title=%q, columns=%d, rows=%d", config.Title, len(config.Headers), len(config.Rows))

	var out strings.Builder
	if config.Title != "" {
		out.WriteString(applyStyle(stdoutIsTTY, styles.TableTitle, config.Title))
		out.WriteString("\n")
	}

	if stdoutIsTTY() {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(styles.TableBorder).
			Headers(config.Headers...).
			Rows(config.Rows...).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return styles.TableHeader
				}
				return styles.TableCell
			})
		out.WriteString(t.String())
		out.WriteString("\n")
		return out.String()
	}

	out.WriteString(renderPlainTable(config.Headers, config.Rows))
	return out.String()
}

func renderPlainTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var out strings.Builder
	writeRow := func(cells []string) {
		var line strings.Builder
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			line.WriteString(cell)
			if i < len(widths)-1 {
				line.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		out.WriteString(strings.TrimRight(line.String(), " "))
		out.WriteString("\n")
	}

	writeRow(headers)
	separators := make([]string, len(widths))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}
	writeRow(separators)
	for _, row := range rows {
		writeRow(row)
	}
	return out.String()
}
