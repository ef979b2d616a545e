package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lukemcguire/snapfetch/snapshot"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cellStyle    = lipgloss.NewStyle()
)

// RenderSummary produces a Lip Gloss styled summary of a completed fetch run.
func RenderSummary(res *snapshot.RunResult) string {
	if res == nil {
		return errorStyle.Render("No results available.")
	}

	var builder strings.Builder

	if len(res.Files) == 0 {
		builder.WriteString(successStyle.Render("Done. No targets configured, nothing written."))
		builder.WriteString("\n")
		return builder.String()
	}

	builder.WriteString(successStyle.Render(fmt.Sprintf("Wrote %d snapshot files:", len(res.Files))))
	builder.WriteString("\n")

	rows := make([][]string, 0, len(res.Files))
	for _, f := range res.Files {
		rows = append(rows, []string{f.URL, f.Path})
	}

	filesTable := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("URL", "File").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(rows...)

	builder.WriteString(filesTable.Render())
	builder.WriteString("\n")

	builder.WriteString(dimStyle.Render(fmt.Sprintf(
		"Fetched %d targets in %s",
		res.Stats.Targets,
		res.Stats.Duration.Round(time.Millisecond),
	)))
	builder.WriteString("\n")

	return builder.String()
}
