package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	mutedColor   = lipgloss.Color("#666666")
	borderColor  = lipgloss.Color("#383838")

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

	tableMutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)
)

// renderTable draws rows under headers. Cells of the columns listed in
// muted are dimmed.
func renderTable(headers []string, rows [][]string, muted ...int) string {
	dim := make(map[int]bool, len(muted))
	for _, c := range muted {
		dim[c] = true
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case dim[col]:
				return tableMutedStyle
			}
			return tableCellStyle
		})
	return t.Render()
}
