// Package render draws headings, cards and tables for terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	subheadStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	headerCell = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell       = lipgloss.NewStyle().Padding(0, 1)
)

// Heading renders a section title.
func Heading(s string) string {
	return headingStyle.Render(s)
}

// Subheading renders a subsection title.
func Subheading(s string) string {
	return subheadStyle.Render(s)
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Error renders an error line.
func Error(s string) string {
	return errorStyle.Render(s)
}

// Success renders a confirmation line.
func Success(s string) string {
	return successStyle.Render(s)
}

// Card renders a boxed value with a title above and a caption below.
func Card(title, value, caption string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		subheadStyle.Render(title),
		valueStyle.Render(value),
		mutedStyle.Render(caption),
	)
	return cardStyle.Render(body)
}

// Cards lays cards out side by side.
func Cards(cards ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// Table renders rows under headers. Columns listed in rightAligned are
// aligned right. An empty table renders the headers and a "No data" row.
func Table(headers []string, rows [][]string, rightAligned ...int) string {
	right := make(map[int]bool, len(rightAligned))
	for _, c := range rightAligned {
		right[c] = true
	}
	if len(rows) == 0 {
		placeholder := make([]string, len(headers))
		if len(placeholder) > 0 {
			placeholder[0] = "No data"
		}
		rows = [][]string{placeholder}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if row == table.HeaderRow {
				s = headerCell
			}
			if right[col] {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
	return t.Render()
}

// Lines joins rendered blocks with blank lines between them.
func Lines(blocks ...string) string {
	nonEmpty := blocks[:0:0]
	for _, b := range blocks {
		if b != "" {
			nonEmpty = append(nonEmpty, b)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}
