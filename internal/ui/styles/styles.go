package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/fpl-form/internal/tracker"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black  = lipgloss.Color("#111111")
	Gray   = lipgloss.Color("#3e3e3e")
	White  = lipgloss.Color("#cccccc")
	Whiter = lipgloss.Color("#aaaaaa")
	Purple = lipgloss.Color("#37003c")

	Title    = lipgloss.NewStyle().Bold(true).Foreground(Accent).PaddingLeft(1)
	Subtitle = lipgloss.NewStyle().Foreground(Whiter).PaddingLeft(1)
	Filters  = lipgloss.NewStyle().Foreground(White).PaddingLeft(1)
	FilterOn = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	HelpBox  = lipgloss.NewStyle().PaddingLeft(1)

	TableHeading = lipgloss.NewStyle().Bold(true).Foreground(White).Background(Purple).Padding(0, 1)
	TableCell    = lipgloss.NewStyle().Padding(0, 1)
	TableRowOdd  = TableCell.Foreground(Whiter)
	TableRowEven = TableCell.Foreground(White)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	IconForm = "🔥"
)

// HighlightRow returns the cell style for a highlighted row, false when the row has no highlight.
func HighlightRow(highlight tracker.Highlight) (lipgloss.Style, bool) {
	colour := highlight.Colour()
	if colour == "" {
		return TableCell, false
	}

	return TableCell.Background(lipgloss.Color(colour)).Foreground(Black), true
}
