package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/fpl-form/internal/tracker"
	"github.com/leighmacdonald/fpl-form/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
)

// newsWidth is the widest the injury news column is allowed to get.
const newsWidth = 48

func newUnstyledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderHeader(true).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Gray)).
		Headers(headers...)
}

// RenderTable renders the rows with the status based row highlights. A width of zero lets the table size itself.
func RenderTable(rows []tracker.DisplayRow, width int) string {
	if len(rows) == 0 {
		return styles.InfoMessage.Render("No players match the selected filters.")
	}

	newsCol := len(tracker.Headers()) - 1
	cells := make([][]string, len(rows))
	for idx, row := range rows {
		cells[idx] = row.Cells()
		cells[idx][newsCol] = truncate.StringWithTail(cells[idx][newsCol], newsWidth, "…")
	}

	tbl := newUnstyledTable(tracker.Headers()...).
		Rows(cells...).
		StyleFunc(func(row int, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeading
			}

			if style, ok := styles.HighlightRow(rows[row].Highlight()); ok {
				return style
			}

			if row%2 == 0 {
				return styles.TableRowEven
			}

			return styles.TableRowOdd
		})

	if width > 0 {
		tbl.Width(width)
	}

	return tbl.Render()
}
