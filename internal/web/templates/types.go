// Package templates holds the templ components of the browser dashboard.
package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/fpl-form/internal/tracker"
)

const (
	PageTitle    = "FPL Form Tracker"
	pageSubtitle = "One place to get the details of Premier League players based on current form, " +
		"goals, assists, transfers in/out, price (£) and more."
	tableHeading = "Top Players by Form"
)

// DashboardData is everything the dashboard page needs for one render.
type DashboardData struct {
	Positions []string
	Clubs     []string
	Filter    tracker.Filter
	Rows      []tracker.DisplayRow
	Players   int
}

// newsColumn is rendered wrapping while every other cell stays on one line.
var newsColumn = len(tracker.Headers()) - 1

var baseCSS = `body{font-family:system-ui,sans-serif;margin:0;background:#fafafa;color:#222}` +
	`main{max-width:1400px;margin:0 auto;padding:1.5rem}` +
	`form.filters{display:flex;flex-wrap:wrap;gap:1.5rem;align-items:flex-end;margin:1rem 0}` +
	`form.filters label{display:flex;flex-direction:column;font-size:.85rem;font-weight:600;gap:.3rem}` +
	`table{border-collapse:collapse;width:100%;font-size:.85rem;background:#fff}` +
	`th,td{border-bottom:1px solid #e4e4e4;padding:.35rem .5rem;text-align:left;white-space:nowrap}` +
	`td.news{white-space:normal;min-width:14rem}th{position:sticky;top:0;background:#37003c;color:#fff}` +
	`.error{border:1px solid #b8383b;background:#ffcccc;padding:1rem;border-radius:.3rem}` +
	`.empty{padding:1rem;color:#666}`

func highlightCSS() string {
	var rules strings.Builder
	for _, highlight := range []tracker.Highlight{
		tracker.HighlightInjured, tracker.HighlightDoubtful, tracker.HighlightSuspended,
	} {
		rules.WriteString("tr.row-" + highlight.String() + " td{background-color:" + highlight.Colour() + "}")
	}

	return rules.String()
}

// stylesheet is built from constants only.
func stylesheet() templ.Component {
	return templ.Raw("<style>" + baseCSS + highlightCSS() + "</style>")
}

func rowClass(row tracker.DisplayRow) string {
	return "row-" + row.Highlight().String()
}

func formatCount(count int) string {
	return humanize.Comma(int64(count))
}
