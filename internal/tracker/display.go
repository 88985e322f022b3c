package tracker

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// Highlight classifies the background colour of a row.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightInjured
	HighlightDoubtful
	HighlightSuspended
)

var (
	highlights = map[string]Highlight{
		"Injured":   HighlightInjured,
		"Doubtful":  HighlightDoubtful,
		"Suspended": HighlightSuspended,
	}

	highlightColours = map[Highlight]string{
		HighlightInjured:   "#FFCCCC",
		HighlightDoubtful:  "#FFE5B4",
		HighlightSuspended: "#D3D3D3",
	}

	headers = []string{
		"No.", "Player", "Position", "Club", "Form", "Price (£m)", "Goals Scored", "Assists",
		"Minutes Played", "Transfers In (GW)", "Transfers Out (GW)", "Status", "Injury News",
	}
)

// HighlightFor returns the highlight for a status label. Active and unknown statuses are not highlighted.
func HighlightFor(status string) Highlight {
	return highlights[status]
}

// Colour returns the background colour as a hex string, empty for HighlightNone.
func (h Highlight) Colour() string {
	return highlightColours[h]
}

func (h Highlight) String() string {
	switch h {
	case HighlightInjured:
		return "injured"
	case HighlightDoubtful:
		return "doubtful"
	case HighlightSuspended:
		return "suspended"
	case HighlightNone:
		fallthrough
	default:
		return "none"
	}
}

// Headers returns the column titles in display order.
func Headers() []string {
	return append([]string(nil), headers...)
}

// Cells returns the text of each column in the same order as Headers.
func (r DisplayRow) Cells() []string {
	return []string{
		strconv.Itoa(r.No),
		r.Player,
		r.Position,
		r.Club,
		r.Form,
		r.Price,
		strconv.Itoa(r.GoalsScored),
		strconv.Itoa(r.Assists),
		humanize.Comma(int64(r.Minutes)),
		humanize.Comma(int64(r.TransfersIn)),
		humanize.Comma(int64(r.TransfersOut)),
		r.Status,
		r.News,
	}
}
