package tracker

import (
	"github.com/leighmacdonald/fpl-form/internal/fpl"
	"golang.org/x/exp/slices"
)

// Table is the read-only enriched data set built once per session.
type Table struct {
	players []EnrichedPlayer
	clubs   []string
}

func NewTable(data fpl.Bootstrap) Table {
	return Table{
		players: Enrich(data.Players, data.Clubs),
		clubs:   newClubLookup(data.Clubs).labels(),
	}
}

// Players returns a copy of the enriched players in upstream order.
func (t Table) Players() []EnrichedPlayer {
	return slices.Clone(t.players)
}

// Clubs returns the club labels sorted alphabetically.
func (t Table) Clubs() []string {
	return slices.Clone(t.clubs)
}

func (t Table) Len() int {
	return len(t.players)
}

// Select applies the filter with the standard row limit.
func (t Table) Select(filter Filter) []DisplayRow {
	return Select(t.players, filter, RowLimit)
}
