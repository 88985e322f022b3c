package tracker

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

const (
	// All disables a position or club filter.
	All = "All"
	// RowLimit is the maximum number of rows ever displayed.
	RowLimit = 150
	// maxPriceInputLen bounds raw price input. Longer values are rejected before any decimal arithmetic.
	maxPriceInputLen = 8
	// maxPriceExponent bounds the exponent of parsed price input since rescaling cost grows with it.
	maxPriceExponent = 2
)

var ErrInvalidPrice = errors.New("invalid price")

var (
	MinPrice  = decimal.RequireFromString("4.0")
	MaxPrice  = decimal.RequireFromString("15.0")
	PriceStep = decimal.RequireFromString("0.1")
)

// Filter holds the current control selections.
type Filter struct {
	Position string
	Club     string
	MaxPrice decimal.Decimal
}

// DefaultFilter selects everything up to the maximum price.
func DefaultFilter() Filter {
	return Filter{Position: All, Club: All, MaxPrice: MaxPrice}
}

// ClampPrice restricts a price to the range offered by the price control.
func ClampPrice(price decimal.Decimal) decimal.Decimal {
	switch {
	case price.LessThan(MinPrice):
		return MinPrice
	case price.GreaterThan(MaxPrice):
		return MaxPrice
	default:
		return price
	}
}

// ParsePrice reads a raw max price, rounded to the control step and clamped to the control range.
// Input that is too long or uses an exponent outside the bounds is rejected unparsed.
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxPriceInputLen {
		return MaxPrice, ErrInvalidPrice
	}

	price, errPrice := decimal.NewFromString(raw)
	if errPrice != nil {
		return MaxPrice, errors.Join(errPrice, ErrInvalidPrice)
	}

	if exp := price.Exponent(); exp < -maxPriceInputLen || exp > maxPriceExponent {
		return MaxPrice, ErrInvalidPrice
	}

	return ClampPrice(price.Round(1)), nil
}

func matchesLabel(selected string, value string) bool {
	return selected == "" || selected == All || selected == value
}

// Matches reports if the player satisfies all three predicates.
func (f Filter) Matches(player EnrichedPlayer) bool {
	return matchesLabel(f.Position, player.Position) &&
		matchesLabel(f.Club, player.Club) &&
		player.PriceValue.LessThanOrEqual(f.MaxPrice)
}

// DisplayRow is the final presentation row. It carries no price value, only the display price.
type DisplayRow struct {
	No           int
	Player       string
	Position     string
	Club         string
	Form         string
	Price        string
	GoalsScored  int
	Assists      int
	Minutes      int
	TransfersIn  int
	TransfersOut int
	Status       string
	News         string
}

// Highlight returns the row highlight for the rows status.
func (r DisplayRow) Highlight() Highlight {
	return HighlightFor(r.Status)
}

func newDisplayRow(number int, player EnrichedPlayer) DisplayRow {
	return DisplayRow{
		No:           number,
		Player:       player.Record.WebName,
		Position:     player.Position,
		Club:         player.Club,
		Form:         player.Record.Form.String(),
		Price:        player.Price,
		GoalsScored:  player.Record.GoalsScored,
		Assists:      player.Record.Assists,
		Minutes:      player.Record.Minutes,
		TransfersIn:  player.Record.TransfersInEvent,
		TransfersOut: player.Record.TransfersOutEvent,
		Status:       player.Status,
		News:         player.Record.News,
	}
}

// Select returns the players matching filter ordered by form, highest first. Players with equal
// form keep their input order. At most limit rows are returned, numbered from 1 in display order.
// A negative limit disables truncation.
func Select(players []EnrichedPlayer, filter Filter, limit int) []DisplayRow {
	matched := make([]EnrichedPlayer, 0, len(players))
	for _, player := range players {
		if filter.Matches(player) {
			matched = append(matched, player)
		}
	}

	slices.SortStableFunc(matched, func(a, b EnrichedPlayer) int { //nolint:varnamelen
		return b.FormValue.Cmp(a.FormValue)
	})

	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	rows := make([]DisplayRow, len(matched))
	for idx, player := range matched {
		rows[idx] = newDisplayRow(idx+1, player)
	}

	return rows
}
