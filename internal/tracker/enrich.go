package tracker

import (
	"github.com/leighmacdonald/fpl-form/internal/fpl"
	"github.com/shopspring/decimal"
)

const currencySymbol = "£"

// EnrichedPlayer is a player record joined with its labels and derived price fields. Values are
// never modified once built.
type EnrichedPlayer struct {
	Record   fpl.PlayerRecord
	Position string
	Club     string
	Status   string
	// Price is the display price, eg. "£5.5".
	Price string
	// PriceValue is now_cost / 10 rounded to one decimal place. Only used for filtering.
	PriceValue decimal.Decimal
	// FormValue is the numeric form used for ordering.
	FormValue decimal.Decimal
}

// PriceFromCost converts a cost in tenths into the rounded price value and its display string.
// Rounding is half up, though an integer cost in tenths is always exact at one decimal.
func PriceFromCost(cost int) (decimal.Decimal, string) {
	value := decimal.New(int64(cost), -1).Round(1)

	return value, currencySymbol + value.StringFixed(1)
}

// Enrich projects every player into an EnrichedPlayer, preserving input order.
func Enrich(players []fpl.PlayerRecord, clubs []fpl.ClubRecord) []EnrichedPlayer {
	lookup := newClubLookup(clubs)
	enriched := make([]EnrichedPlayer, len(players))

	for idx, player := range players {
		priceValue, price := PriceFromCost(player.NowCost)
		enriched[idx] = EnrichedPlayer{
			Record:     player,
			Position:   PositionLabel(player.ElementType),
			Club:       lookup.label(player.Team),
			Status:     StatusLabel(player.Status),
			Price:      price,
			PriceValue: priceValue,
			FormValue:  player.Form.Value(),
		}
	}

	return enriched
}
