package ui

import (
	"github.com/leighmacdonald/fpl-form/internal/tracker"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// priceStep is how much a single key press moves the max price.
var priceStep = decimal.RequireFromString("0.5")

// nextOption returns the option after current, wrapping to the start. Unknown values restart the cycle.
func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return current
	}

	idx := slices.Index(options, current)

	return options[(idx+1)%len(options)]
}

// stepPrice moves the max price by steps increments, staying within the price control range.
func stepPrice(price decimal.Decimal, steps int64) decimal.Decimal {
	return tracker.ClampPrice(price.Add(priceStep.Mul(decimal.NewFromInt(steps))))
}
