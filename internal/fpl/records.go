package fpl

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var errFormValue = errors.New("invalid form value")

// PlayerRecord is a single entry of the upstream "elements" collection. Only the fields used by the
// tracker are decoded.
type PlayerRecord struct {
	ID                int    `json:"id"`
	WebName           string `json:"web_name"`
	ElementType       int    `json:"element_type"`
	Team              int    `json:"team"`
	Status            string `json:"status"`
	Form              Form   `json:"form"`
	NowCost           int    `json:"now_cost"`
	GoalsScored       int    `json:"goals_scored"`
	Assists           int    `json:"assists"`
	Minutes           int    `json:"minutes"`
	TransfersInEvent  int    `json:"transfers_in_event"`
	TransfersOutEvent int    `json:"transfers_out_event"`
	News              string `json:"news"`
}

// ClubRecord is a single entry of the upstream "teams" collection.
type ClubRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Form holds the upstream form score as text. The api sends it as a quoted decimal ("5.3") but plain
// numbers are accepted too.
type Form string

func (f *Form) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*f = ""

		return nil
	}

	if unquoted, errUnquote := strconv.Unquote(text); errUnquote == nil {
		*f = Form(strings.TrimSpace(unquoted))

		return nil
	}

	if _, err := decimal.NewFromString(text); err != nil {
		return errors.Join(err, errFormValue)
	}

	*f = Form(text)

	return nil
}

// Value returns the numeric form score. Empty or non-numeric values rank as zero.
func (f Form) Value() decimal.Decimal {
	value, err := decimal.NewFromString(string(f))
	if err != nil {
		return decimal.Zero
	}

	return value
}

func (f Form) String() string {
	return string(f)
}

// Bootstrap is the decoded snapshot returned by a single fetch.
type Bootstrap struct {
	Players []PlayerRecord
	Clubs   []ClubRecord
}

// bootstrapPayload uses pointers so that absent keys can be told apart from empty arrays.
type bootstrapPayload struct {
	Elements *[]PlayerRecord `json:"elements"`
	Teams    *[]ClubRecord   `json:"teams"`
}
