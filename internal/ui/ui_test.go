package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/fpl-form/internal/fpl"
	"github.com/leighmacdonald/fpl-form/internal/tracker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type tableSource struct {
	tracker.Table
}

func (s tableSource) Players() int {
	return s.Len()
}

func newSource() tableSource {
	return tableSource{Table: tracker.NewTable(fpl.Bootstrap{
		Players: []fpl.PlayerRecord{
			{WebName: "Keeper", Form: "2.0", NowCost: 45, ElementType: 1, Team: 1, Status: "a"},
			{WebName: "Striker", Form: "8.5", NowCost: 120, ElementType: 4, Team: 2, Status: "d", News: strings.Repeat("x", 80)},
			{WebName: "Winger", Form: "6.0", NowCost: 75, ElementType: 3, Team: 1, Status: "a"},
		},
		Clubs: []fpl.ClubRecord{{ID: 1, Name: "Wolves"}, {ID: 2, Name: "Arsenal"}},
	})}
}

func keyPress(model tea.Model, keys string) tea.Model {
	for _, r := range keys {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return model
}

func TestNextOption(t *testing.T) {
	options := []string{tracker.All, "Goalkeeper", "Defender"}
	require.Equal(t, "Goalkeeper", nextOption(options, tracker.All))
	require.Equal(t, tracker.All, nextOption(options, "Defender"))
	require.Equal(t, tracker.All, nextOption(options, "Unknown"))
	require.Equal(t, "x", nextOption(nil, "x"))
}

func TestStepPrice(t *testing.T) {
	require.Equal(t, "10.5", stepPrice(decimal.RequireFromString("10.0"), 1).StringFixed(1))
	require.Equal(t, "15.0", stepPrice(tracker.MaxPrice, 1).StringFixed(1))
	require.Equal(t, "4.0", stepPrice(decimal.RequireFromString("4.2"), -1).StringFixed(1))
}

func TestRenderTable(t *testing.T) {
	rows := newSource().Select(tracker.DefaultFilter())
	out := RenderTable(rows, 0)

	require.Contains(t, out, "Striker")
	require.Contains(t, out, "£12.0")
	require.Less(t, strings.Index(out, "Striker"), strings.Index(out, "Winger"))
	require.Less(t, strings.Index(out, "Winger"), strings.Index(out, "Keeper"))
	require.NotContains(t, out, strings.Repeat("x", newsWidth+1))
	require.Contains(t, out, "…")

	require.Contains(t, RenderTable(nil, 0), "No players match the selected filters.")
}

func TestModelFilters(t *testing.T) {
	var model tea.Model = newRootModel(newSource())
	model, _ = model.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	require.Len(t, model.(rootModel).rows, 3)
	require.Contains(t, model.View(), "Showing 3 of 3 players")

	model = keyPress(model, "p")
	root := model.(rootModel)
	require.Equal(t, "Goalkeeper", root.filter.Position)
	require.Len(t, root.rows, 1)
	require.Equal(t, "Keeper", root.rows[0].Player)

	model = keyPress(model, "pppp")
	require.Equal(t, tracker.All, model.(rootModel).filter.Position)

	model = keyPress(model, "cc")
	root = model.(rootModel)
	require.Equal(t, "Wolves", root.filter.Club)
	require.Len(t, root.rows, 2)

	model = keyPress(model, "r")
	model = keyPress(model, "--------")
	root = model.(rootModel)
	require.Equal(t, "11.0", root.filter.MaxPrice.StringFixed(1))
	require.Len(t, root.rows, 2)
	require.Contains(t, model.View(), "£11.0m")

	model = keyPress(model, "r")
	require.Equal(t, tracker.DefaultFilter(), model.(rootModel).filter)
}

func TestModelQuit(t *testing.T) {
	model := newRootModel(newSource())
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
