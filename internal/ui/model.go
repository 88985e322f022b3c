package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/fpl-form/internal/tracker"
	"github.com/leighmacdonald/fpl-form/internal/ui/input"
	"github.com/leighmacdonald/fpl-form/internal/ui/styles"
)

// Source is the loaded player table the terminal view filters.
type Source interface {
	Clubs() []string
	Players() int
	Select(filter tracker.Filter) []tracker.DisplayRow
}

// rootModel is the top level model for the terminal dashboard.
type rootModel struct {
	source    Source
	positions []string
	clubs     []string
	filter    tracker.Filter
	rows      []tracker.DisplayRow
	viewport  viewport.Model
	help      help.Model
	keys      input.Map
	width     int
	height    int
}

func newRootModel(source Source) rootModel {
	model := rootModel{
		source:    source,
		positions: append([]string{tracker.All}, tracker.Positions()...),
		clubs:     append([]string{tracker.All}, source.Clubs()...),
		filter:    tracker.DefaultFilter(),
		viewport:  viewport.New(0, 0),
		help:      help.New(),
		keys:      input.Default,
	}
	model.refresh()

	return model
}

func (m rootModel) Init() tea.Cmd {
	return tea.SetWindowTitle(pageTitle)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()

			return m, nil
		case key.Matches(msg, m.keys.Position):
			m.filter.Position = nextOption(m.positions, m.filter.Position)
			m.refresh()

			return m, nil
		case key.Matches(msg, m.keys.Club):
			m.filter.Club = nextOption(m.clubs, m.filter.Club)
			m.refresh()

			return m, nil
		case key.Matches(msg, m.keys.PriceUp):
			m.filter.MaxPrice = stepPrice(m.filter.MaxPrice, 1)
			m.refresh()

			return m, nil
		case key.Matches(msg, m.keys.PriceDown):
			m.filter.MaxPrice = stepPrice(m.filter.MaxPrice, -1)
			m.refresh()

			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.filter = tracker.DefaultFilter()
			m.refresh()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(inMsg)

	return m, cmd
}

// refresh re-runs the selection for the current filter and resets the scroll position.
func (m *rootModel) refresh() {
	m.rows = m.source.Select(m.filter)
	slog.Debug("Filter changed",
		slog.String("position", m.filter.Position),
		slog.String("club", m.filter.Club),
		slog.String("max_price", m.filter.MaxPrice.StringFixed(1)),
		slog.Int("rows", len(m.rows)))
	m.viewport.SetContent(RenderTable(m.rows, m.width))
	m.viewport.GotoTop()
}

func (m *rootModel) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-lipgloss.Height(m.header())-lipgloss.Height(m.footer()), 0)
	m.viewport.SetContent(RenderTable(m.rows, m.width))
}

func (m rootModel) header() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(styles.IconForm+" "+pageTitle),
		styles.Subtitle.Render(pageSubtitle),
		m.filterLine(),
		styles.Subtitle.Render(fmt.Sprintf("Showing %d of %d players", len(m.rows), m.source.Players())))
}

func (m rootModel) filterLine() string {
	parts := []string{
		"Position: " + styles.FilterOn.Render(m.filter.Position),
		"Club: " + styles.FilterOn.Render(m.filter.Club),
		"Max Price: " + styles.FilterOn.Render("£"+m.filter.MaxPrice.StringFixed(1)+"m"),
	}

	return styles.Filters.Render(strings.Join(parts, "  "))
}

func (m rootModel) footer() string {
	return styles.HelpBox.Render(m.help.View(m.keys))
}

func (m rootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), m.viewport.View(), m.footer())
}
