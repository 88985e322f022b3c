// Package ui renders the player form table in the terminal.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageTitle    = "FPL Form Tracker"
	pageSubtitle = "Filter by position, club and max price. Rows are ordered by form."
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, source Source) *UI {
	return &UI{
		program: tea.NewProgram(
			newRootModel(source),
			tea.WithAltScreen(),
			tea.WithContext(ctx)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}
