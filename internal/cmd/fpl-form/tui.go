package main

import (
	"errors"
	"os"
	"path"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/fpl-form/internal/config"
	"github.com/leighmacdonald/fpl-form/internal/session"
	"github.com/leighmacdonald/fpl-form/internal/ui"
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the form table in the terminal",
		Long:  "Interactive terminal view of the form table with position, club and max price filters",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Make sure our config home exists for the log file.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	// The console is taken over by the ui so logs go to a file.
	_, userConfig, _, logCloser, errSetup := setup(config.DefaultLogName, nil)
	if errSetup != nil {
		return errSetup
	}
	defer closeLogger(logCloser)

	sess, errOpen := session.Open(cmd.Context(), newFetcher(userConfig))
	if errOpen != nil {
		return errors.Join(errOpen, errApp)
	}

	return ui.New(cmd.Context(), sess).Run()
}
