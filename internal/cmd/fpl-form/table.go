package main

import (
	"errors"
	"fmt"

	"github.com/leighmacdonald/fpl-form/internal/session"
	"github.com/leighmacdonald/fpl-form/internal/tracker"
	"github.com/leighmacdonald/fpl-form/internal/ui"
	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	var (
		position string
		club     string
		maxPrice string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the form table",
		Long:  "Fetch the current player data once and print the filtered form table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, errFilter := tableFilter(position, club, maxPrice)
			if errFilter != nil {
				return errFilter
			}

			_, userConfig, _, logCloser, errSetup := setup("", nil)
			if errSetup != nil {
				return errSetup
			}
			defer closeLogger(logCloser)

			sess, errOpen := session.Open(cmd.Context(), newFetcher(userConfig))
			if errOpen != nil {
				return errors.Join(errOpen, errApp)
			}

			rows := sess.Select(filter)
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTable(rows, 0)); err != nil {
				return errors.Join(err, errApp)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d players\n", len(rows), sess.Players())

			return err
		},
	}

	cmd.Flags().StringVar(&position, "position", tracker.All, "Position to show")
	cmd.Flags().StringVar(&club, "club", tracker.All, "Club to show")
	cmd.Flags().StringVar(&maxPrice, "max-price", tracker.MaxPrice.StringFixed(1), "Maximum price in £m (4.0 - 15.0)")

	return cmd
}

// tableFilter builds the filter from the command flags. Prices outside the range are clamped.
func tableFilter(position string, club string, maxPrice string) (tracker.Filter, error) {
	filter := tracker.DefaultFilter()
	if position != "" {
		filter.Position = position
	}

	if club != "" {
		filter.Club = club
	}

	price, errPrice := tracker.ParsePrice(maxPrice)
	if errPrice != nil {
		return filter, errPrice
	}

	filter.MaxPrice = price

	return filter, nil
}
