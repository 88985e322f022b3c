package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leighmacdonald/fpl-form/internal/config"
	"github.com/leighmacdonald/fpl-form/internal/session"
	"github.com/leighmacdonald/fpl-form/internal/web"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// serve runs the browser dashboard until interrupted.
func serve(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configUpdates := make(chan config.Config, 1)
	loader, userConfig, levelVar, logCloser, errSetup := setup("", configUpdates)
	if errSetup != nil {
		return errSetup
	}
	defer closeLogger(logCloser)

	loader.Watch()

	registry := session.NewRegistry(newFetcher(userConfig), userConfig.SessionTTL)
	httpServer := &http.Server{
		Addr:              userConfig.ListenAddr,
		Handler:           web.New(registry, userConfig.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      userConfig.RequestTimeout + userConfig.HTTPTimeout,
		IdleTimeout:       2 * time.Minute,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		slog.Info("Listening", slog.String("addr", userConfig.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(err, errApp)
		}

		return nil
	})

	group.Go(func() error {
		for {
			select {
			case conf := <-configUpdates:
				// Only the level can change on a running server.
				if level, errLevel := conf.Level(); errLevel == nil {
					levelVar.Set(level)
					slog.Info("Applied config update", slog.String("log_level", level.String()))
				}
			case <-groupCtx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				slog.Info("Shutting down")
				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return errors.Join(err, errApp)
				}

				return nil
			}
		}
	})

	return group.Wait()
}
