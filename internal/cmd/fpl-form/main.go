package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/fpl-form/internal/config"
	"github.com/leighmacdonald/fpl-form/internal/fpl"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "fpl-form",
		Short: "Fantasy Premier League form tracker",
		Long:  `fpl-form - Ranks Fantasy Premier League players by recent form`,
		RunE:  serve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the form dashboard",
		Long:  "Serve the browser dashboard with position, club and max price filters",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about fpl-form",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path (default "+config.Path(config.DefaultConfigName+".yaml")+")")
	rootCmd.AddCommand(serveCmd, newTableCmd(), newTUICmd(), versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("fpl-form - FPL Form Tracker\n\n")   //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

// setup reads the config and installs the logger. An empty logName logs to stderr.
func setup(logName string, changes chan<- config.Config) (*config.Loader, config.Config, *slog.LevelVar, io.Closer, error) {
	loader := config.NewLoader(cfgFile, changes)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return nil, config.Config{}, nil, nil, errors.Join(errApp, errConfig)
	}

	// Already validated by Read.
	level, _ := userConfig.Level()
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	closer, errLogger := config.LoggerInit(logName, levelVar)
	if errLogger != nil {
		return nil, config.Config{}, nil, nil, errors.Join(errLogger, errApp)
	}

	slog.Info("Starting fpl-form", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("config", loader.Path()))

	return loader, userConfig, levelVar, closer, nil
}

func closeLogger(closer io.Closer) {
	if err := closer.Close(); err != nil {
		slog.Error("Failed to close log file", slog.String("error", err.Error()))
	}
}

func newFetcher(userConfig config.Config) *fpl.Client {
	return fpl.New(fpl.NewHTTPClient(userConfig.HTTPTimeout), userConfig.APIURL)
}
