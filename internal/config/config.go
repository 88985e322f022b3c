package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
	errInvalidConf = errors.New("invalid config value")
)

const (
	ConfigDirName     = "fpl-form"
	DefaultConfigName = "fpl-form"
	DefaultLogName    = "fpl-form.log"
	EnvPrefix         = "fplform"

	// DefaultAPIURL is the public bootstrap snapshot containing every player and club.
	DefaultAPIURL         = "https://fantasy.premierleague.com/api/bootstrap-static/"
	DefaultHTTPTimeout    = 10 * time.Second
	DefaultRequestTimeout = 30 * time.Second
	DefaultSessionTTL     = 30 * time.Minute
	DefaultListenAddr     = ":8080"
)

type Config struct {
	// ListenAddr is the address the dashboard http server binds to.
	ListenAddr string `mapstructure:"listen_addr"`
	// APIURL points at the upstream bootstrap endpoint. It only needs changing for testing or mirrors.
	APIURL string `mapstructure:"api_url"`
	// HTTPTimeout bounds the single upstream request made when a session starts.
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	// RequestTimeout bounds the handling of a single dashboard request.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// SessionTTL is how long an idle browser session keeps its loaded table.
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	LogLevel   string        `mapstructure:"log_level"`
}

// Level converts the configured level name into a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, errors.Join(err, errInvalidConf)
	}

	return level, nil
}

func (c Config) validate() error {
	if c.HTTPTimeout <= 0 {
		return errors.Join(errInvalidConf, errors.New("http_timeout must be positive"))
	}

	if c.RequestTimeout <= 0 {
		return errors.Join(errInvalidConf, errors.New("request_timeout must be positive"))
	}

	if c.SessionTTL <= 0 {
		return errors.Join(errInvalidConf, errors.New("session_ttl must be positive"))
	}

	if c.APIURL == "" {
		return errors.Join(errInvalidConf, errors.New("api_url cannot be empty"))
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// LoggerInit sets up the slog global handler. When logPath is empty, logs are written to stderr, otherwise
// to the named file under the config dir since some commands take over the console.
func LoggerInit(logPath string, level slog.Leveler) (io.Closer, error) {
	var (
		writer io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
		opts             = &slog.HandlerOptions{AddSource: false, Level: level}
	)

	if logPath != "" {
		logFile, errLogFile := os.Create(Path(logPath))
		if errLogFile != nil {
			return nil, errors.Join(errLogFile, errLoggerInit)
		}

		writer = logFile
		closer = logFile
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(writer, opts)))

	return closer, nil
}
