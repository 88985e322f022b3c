package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader with all defaults applied. When configFile is non-empty it is used instead of
// searching the standard locations. A nil changes channel disables watching.
func NewLoader(configFile string, changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("listen_addr", DefaultListenAddr)
	loader.SetDefault("api_url", DefaultAPIURL)
	loader.SetDefault("http_timeout", DefaultHTTPTimeout)
	loader.SetDefault("request_timeout", DefaultRequestTimeout)
	loader.SetDefault("session_ttl", DefaultSessionTTL)
	loader.SetDefault("log_level", "info")
	loader.SetConfigType("yaml")
	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file in use, publishing re-read configs on the changes channel.
func (cl *Loader) Watch() {
	if cl.changes == nil || cl.ConfigFileUsed() == "" {
		return
	}

	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered", slog.String("path", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	select {
	case cl.changes <- config:
	default:
		slog.Warn("Dropped config update, previous update not yet applied", slog.String("path", in.Name))
	}
}

// Read loads the config file if one exists. A missing file is not an error, the defaults and
// environment are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.validate(); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
