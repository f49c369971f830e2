// Package config loads codetree settings from defaults, an optional YAML
// config file, CODETREE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CODETREE_FILE.
const EnvPrefix = "CODETREE"

type Config struct {
	SnapshotPath string `mapstructure:"file"`
	Separator    string `mapstructure:"separator"`
	SearchLimit  int    `mapstructure:"search_limit"`
	LogCalls     bool   `mapstructure:"log_calls"`
	LogLevel     string `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults. Call logging is
// disabled by default.
func DefaultConfig() Config {
	return Config{
		SnapshotPath: "",
		Separator:    " → ",
		SearchLimit:  10,
		LogCalls:     false,
		LogLevel:     "info",
	}
}

// flagKeys maps flag names onto config keys.
var flagKeys = map[string]string{
	"file":      "file",
	"separator": "separator",
	"limit":     "search_limit",
	"log":       "log_calls",
	"log-level": "log_level",
}

// Load resolves configuration. When configPath is empty, ~/.codetree/config.yaml
// is read if it exists. Flags that were set on the command line take
// precedence over the environment, which takes precedence over the file.
// flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("file", def.SnapshotPath)
	v.SetDefault("separator", def.Separator)
	v.SetDefault("search_limit", def.SearchLimit)
	v.SetDefault("log_calls", def.LogCalls)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := readConfigFile(v, configPath); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = def.SearchLimit
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper, configPath string) error {
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", configPath, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(home, ".codetree"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}
