// Package appconfig loads the chessgame CLI's configuration: an optional
// YAML/ENV file read through viper, overridden by environment variables,
// overridden in turn by explicit CLI flags. The core library packages take
// no configuration of their own; only this binary-level layer exists.
package appconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings cmd/chessgame reads before acting on a
// subcommand's flags.
type Config struct {
	// Engine selects which enginebridge adapter resolves positions:
	// "corentings" or "dragontooth".
	Engine string `mapstructure:"engine"`
	// LineWidth is the default pgn.Writer wrap width.
	LineWidth int `mapstructure:"line_width"`
	// Verbose enables development-mode logging.
	Verbose bool `mapstructure:"verbose"`
}

// Defaults returns the configuration used when no file, environment
// variable or flag overrides a setting.
func Defaults() Config {
	return Config{Engine: "corentings", LineWidth: 79, Verbose: false}
}

// Load reads configPath (if non-empty and present) into viper, layers in
// CHESSGAME_-prefixed environment variables, and returns the merged Config.
// A missing configPath is not an error: defaults and environment variables
// still apply. Flag overrides are the caller's responsibility, applied
// after Load returns, since urfave/cli flags take precedence over both.
func Load(configPath string) (Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("engine", defaults.Engine)
	v.SetDefault("line_width", defaults.LineWidth)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix("chessgame")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("appconfig: reading %s: %w", configPath, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("appconfig: unmarshalling: %w", err)
	}
	return cfg, nil
}
