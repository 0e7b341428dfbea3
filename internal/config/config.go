package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete configuration for the kursor CLI.
type Config struct {
	// Theme is the cursor theme to resolve when --theme is not given.
	Theme string `mapstructure:"theme" toml:"theme"`
	// Size is the requested cursor size in pixels.
	Size uint32 `mapstructure:"size" toml:"size"`
	// Logging controls CLI log output.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
}

// LoggingConfig controls log level and format.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// Load reads the configuration from ~/.config/kursor/config.toml (when
// present) and KURSOR_* environment variables, on top of defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("determine config directory: %w", err)
	}
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("KURSOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Legacy names kept alongside the automatic KURSOR_ bindings.
	if err := v.BindEnv("logging.level", "KURSOR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("bind KURSOR_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "KURSOR_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("bind KURSOR_LOG_FORMAT: %w", err)
	}

	v.SetDefault("theme", "default")
	v.SetDefault("size", 24)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No config file is fine; defaults and env apply.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Size == 0 {
		return nil, fmt.Errorf("invalid cursor size 0")
	}
	return cfg, nil
}
