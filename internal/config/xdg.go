// Package config provides the kursor CLI configuration: XDG-compliant
// lookup of the config file plus viper-backed loading with environment
// overrides.
package config

import (
	"os"
	"path/filepath"
)

const appName = "kursor"

// GetConfigDir returns the XDG config directory for kursor:
// $XDG_CONFIG_HOME/kursor (default: ~/.config/kursor).
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
