package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./helmarr.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "helmarr", "config.toml")
}

// defaultDatabasePath returns the XDG-compliant default database path.
func defaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./helmarr.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "helmarr", "helmarr.db")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. HELMARR_CONFIG environment variable
//  2. ./helmarr.toml (current directory)
//  3. $XDG_CONFIG_HOME/helmarr/config.toml
//  4. /etc/helmarr/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("HELMARR_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("HELMARR_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./helmarr.toml",
		DefaultPath(),
		"/etc/helmarr/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
