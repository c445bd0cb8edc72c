// Package config provides XDG path helpers and the optional settings file.
package config

import (
	"os"
	"path/filepath"
)

// AppName names the per-user directories.
const AppName = "aptitude"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGStateHome returns the XDG state home or a default fallback.
func XDGStateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// DefaultConfigPath returns APTITUDE_CONFIG if set, otherwise the TOML file
// under the XDG config home.
func DefaultConfigPath() string {
	if p := os.Getenv("APTITUDE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(XDGConfigHome(), AppName, "config.toml")
}

// DefaultLogPath returns the log file used while the terminal UI runs.
func DefaultLogPath() string {
	return filepath.Join(XDGStateHome(), AppName, AppName+".log")
}
