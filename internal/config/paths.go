package config

import (
	"os"
	"path/filepath"
)

// GetPeekHome returns $PEEK_HOME or the ~/.peek default
func GetPeekHome() string {
	peekHome := os.Getenv("PEEK_HOME")
	if peekHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".peek"
		}
		return filepath.Join(homeDir, ".peek")
	}
	return ExpandPath(peekHome)
}

// GetDBPath returns $PEEK_HOME/catalog.db
func GetDBPath() string {
	return filepath.Join(GetPeekHome(), "catalog.db")
}

// GetSettingsPath returns $PEEK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetPeekHome(), "settings.json")
}

// GetSSHDir returns $PEEK_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetPeekHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
