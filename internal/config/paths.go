package config

import (
	"os"
	"path/filepath"
)

// GetToastyHome returns TOASTY_HOME or the ~/.toasty default
func GetToastyHome() string {
	toastyHome := os.Getenv("TOASTY_HOME")
	if toastyHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".toasty"
		}
		return filepath.Join(homeDir, ".toasty")
	}
	return ExpandPath(toastyHome)
}

// GetDBPath returns $TOASTY_HOME/history.db
func GetDBPath() string {
	return filepath.Join(GetToastyHome(), "history.db")
}

// GetSettingsPath returns $TOASTY_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetToastyHome(), "settings.json")
}

// GetSoundsDir returns $TOASTY_HOME/sounds
func GetSoundsDir() string {
	return filepath.Join(GetToastyHome(), "sounds")
}

// GetSoundPath resolves a bare audio file name against the sounds directory
func GetSoundPath(name string) string {
	return filepath.Join(GetSoundsDir(), name)
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
