package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default values applied when settings.json leaves fields unset
const (
	DefaultNtfyServer = "https://ntfy.sh"
	DefaultAudioFile  = "toasty.mp3"
)

// Settings represents the structure of ~/.toasty/settings.json
type Settings struct {
	AudioFile    string `json:"audio_file,omitempty"`
	DBPath       string `json:"db_path,omitempty"`
	Debug        *bool  `json:"debug,omitempty"`
	Enabled      *bool  `json:"enabled,omitempty"`
	MaxLogFiles  *int   `json:"max_log_files,omitempty"`
	NtfyServer   string `json:"ntfy_server,omitempty"`
	NtfyToken    string `json:"ntfy_token,omitempty"`
	NtfyTopic    string `json:"ntfy_topic,omitempty"`
	ProjectTag   string `json:"project_tag,omitempty"`
	ProjectTitle string `json:"project_title,omitempty"`
}

// NotificationsEnabled reports whether the hook should process events at all.
// Unset means enabled.
func (s *Settings) NotificationsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// LoadSettings loads settings from ~/.toasty/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return loadSettingsFrom(GetSettingsPath())
}

func loadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}
