package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"toasty/internal/config"
	"toasty/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DBPath      string           `help:"Path to the notification history database" type:"path" default:"~/.toasty/history.db" env:"TOASTY_DB_PATH"`
	Server      string           `help:"ntfy server URL" default:"https://ntfy.sh" env:"TOASTY_NTFY_SERVER"`
	Topic       string           `help:"ntfy topic to publish to" env:"TOASTY_NTFY_TOPIC"`
	Token       string           `help:"ntfy access token" env:"TOASTY_NTFY_TOKEN"`

	Hook      HookCmd      `cmd:"" help:"Process a hook event from stdin (default)" default:"1" hidden:""`
	Send      SendCmd      `cmd:"send" help:"Send a test notification through the full pipeline"`
	History   HistoryCmd   `cmd:"history" help:"Show recently processed notifications"`
	PlayAudio PlayAudioCmd `cmd:"play-audio" help:"Play a notification audio cue" hidden:""`

	// Internal field for settings (not a flag)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// Precedence: CLI flags > env vars > settings.json > defaults; settings only
// apply when the flag is at its default value and the env var is not set.
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("TOASTY_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TOASTY_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.DBPath == config.ExpandPath("~/.toasty/history.db") {
			if _, hasEnv := os.LookupEnv("TOASTY_DB_PATH"); !hasEnv {
				if c.settings.DBPath != "" {
					c.DBPath = c.settings.DBPath
				}
			}
		}

		if c.Server == config.DefaultNtfyServer {
			if _, hasEnv := os.LookupEnv("TOASTY_NTFY_SERVER"); !hasEnv {
				if c.settings.NtfyServer != "" {
					c.Server = c.settings.NtfyServer
				}
			}
		}

		if c.Topic == "" {
			c.Topic = c.settings.NtfyTopic
		}
		if c.Token == "" {
			c.Token = c.settings.NtfyToken
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes use
	// the SAME log file (important for correlating parent/child logs)
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TOASTY_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TOASTY_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("TOASTY_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	return nil
}

// audioFile returns the configured audio cue file name
func (c *CLI) audioFile() string {
	if c.settings != nil && c.settings.AudioFile != "" {
		return c.settings.AudioFile
	}
	return config.DefaultAudioFile
}
