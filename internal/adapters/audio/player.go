// Package audio plays notification audio cues.
package audio

import (
	"fmt"
	"os"
	"strings"

	"toasty/internal/config"
	"toasty/internal/ports"
)

// Player implements ports.AudioPlayer
type Player struct{}

var _ ports.AudioPlayer = (*Player)(nil)

// NewPlayer creates a new audio player
func NewPlayer() *Player {
	return &Player{}
}

// Play plays the named audio file. Bare names resolve against the sounds
// directory; a missing file falls back to the default cue.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) Play(file string) error {
	path := resolve(file)
	if _, err := os.Stat(path); err != nil {
		return p.PlayDefault()
	}
	return playFile(path)
}

// PlayDefault plays the default notification cue
func (p *Player) PlayDefault() error {
	return playDefault()
}

// resolve maps bare file names to the sounds directory
func resolve(file string) string {
	if file == "" {
		return file
	}
	if strings.ContainsAny(file, `/\`) {
		return config.ExpandPath(file)
	}
	return config.GetSoundPath(file)
}

// terminalBell outputs a terminal bell character as last-resort fallback.
// It goes to stderr so the hook's stdout stays clean for the invoking agent.
func terminalBell() error {
	fmt.Fprint(os.Stderr, "\a")
	return nil
}
