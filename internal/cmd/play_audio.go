package cmd

import (
	adapteraudio "toasty/internal/adapters/audio"
)

// PlayAudioCmd plays a notification audio cue
type PlayAudioCmd struct {
	File string `arg:"" optional:"" help:"Audio file to play (defaults to the configured cue)"`
}

// Run executes the audio playing logic
func (p *PlayAudioCmd) Run(cli *CLI) error {
	player := adapteraudio.NewPlayer()

	file := p.File
	if file == "" {
		file = cli.audioFile()
	}

	return player.Play(file)
}
