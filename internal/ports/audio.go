package ports

// AudioPlayer plays notification audio cues
type AudioPlayer interface {
	// Play plays the named audio file. Bare names resolve against the
	// sounds directory.
	Play(file string) error

	// PlayDefault plays the default notification cue
	PlayDefault() error
}
