//go:build !linux && !darwin && !windows

package audio

// playFile falls back to the terminal bell on unsupported platforms
func playFile(path string) error {
	return terminalBell()
}

// playDefault falls back to the terminal bell on unsupported platforms
func playDefault() error {
	return terminalBell()
}
