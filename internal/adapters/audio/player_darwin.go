//go:build darwin

package audio

import "os/exec"

// playFile plays an audio file via afplay (macOS)
func playFile(path string) error {
	if err := exec.Command("afplay", path).Run(); err != nil {
		return terminalBell()
	}
	return nil
}

// playDefault plays a system sound
func playDefault() error {
	if err := exec.Command("afplay", "/System/Library/Sounds/Glass.aiff").Run(); err != nil {
		return terminalBell()
	}
	return nil
}
