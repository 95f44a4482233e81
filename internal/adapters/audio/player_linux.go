//go:build linux

package audio

import "os/exec"

// playFile plays an audio file on Linux. mpv and ffplay handle mp3; paplay
// covers the PulseAudio-only case for wav/oga files.
func playFile(path string) error {
	players := []struct {
		cmd  string
		args []string
	}{
		{"mpv", []string{"--no-video", "--really-quiet", path}},
		{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}},
		{"paplay", []string{path}},
		{"aplay", []string{path}},
	}

	for _, p := range players {
		cmd := exec.Command(p.cmd, p.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}

// playDefault plays the freedesktop completion sound
func playDefault() error {
	sounds := []struct {
		cmd  string
		args []string
	}{
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
		{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
	}

	for _, s := range sounds {
		cmd := exec.Command(s.cmd, s.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
