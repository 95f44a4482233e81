//go:build windows

package audio

import (
	"fmt"
	"os/exec"
)

// playFile plays an audio file via PowerShell
func playFile(path string) error {
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", path)
	if err := exec.Command("powershell", "-c", script).Run(); err != nil {
		return playDefault()
	}
	return nil
}

// playDefault plays a system sound
func playDefault() error {
	soundCommands := []string{
		"[System.Media.SystemSounds]::Asterisk.Play()",
		"[System.Media.SystemSounds]::Beep.Play()",
	}

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
