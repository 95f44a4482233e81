package cmd

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"toasty/internal/config"
)

// newTestCLI builds a CLI the way kong would, pointed at throwaway storage
func newTestCLI(t *testing.T) *CLI {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "state"))
	t.Setenv("TOASTY_HOME", filepath.Join(tempDir, "home"))

	cli := &CLI{
		DBPath: filepath.Join(tempDir, "history.db"),
		Server: "http://127.0.0.1:1", // nothing listening; delivery fails fast
		Topic:  "test-topic",
	}
	cli.SetSettings(&config.Settings{})
	return cli
}

func TestHookRun_MalformedInputExitsCleanly(t *testing.T) {
	cli := newTestCLI(t)
	hook := &HookCmd{Timeout: 5 * time.Second}

	err := hook.run(cli, strings.NewReader("this is not json"))

	require.NoError(t, err)
}

func TestHookRun_NotificationsDisabled(t *testing.T) {
	cli := newTestCLI(t)
	disabled := false
	cli.settings.Enabled = &disabled

	hook := &HookCmd{Timeout: 5 * time.Second}

	err := hook.run(cli, strings.NewReader(`{"type": "prompt-idle-timeout"}`))

	require.NoError(t, err)
}

func TestHookRun_MissingTopicExitsCleanly(t *testing.T) {
	cli := newTestCLI(t)
	cli.Topic = ""

	hook := &HookCmd{Timeout: 5 * time.Second}

	err := hook.run(cli, strings.NewReader(`{"type": "prompt-idle-timeout"}`))

	require.NoError(t, err)
}

func TestHookRun_DeliveryFailureExitsCleanly(t *testing.T) {
	cli := newTestCLI(t)
	hook := &HookCmd{Timeout: 5 * time.Second}

	// Valid event, unreachable ntfy server: still no error to the caller
	err := hook.run(cli, strings.NewReader(`{"type": "prompt-idle-timeout", "idle_duration_seconds": 45, "session_id": "s1", "cwd": "/tmp"}`))

	require.NoError(t, err)
}
