package cmd

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"time"

	"toasty/internal/logging"
)

// HookCmd processes one hook event from stdin. It is the command the agent
// runtime invokes, so it NEVER fails: every error is logged and swallowed and
// the process exits 0. A failing notification must not disturb the agent.
type HookCmd struct {
	Timeout time.Duration `help:"Maximum time for one event cycle" default:"30s"`
}

// Run executes the hook driver
func (h *HookCmd) Run(cli *CLI) error {
	return h.run(cli, os.Stdin)
}

// run is the testable driver body; in production in is os.Stdin
func (h *HookCmd) run(cli *CLI, in io.Reader) error {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Hook panicked",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	// Hook invocations get their own log file for post-mortem debugging
	hookLogFile, err := logging.InitHookLogger(hookName)
	if err != nil {
		logging.Logger.Warn("Failed to initialize hook logger", "error", err)
	} else {
		logging.Logger.Info("Hook logger initialized", "log_file", hookLogFile)
	}

	if cli.settings != nil && !cli.settings.NotificationsEnabled() {
		logging.Logger.Info("Notifications disabled, skipping event")
		return nil
	}

	logging.Logger.Info("=== NOTIFICATION HOOK TRIGGERED ===",
		"timestamp", time.Now().Format(time.RFC3339Nano),
		"pid", os.Getpid(),
		"ppid", os.Getppid())

	raw, err := io.ReadAll(in)
	if err != nil {
		logging.Logger.Error("Failed to read hook input", "error", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.Timeout)
	defer cancel()

	container, err := NewContainer(cli)
	if err != nil {
		logging.Logger.Error("Failed to initialize container", "error", err)
		return nil
	}
	defer container.Close()

	if err := container.NotificationService.ProcessRaw(ctx, raw); err != nil {
		logging.Logger.Error("Failed to process hook event", "error", err)
		return nil
	}

	logging.Logger.Info("Hook event processed")
	return nil
}
