package cmd

import (
	"context"
	"fmt"
	"os"

	"toasty/internal/domain"
)

// SendCmd pushes a test notification through the full pipeline: the message
// is classified, enriched with the current directory's git status, delivered
// and recorded, exactly as a real hook event would be.
type SendCmd struct {
	Message string `arg:"" help:"Notification message text"`
	Event   string `help:"Synthetic event name used in the message suffix" default:"manual"`
}

// Run executes the send command
func (s *SendCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return err
	}
	defer container.Close()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	evt := domain.HookEvent{
		HookEventName: s.Event,
		Message:       s.Message,
		SessionID:     "manual",
		CWD:           cwd,
	}

	if err := container.NotificationService.Process(context.Background(), evt); err != nil {
		return err
	}

	fmt.Printf("Notification sent to %s/%s\n", cli.Server, cli.Topic)
	return nil
}
