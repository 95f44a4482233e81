package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"toasty/internal/tui"
)

// HistoryCmd shows recently processed notifications
type HistoryCmd struct {
	Limit int  `help:"Maximum entries to show" default:"20"`
	Watch bool `help:"Live dashboard, refreshed every second" short:"w"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return err
	}
	defer container.Close()

	if container.History == nil {
		return errors.New("history database unavailable")
	}

	if h.Watch {
		return tui.Run(tui.NewModel(container.History, h.Limit))
	}

	records, err := container.History.List(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No notifications recorded yet")
		return nil
	}

	for _, rec := range records {
		status := "sent"
		if !rec.Delivered {
			status = "FAILED"
		}

		msg := rec.Message
		if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
			msg = msg[:idx] + "…"
		}

		fmt.Printf("%s  %-7s %-8s %-24s %s\n",
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Priority,
			status,
			rec.Event,
			msg)
	}

	return nil
}
