package cmd

import (
	"errors"

	adapteraudio "toasty/internal/adapters/audio"
	adaptergit "toasty/internal/adapters/git"
	"toasty/internal/adapters/ntfy"
	adapterstorage "toasty/internal/adapters/storage"
	"toasty/internal/logging"
	"toasty/internal/ports"
	"toasty/internal/services"
)

// hookName identifies this hook in delivery metadata and log files
const hookName = "notification-hook"

// Container holds all dependencies for the application
type Container struct {
	NotificationService *services.NotificationService
	Audio               ports.AudioPlayer
	History             ports.HistoryRepository
}

// NewContainer creates a new Container with all dependencies wired.
// The history store is best-effort: when it cannot be opened the hook still
// has to deliver its notification, so the container comes up without it.
func NewContainer(cli *CLI) (*Container, error) {
	if cli.Topic == "" {
		return nil, errors.New("no ntfy topic configured (set --topic, TOASTY_NTFY_TOPIC or ntfy_topic in settings.json)")
	}

	notifier := ntfy.NewClient(cli.Server, cli.Topic, cli.Token)
	audioPlayer := adapteraudio.NewPlayer()
	projectReader := adaptergit.NewReader()

	var history ports.HistoryRepository
	repo, err := adapterstorage.NewSQLiteRepository(cli.DBPath)
	if err != nil {
		logging.Logger.Warn("Failed to open history database", "path", cli.DBPath, "error", err)
	} else {
		history = repo
	}

	cfg := services.NotificationConfig{
		HookName:  hookName,
		AudioFile: cli.audioFile(),
	}
	if cli.settings != nil {
		cfg.TitleOverride = cli.settings.ProjectTitle
		cfg.TagOverride = cli.settings.ProjectTag
	}

	return &Container{
		NotificationService: services.NewNotificationService(notifier, audioPlayer, projectReader, history, cfg),
		Audio:               audioPlayer,
		History:             history,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.History != nil {
		return c.History.Close()
	}
	return nil
}
