package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"toasty/internal/domain"
	"toasty/internal/logging"
	"toasty/internal/ports"
)

// NotificationConfig carries the per-installation knobs for the service
type NotificationConfig struct {
	// HookName identifies this hook in delivery metadata and logs
	HookName string

	// AudioFile is played after a successful delivery
	AudioFile string

	// TitleOverride and TagOverride replace the project-derived title/tag
	// when set in settings.json
	TitleOverride string
	TagOverride   string
}

// NotificationService runs one event-to-notification cycle
type NotificationService struct {
	notifier ports.Notifier
	audio    ports.AudioPlayer
	projects ports.ProjectReader
	history  ports.HistoryRepository
	cfg      NotificationConfig
}

// NewNotificationService creates a NotificationService. history may be nil
// when the history store could not be opened; recording is then skipped.
func NewNotificationService(
	notifier ports.Notifier,
	audio ports.AudioPlayer,
	projects ports.ProjectReader,
	history ports.HistoryRepository,
	cfg NotificationConfig,
) *NotificationService {
	return &NotificationService{
		notifier: notifier,
		audio:    audio,
		projects: projects,
		history:  history,
		cfg:      cfg,
	}
}

// ProcessRaw parses one JSON hook document and processes it
func (s *NotificationService) ProcessRaw(ctx context.Context, raw []byte) error {
	var evt domain.HookEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		return fmt.Errorf("failed to parse hook input: %w", err)
	}
	return s.Process(ctx, evt)
}

// Process classifies the event, delivers the notification and plays the
// audio cue. Delivery failure is returned to the caller; audio and history
// failures only log.
func (s *NotificationService) Process(ctx context.Context, evt domain.HookEvent) error {
	logging.Logger.Info("Processing notification hook",
		"session", evt.Session(),
		"event", evt.Type,
		"cwd", evt.CWD)

	pc := s.readProject(ctx, evt.CWD)

	title := s.cfg.TitleOverride
	if title == "" {
		title = domain.ProjectTitle(pc.Name)
	}
	tag := s.cfg.TagOverride
	if tag == "" {
		tag = domain.ProjectTag(pc.Name)
	}

	classifier := NewClassifier(title, tag)
	notification, eventName := classifier.Classify(evt)

	logging.Logger.Info("Classified event",
		"title", notification.Title,
		"priority", notification.Priority,
		"message", notification.Message)

	notification.Message = classifier.FormatMessage(notification.Message, eventName, pc)

	meta := domain.DeliveryMeta{
		SessionID: evt.Session(),
		HookName:  s.cfg.HookName,
		Event:     eventName,
		Project:   pc,
	}

	sendErr := s.notifier.Send(ctx, notification, meta)

	s.record(ctx, notification, meta, sendErr == nil)

	if sendErr != nil {
		logging.Logger.Error("Failed to send notification", "error", sendErr)
		return fmt.Errorf("failed to send notification: %w", sendErr)
	}

	logging.Logger.Info("Notification sent successfully")

	if err := s.audio.Play(s.cfg.AudioFile); err != nil {
		// Audio is a nicety; the notification already went out
		logging.Logger.Warn("Failed to play audio", "file", s.cfg.AudioFile, "error", err)
	}

	return nil
}

// readProject fetches repository context, degrading to a clean context named
// after the working directory when the reader fails
func (s *NotificationService) readProject(ctx context.Context, cwd string) domain.ProjectContext {
	pc, err := s.projects.Read(ctx, cwd)
	if err != nil {
		logging.Logger.Warn("Failed to read project context", "cwd", cwd, "error", err)
		return domain.ProjectContext{
			Name:      domain.ProjectName(cwd),
			GitStatus: domain.GitStatusClean,
		}
	}
	return pc
}

// record stores the delivery outcome best-effort
func (s *NotificationService) record(ctx context.Context, n domain.Notification, meta domain.DeliveryMeta, delivered bool) {
	if s.history == nil {
		return
	}

	rec := domain.DeliveryRecord{
		SessionID: meta.SessionID,
		Event:     meta.Event,
		Title:     n.Title,
		Message:   n.Message,
		Priority:  n.Priority,
		Tags:      n.Tags,
		Delivered: delivered,
		CreatedAt: time.Now(),
	}

	if err := s.history.Record(ctx, rec); err != nil {
		logging.Logger.Warn("Failed to record notification history", "error", err)
	}
}
