package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"toasty/internal/domain"
	"toasty/internal/ports/mocks"
)

func testConfig() NotificationConfig {
	return NotificationConfig{
		HookName:  "notification-hook",
		AudioFile: "toasty.mp3",
	}
}

func TestProcess_SendsNotificationAndPlaysAudio(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	audio := mocks.NewAudioPlayer(t)
	projects := mocks.NewProjectReader(t)
	history := mocks.NewHistoryRepository(t)

	projects.On("Read", mock.Anything, "/home/user/myproj").
		Return(domain.ProjectContext{Name: "myproj", Branch: "main", GitStatus: domain.GitStatusClean}, nil)

	var sent domain.Notification
	var sentMeta domain.DeliveryMeta
	notifier.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(domain.Notification)
			sentMeta = args.Get(2).(domain.DeliveryMeta)
		}).
		Return(nil)

	audio.On("Play", "toasty.mp3").Return(nil)
	history.On("Record", mock.Anything, mock.Anything).Return(nil)

	svc := NewNotificationService(notifier, audio, projects, history, testConfig())

	err := svc.Process(context.Background(), domain.HookEvent{
		Type:      domain.EventPromptIdleTimeout,
		SessionID: "s1",
		CWD:       "/home/user/myproj",
	})

	require.NoError(t, err)
	assert.Equal(t, "myproj: Session Idle", sent.Title)
	assert.Equal(t, "Claude session idle for 60s (prompt-idle-timeout)", sent.Message)
	assert.Equal(t, domain.PriorityDefault, sent.Priority)
	assert.Equal(t, "s1", sentMeta.SessionID)
	assert.Equal(t, "notification-hook", sentMeta.HookName)
	assert.Equal(t, "prompt-idle-timeout", sentMeta.Event)
}

func TestProcess_DirtyRepositoryEnrichesMessage(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	audio := mocks.NewAudioPlayer(t)
	projects := mocks.NewProjectReader(t)

	projects.On("Read", mock.Anything, "/tmp/proj").
		Return(domain.ProjectContext{Name: "proj", GitStatus: "2 files changed"}, nil)

	notifier.On("Send", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Message == "Task completed successfully (notification) • 2 files changed"
	}), mock.Anything).Return(nil)

	audio.On("Play", "toasty.mp3").Return(nil)

	svc := NewNotificationService(notifier, audio, projects, nil, testConfig())

	err := svc.Process(context.Background(), domain.HookEvent{
		Message: "Task completed successfully",
		CWD:     "/tmp/proj",
	})

	require.NoError(t, err)
}

func TestProcess_DeliveryFailureSkipsAudio(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	audio := mocks.NewAudioPlayer(t)
	projects := mocks.NewProjectReader(t)
	history := mocks.NewHistoryRepository(t)

	projects.On("Read", mock.Anything, mock.Anything).
		Return(domain.ProjectContext{Name: "proj", GitStatus: domain.GitStatusClean}, nil)
	notifier.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("ntfy unreachable"))

	// Failed deliveries are still recorded, marked undelivered
	history.On("Record", mock.Anything, mock.MatchedBy(func(rec domain.DeliveryRecord) bool {
		return !rec.Delivered
	})).Return(nil)

	svc := NewNotificationService(notifier, audio, projects, history, testConfig())

	err := svc.Process(context.Background(), domain.HookEvent{Message: "hello"})

	require.Error(t, err)
	audio.AssertNotCalled(t, "Play", mock.Anything)
}

func TestProcess_ProjectReaderFailureDegradesToClean(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	audio := mocks.NewAudioPlayer(t)
	projects := mocks.NewProjectReader(t)

	projects.On("Read", mock.Anything, "/home/user/myproj").
		Return(domain.ProjectContext{}, errors.New("git not installed"))

	notifier.On("Send", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		// No git-status suffix, and the title still derives from cwd
		return n.Title == "myproj: Notification" && n.Message == "hello (notification)"
	}), mock.Anything).Return(nil)

	audio.On("Play", "toasty.mp3").Return(nil)

	svc := NewNotificationService(notifier, audio, projects, nil, testConfig())

	err := svc.Process(context.Background(), domain.HookEvent{
		Message: "hello",
		CWD:     "/home/user/myproj",
	})

	require.NoError(t, err)
}

func TestProcess_AudioFailureIsNotFatal(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	audio := mocks.NewAudioPlayer(t)
	projects := mocks.NewProjectReader(t)

	projects.On("Read", mock.Anything, mock.Anything).
		Return(domain.ProjectContext{Name: "proj", GitStatus: domain.GitStatusClean}, nil)
	notifier.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	audio.On("Play", "toasty.mp3").Return(errors.New("no audio device"))

	svc := NewNotificationService(notifier, audio, projects, nil, testConfig())

	err := svc.Process(context.Background(), domain.HookEvent{Message: "hello"})

	require.NoError(t, err)
}

func TestProcess_HistoryFailureIsNotFatal(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	audio := mocks.NewAudioPlayer(t)
	projects := mocks.NewProjectReader(t)
	history := mocks.NewHistoryRepository(t)

	projects.On("Read", mock.Anything, mock.Anything).
		Return(domain.ProjectContext{Name: "proj", GitStatus: domain.GitStatusClean}, nil)
	notifier.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	audio.On("Play", "toasty.mp3").Return(nil)
	history.On("Record", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc := NewNotificationService(notifier, audio, projects, history, testConfig())

	err := svc.Process(context.Background(), domain.HookEvent{Message: "hello"})

	require.NoError(t, err)
}

func TestProcess_TitleAndTagOverrides(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	audio := mocks.NewAudioPlayer(t)
	projects := mocks.NewProjectReader(t)

	projects.On("Read", mock.Anything, mock.Anything).
		Return(domain.ProjectContext{Name: "myproj", GitStatus: domain.GitStatusClean}, nil)

	notifier.On("Send", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Title == "My Project: Notification" && n.Tags[len(n.Tags)-1] == "custom-tag"
	}), mock.Anything).Return(nil)

	audio.On("Play", "toasty.mp3").Return(nil)

	cfg := testConfig()
	cfg.TitleOverride = "My Project"
	cfg.TagOverride = "custom-tag"
	svc := NewNotificationService(notifier, audio, projects, nil, cfg)

	err := svc.Process(context.Background(), domain.HookEvent{Message: "hello"})

	require.NoError(t, err)
}

func TestProcessRaw_MalformedInput(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	audio := mocks.NewAudioPlayer(t)
	projects := mocks.NewProjectReader(t)

	svc := NewNotificationService(notifier, audio, projects, nil, testConfig())

	err := svc.ProcessRaw(context.Background(), []byte("not json"))

	require.Error(t, err)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessRaw_ValidInput(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	audio := mocks.NewAudioPlayer(t)
	projects := mocks.NewProjectReader(t)

	projects.On("Read", mock.Anything, "/tmp").
		Return(domain.ProjectContext{Name: "tmp", GitStatus: domain.GitStatusClean}, nil)

	notifier.On("Send", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Title == "tmp: Session Idle" && n.Message == "Claude session idle for 45s (prompt-idle-timeout)"
	}), mock.Anything).Return(nil)

	audio.On("Play", "toasty.mp3").Return(nil)

	svc := NewNotificationService(notifier, audio, projects, nil, testConfig())

	raw := []byte(`{"type": "prompt-idle-timeout", "idle_duration_seconds": 45, "session_id": "s1", "cwd": "/tmp"}`)
	err := svc.ProcessRaw(context.Background(), raw)

	require.NoError(t, err)
}
