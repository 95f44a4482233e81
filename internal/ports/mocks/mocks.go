// Package mocks provides testify mocks for the port interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"toasty/internal/domain"
	"toasty/internal/ports"
)

// Notifier is a mock implementation of ports.Notifier
type Notifier struct {
	mock.Mock
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a Notifier mock with expectations asserted on cleanup
func NewNotifier(t *testing.T) *Notifier {
	m := &Notifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Notifier) Send(ctx context.Context, n domain.Notification, meta domain.DeliveryMeta) error {
	args := m.Called(ctx, n, meta)
	return args.Error(0)
}

// AudioPlayer is a mock implementation of ports.AudioPlayer
type AudioPlayer struct {
	mock.Mock
}

var _ ports.AudioPlayer = (*AudioPlayer)(nil)

// NewAudioPlayer creates an AudioPlayer mock with expectations asserted on cleanup
func NewAudioPlayer(t *testing.T) *AudioPlayer {
	m := &AudioPlayer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AudioPlayer) Play(file string) error {
	args := m.Called(file)
	return args.Error(0)
}

func (m *AudioPlayer) PlayDefault() error {
	args := m.Called()
	return args.Error(0)
}

// ProjectReader is a mock implementation of ports.ProjectReader
type ProjectReader struct {
	mock.Mock
}

var _ ports.ProjectReader = (*ProjectReader)(nil)

// NewProjectReader creates a ProjectReader mock with expectations asserted on cleanup
func NewProjectReader(t *testing.T) *ProjectReader {
	m := &ProjectReader{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProjectReader) Read(ctx context.Context, cwd string) (domain.ProjectContext, error) {
	args := m.Called(ctx, cwd)
	return args.Get(0).(domain.ProjectContext), args.Error(1)
}

// HistoryRepository is a mock implementation of ports.HistoryRepository
type HistoryRepository struct {
	mock.Mock
}

var _ ports.HistoryRepository = (*HistoryRepository)(nil)

// NewHistoryRepository creates a HistoryRepository mock with expectations asserted on cleanup
func NewHistoryRepository(t *testing.T) *HistoryRepository {
	m := &HistoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *HistoryRepository) Record(ctx context.Context, rec domain.DeliveryRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *HistoryRepository) List(ctx context.Context, limit int) ([]domain.DeliveryRecord, error) {
	args := m.Called(ctx, limit)
	if recs := args.Get(0); recs != nil {
		return recs.([]domain.DeliveryRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *HistoryRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
