package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toasty/internal/domain"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestRecordAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.Record(ctx, domain.DeliveryRecord{
		SessionID: "s1",
		Event:     "prompt-idle-timeout",
		Title:     "myproj: Session Idle",
		Message:   "Claude session idle for 45s (prompt-idle-timeout)",
		Priority:  domain.PriorityDefault,
		Tags:      []string{"clock", "myproj"},
		Delivered: true,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	records, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "s1", rec.SessionID)
	assert.Equal(t, "prompt-idle-timeout", rec.Event)
	assert.Equal(t, "myproj: Session Idle", rec.Title)
	assert.Equal(t, []string{"clock", "myproj"}, rec.Tags)
	assert.True(t, rec.Delivered)
	assert.NotZero(t, rec.ID)
}

func TestList_NewestFirstWithLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		err := repo.Record(ctx, domain.DeliveryRecord{
			SessionID: "s1",
			Event:     "notification",
			Message:   string(rune('a' + i)),
			Priority:  domain.PriorityDefault,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	records, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "e", records[0].Message)
	assert.Equal(t, "d", records[1].Message)
	assert.Equal(t, "c", records[2].Message)
}

func TestList_EmptyDatabase(t *testing.T) {
	repo := newTestRepo(t)

	records, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecord_EmptyTags(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.Record(ctx, domain.DeliveryRecord{
		SessionID: "s1",
		Priority:  domain.PriorityLow,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	records, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Tags)
}
