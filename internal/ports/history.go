package ports

import (
	"context"

	"toasty/internal/domain"
)

// HistoryRepository persists processed notifications
type HistoryRepository interface {
	// Record stores one delivery record
	Record(ctx context.Context, rec domain.DeliveryRecord) error

	// List returns the most recent records, newest first
	List(ctx context.Context, limit int) ([]domain.DeliveryRecord, error)

	// Close releases the underlying database
	Close() error
}
