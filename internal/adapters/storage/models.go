package storage

import (
	"strings"
	"time"

	"toasty/internal/domain"
)

// NotificationModel is the GORM model for the notifications table
type NotificationModel struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID string    `gorm:"not null;default:'unknown';index:idx_session"`
	Event     string    `gorm:"not null;default:''"`
	Title     string    `gorm:"not null;default:''"`
	Message   string    `gorm:"not null;default:''"`
	Priority  string    `gorm:"not null;default:'default';check:priority IN ('high','default','low')"`
	Tags      string    `gorm:"not null;default:''"`
	Delivered bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index:idx_created"`
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string { return "notifications" }

// toModel converts a domain record to its storage representation
func toModel(rec domain.DeliveryRecord) NotificationModel {
	return NotificationModel{
		ID:        rec.ID,
		SessionID: rec.SessionID,
		Event:     rec.Event,
		Title:     rec.Title,
		Message:   rec.Message,
		Priority:  rec.Priority,
		Tags:      strings.Join(rec.Tags, ","),
		Delivered: rec.Delivered,
		CreatedAt: rec.CreatedAt,
	}
}

// toDomain converts a storage row back to the domain record
func toDomain(m NotificationModel) domain.DeliveryRecord {
	var tags []string
	if m.Tags != "" {
		tags = strings.Split(m.Tags, ",")
	}
	return domain.DeliveryRecord{
		ID:        m.ID,
		SessionID: m.SessionID,
		Event:     m.Event,
		Title:     m.Title,
		Message:   m.Message,
		Priority:  m.Priority,
		Tags:      tags,
		Delivered: m.Delivered,
		CreatedAt: m.CreatedAt,
	}
}
