package domain

import "time"

// DeliveryRecord is one processed hook event as kept in the history store
type DeliveryRecord struct {
	ID        uint
	SessionID string
	Event     string
	Title     string
	Message   string
	Priority  string
	Tags      []string
	Delivered bool
	CreatedAt time.Time
}
